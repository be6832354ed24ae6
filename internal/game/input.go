package game

// Key is a renderer-independent game key.
type Key uint

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyAttack
	KeyInteract
	KeyInventory
	KeyShop
	KeyEscape
	KeyEnter
	KeySave
	KeyQuit
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// DigitKey returns the key for digit n in 1..9.
func DigitKey(n int) (Key, bool) {
	if n < 1 || n > 9 {
		return 0, false
	}
	return Key1 + Key(n-1), true
}

// Digit returns the digit of a number key.
func (k Key) Digit() (int, bool) {
	if k < Key1 || k > Key9 {
		return 0, false
	}
	return int(k-Key1) + 1, true
}

// Controls is the keyboard state for one frame: keys held down, and keys
// that went down since the previous frame.
type Controls struct {
	held    uint32
	pressed uint32
}

// Hold marks k as held.
func (c *Controls) Hold(k Key) {
	c.held |= 1 << k
}

// Press marks k as pressed this frame. A pressed key is also held.
func (c *Controls) Press(k Key) {
	c.pressed |= 1 << k
	c.held |= 1 << k
}

// Held reports whether k is down.
func (c Controls) Held(k Key) bool {
	return c.held&(1<<k) != 0
}

// Pressed reports whether k went down this frame.
func (c Controls) Pressed(k Key) bool {
	return c.pressed&(1<<k) != 0
}

// PressedDigit returns the first number key pressed this frame.
func (c Controls) PressedDigit() (int, bool) {
	for k := Key1; k <= Key9; k++ {
		if c.Pressed(k) {
			return k.Digit()
		}
	}
	return 0, false
}
