package assets

import "time"

// Clip is a named animation over the frames of one spritesheet.
type Clip struct {
	Key       string
	Texture   string
	Frames    int
	FrameRate float64 // Frames per second
	Loop      bool
}

// frameDuration returns how long one frame stays on screen.
func (c *Clip) frameDuration() time.Duration {
	if c.FrameRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / c.FrameRate)
}

// TextureSource reports texture availability. *Catalog implements it.
type TextureSource interface {
	Exists(key string) bool
	Frames(key string) int
}

// Library holds the animation clips created so far, keyed by clip key.
type Library struct {
	textures TextureSource
	clips    map[string]*Clip
}

// NewLibrary creates an empty clip library over a texture source.
func NewLibrary(textures TextureSource) *Library {
	return &Library{textures: textures, clips: make(map[string]*Clip)}
}

// TextureExists reports whether a texture is available.
func (l *Library) TextureExists(key string) bool {
	return l.textures != nil && l.textures.Exists(key)
}

// Frames returns the frame count of a texture.
func (l *Library) Frames(key string) int {
	if l.textures == nil {
		return 0
	}
	return l.textures.Frames(key)
}

// Exists reports whether a clip has been created.
func (l *Library) Exists(key string) bool {
	_, ok := l.clips[key]
	return ok
}

// Get returns a clip by key.
func (l *Library) Get(key string) (*Clip, bool) {
	c, ok := l.clips[key]
	return c, ok
}

// Create registers a clip spanning every frame of texture, unless a clip
// with the same key exists, the texture is missing, or it has fewer than
// minFrames frames. Returns the registered clip or nil.
func (l *Library) Create(key, texture string, frameRate float64, loop bool, minFrames int) *Clip {
	if c, ok := l.clips[key]; ok {
		return c
	}
	if !l.TextureExists(texture) {
		return nil
	}
	frames := l.Frames(texture)
	if frames < minFrames || frames <= 0 {
		return nil
	}
	c := &Clip{Key: key, Texture: texture, Frames: frames, FrameRate: frameRate, Loop: loop}
	l.clips[key] = c
	return c
}

// Animator tracks playback of one clip on one sprite.
type Animator struct {
	clip    *Clip
	frame   int
	elapsed time.Duration
	playing bool
}

// Play starts a clip from its first frame. If the clip is already playing
// it keeps going unless restart is set.
func (a *Animator) Play(clip *Clip, restart bool) {
	if clip == nil {
		return
	}
	if a.playing && a.clip == clip && !restart {
		return
	}
	a.clip = clip
	a.frame = 0
	a.elapsed = 0
	a.playing = true
}

// Stop halts playback on the current frame.
func (a *Animator) Stop() {
	a.playing = false
}

// Reset stops playback and forgets the clip.
func (a *Animator) Reset() {
	*a = Animator{}
}

// IsPlaying reports whether a clip is running.
func (a *Animator) IsPlaying() bool {
	return a.playing
}

// Current returns the active clip, or nil.
func (a *Animator) Current() *Clip {
	return a.clip
}

// Frame returns the frame index to draw.
func (a *Animator) Frame() int {
	return a.frame
}

// Advance steps playback by dt. Non-looping clips stop on their last frame.
func (a *Animator) Advance(dt time.Duration) {
	if !a.playing || a.clip == nil {
		return
	}
	step := a.clip.frameDuration()
	if step <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= step {
		a.elapsed -= step
		a.frame++
		if a.frame >= a.clip.Frames {
			if a.clip.Loop {
				a.frame = 0
			} else {
				a.frame = a.clip.Frames - 1
				a.playing = false
				return
			}
		}
	}
}
