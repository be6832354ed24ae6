package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/pixelcrawler/internal/gamedata"
)

var (
	ErrInventoryFull = errors.New("inventory full")
	ErrNotEnoughGold = errors.New("not enough gold")
	ErrNotUsable     = errors.New("item cannot be used")
)

// Inventory holds the player's gold and items.
type Inventory struct {
	Gold     int
	Items    []gamedata.ItemDef
	MaxSlots int
}

// NewInventory creates an empty inventory.
func NewInventory(slots, gold int) *Inventory {
	return &Inventory{Gold: gold, MaxSlots: slots}
}

// IsFull reports whether every slot is taken.
func (inv *Inventory) IsFull() bool {
	return len(inv.Items) >= inv.MaxSlots
}

// Add puts an item in the first free slot.
func (inv *Inventory) Add(item gamedata.ItemDef) error {
	if inv.IsFull() {
		return ErrInventoryFull
	}
	inv.Items = append(inv.Items, item)
	return nil
}

// Buy pays for item and adds it. Nothing changes on failure.
func (inv *Inventory) Buy(item gamedata.ItemDef) error {
	if inv.Gold < item.Price {
		return ErrNotEnoughGold
	}
	if err := inv.Add(item); err != nil {
		return err
	}
	inv.Gold -= item.Price
	return nil
}

// Healer is anything a potion can heal.
type Healer interface {
	Heal(amount int) int
}

// Use consumes the item in slot i. Only healing potions are usable; the
// item is removed and the amount healed is returned.
func (inv *Inventory) Use(i int, target Healer) (int, error) {
	if i < 0 || i >= len(inv.Items) {
		return 0, fmt.Errorf("slot %d: no item", i)
	}
	item := inv.Items[i]
	if item.Type != gamedata.ItemPotion || item.Heal <= 0 {
		return 0, fmt.Errorf("%s: %w", item.Name, ErrNotUsable)
	}
	inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	return target.Heal(item.Heal), nil
}
