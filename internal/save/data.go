package save

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelcrawler/internal/telemetry"
)

// SlotKey is the key of the single save slot.
const SlotKey = "saveData"

// Position is a saved pixel position.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlayerStats is the saved stat block.
type PlayerStats struct {
	Level       int `json:"level"`
	HP          int `json:"hp"`
	MaxHP       int `json:"maxHp"`
	Exp         int `json:"exp"`
	Gold        int `json:"gold"`
	AttackPower int `json:"attackPower"`
}

// Data is the save blob. It is written and read wholesale.
type Data struct {
	PlayerPosition Position    `json:"playerPosition"`
	PlayerStats    PlayerStats `json:"playerStats"`
	Seed           int64       `json:"seed"`
	Timestamp      int64       `json:"timestamp"` // Unix milliseconds
}

// SavedAt returns the timestamp as a time.
func (d Data) SavedAt() time.Time {
	return time.UnixMilli(d.Timestamp)
}

// WriteSlot stamps d with the current time and saves it to the slot.
func (s *Store) WriteSlot(ctx context.Context, d Data) error {
	_, span := telemetry.Tracer("save").Start(ctx, "game.save")
	defer span.End()

	d.Timestamp = time.Now().UnixMilli()
	if err := s.Save(SlotKey, d); err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(
		attribute.Int64("save.seed", d.Seed),
		attribute.Int("save.level", d.PlayerStats.Level),
	)
	return nil
}

// ReadSlot loads the slot. A missing slot returns false; an unreadable one
// returns false and the error.
func (s *Store) ReadSlot(ctx context.Context) (Data, bool, error) {
	_, span := telemetry.Tracer("save").Start(ctx, "game.load")
	defer span.End()

	var d Data
	ok, err := s.Load(SlotKey, &d)
	if err != nil {
		span.RecordError(err)
		return Data{}, false, fmt.Errorf("load save: %w", err)
	}
	span.SetAttributes(attribute.Bool("save.found", ok))
	return d, ok, nil
}
