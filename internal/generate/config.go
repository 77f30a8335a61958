package generate

import (
	"fmt"
	"math/rand"
)

// Config drives procedural generation for one dungeon.
type Config struct {
	Width, Height      int
	RoomCount          int
	MinRoomW, MaxRoomW int
	MinRoomH, MaxRoomH int
	Rand               *rand.Rand
}

// ConfigError reports generation parameters that cannot produce a valid map.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("generate: invalid %s: %s", e.Field, e.Reason)
}

// Validate checks that every room the sampler can draw fits inside the grid
// with a one-cell border on the top/left and a two-cell margin on the
// bottom/right.
func (c *Config) Validate() error {
	switch {
	case c.Rand == nil:
		return &ConfigError{Field: "Rand", Reason: "nil random source"}
	case c.RoomCount < 0:
		return &ConfigError{Field: "RoomCount", Reason: fmt.Sprintf("%d is negative", c.RoomCount)}
	case c.MinRoomW < 1 || c.MinRoomH < 1:
		return &ConfigError{Field: "MinRoomW/MinRoomH", Reason: "rooms must be at least 1x1"}
	case c.MinRoomW > c.MaxRoomW:
		return &ConfigError{Field: "MaxRoomW", Reason: fmt.Sprintf("%d < MinRoomW %d", c.MaxRoomW, c.MinRoomW)}
	case c.MinRoomH > c.MaxRoomH:
		return &ConfigError{Field: "MaxRoomH", Reason: fmt.Sprintf("%d < MinRoomH %d", c.MaxRoomH, c.MinRoomH)}
	}
	// rx is drawn from [1, Width-rw-2]; the widest room must leave that range non-empty.
	if c.Width-c.MaxRoomW-2 < 1 {
		return &ConfigError{Field: "Width", Reason: fmt.Sprintf("%d too small for rooms up to %d wide", c.Width, c.MaxRoomW)}
	}
	if c.Height-c.MaxRoomH-2 < 1 {
		return &ConfigError{Field: "Height", Reason: fmt.Sprintf("%d too small for rooms up to %d tall", c.Height, c.MaxRoomH)}
	}
	return nil
}
