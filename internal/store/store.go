// Package store persists named save blobs.
package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Get when no blob exists under the key.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value store holding opaque save blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, blob []byte) error
}

// DataDir returns the directory for persistent game data.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/dungeon-arcanum,
// defaulting to ~/.local/share/dungeon-arcanum.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dungeon-arcanum"), nil
}
