package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dungeon-arcanum/internal/store"
)

// DefaultSaveKey is the slot name used when none is configured.
const DefaultSaveKey = "DA_SAVE"

// ErrNoSave is returned by Load when the store holds no snapshot.
var ErrNoSave = errors.New("game: no saved game")

// Save writes the state's snapshot under key.
func Save(ctx context.Context, st store.Store, key string, s *State) error {
	data, err := json.Marshal(s.Serialize())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := st.Put(ctx, key, data); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// Load reads and restores the snapshot under key. The returned State is
// new; callers swap it in only on success, so the running game is never
// partially overwritten.
func Load(ctx context.Context, st store.Store, key string, rules Rules, seed int64) (*State, error) {
	data, err := st.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	return Deserialize(snap, rules, seed)
}
