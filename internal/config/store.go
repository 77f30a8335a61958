package config

import (
	"context"
	"fmt"

	"dungeon-arcanum/internal/store"
)

// OpenStore builds the save backend named by s. The returned close func
// is never nil.
func (s SaveConfig) OpenStore(ctx context.Context) (store.Store, func() error, error) {
	nop := func() error { return nil }
	switch s.Backend {
	case BackendPostgres:
		pg, err := store.NewPostgresStore(ctx, s.DSN)
		if err != nil {
			return nil, nop, err
		}
		return pg, pg.Close, nil
	case BackendFile, "":
		dir := s.Dir
		if dir == "" {
			d, err := store.DataDir()
			if err != nil {
				return nil, nop, err
			}
			dir = d
		}
		return store.NewFileStore(dir), nop, nil
	}
	return nil, nop, fmt.Errorf("unknown save backend %q", s.Backend)
}
