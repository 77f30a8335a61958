package generate

import (
	"errors"
	"math/rand"

	"dungeon-arcanum/internal/gamemap"
)

// ErrNoFloor is returned when a map has no floor cell to spawn on.
var ErrNoFloor = errors.New("generate: map has no floor cells")

// SpawnPoint holds a grid coordinate where an entity should appear.
type SpawnPoint struct {
	X, Y int
}

// PlayerStart returns the first floor cell in a row-major scan.
func PlayerStart(gmap *gamemap.GameMap) (SpawnPoint, error) {
	x, y, ok := gmap.FirstFloor()
	if !ok {
		return SpawnPoint{}, ErrNoFloor
	}
	return SpawnPoint{X: x, Y: y}, nil
}

// Populate picks count spawn points uniformly (with repetition) among the
// floor cells inside the one-cell border. Drawing from the candidate list
// gives the same distribution as retrying random cells until one is floor,
// without the unbounded loop.
func Populate(gmap *gamemap.GameMap, rng *rand.Rand, count int) ([]SpawnPoint, error) {
	if count <= 0 {
		return nil, nil
	}
	inner := gamemap.Rect{X1: 1, Y1: 1, X2: gmap.Width - 2, Y2: gmap.Height - 2}
	candidates := gmap.FloorCells(inner)
	if len(candidates) == 0 {
		return nil, ErrNoFloor
	}
	out := make([]SpawnPoint, 0, count)
	for range count {
		c := candidates[rng.Intn(len(candidates))]
		out = append(out, SpawnPoint{X: c[0], Y: c[1]})
	}
	return out, nil
}
