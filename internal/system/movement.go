package system

import (
	"dungeon-arcanum/internal/component"
	"dungeon-arcanum/internal/gamemap"
)

// MoveResult reports which axes of a TryMove call were applied.
type MoveResult uint8

const (
	MoveBlocked MoveResult = 0 // no axis moved
	MovedX      MoveResult = 1 << 0
	MovedY      MoveResult = 1 << 1
	MoveOK                 = MovedX | MovedY
)

// Has reports whether every axis in axes was applied.
func (r MoveResult) Has(axes MoveResult) bool { return r&axes == axes }

// TryMove shifts pos by delta one axis at a time. The X step is kept only if
// the destination column at the current row is not a wall; the Y step is then
// checked at the (possibly updated) column. Resolving the axes separately is
// what lets actors slide along walls instead of stopping dead on a diagonal.
func TryMove(gmap *gamemap.GameMap, pos *component.Vec, delta component.Vec) MoveResult {
	if !delta.Finite() {
		return MoveBlocked
	}
	var res MoveResult
	if delta.X != 0 {
		if tx := pos.X + delta.X; !gmap.IsWallAt(tx, pos.Y) {
			pos.X = tx
			res |= MovedX
		}
	}
	if delta.Y != 0 {
		if ty := pos.Y + delta.Y; !gmap.IsWallAt(pos.X, ty) {
			pos.Y = ty
			res |= MovedY
		}
	}
	return res
}

// MoveActor moves a along dir at the actor's speed for dt seconds.
func MoveActor(gmap *gamemap.GameMap, a *component.Actor, dir component.Vec, dt float64) MoveResult {
	return TryMove(gmap, &a.Pos, dir.Scale(a.Speed*dt))
}
