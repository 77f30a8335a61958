package gamemap

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle used for rooms. Both corners are inclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from an origin and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Center returns origin + size/2, floored.
func (r Rect) Center() (int, int) {
	return r.X1 + r.Width()/2, r.Y1 + r.Height()/2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap holds the cell grid for one dungeon.
type GameMap struct {
	Width, Height int
	Cells         [][]Cell
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Wall
		}
	}
	return &GameMap{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the cell at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) Cell {
	return m.Cells[y][x]
}

// Set replaces the cell at (x, y).
func (m *GameMap) Set(x, y int, c Cell) {
	m.Cells[y][x] = c
}

// IsWall returns true when (x, y) is a wall or lies outside the map.
func (m *GameMap) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Cells[y][x] == Wall
}

// IsWallAt samples the cell containing the continuous position (x, y).
// Non-finite coordinates count as walls.
func (m *GameMap) IsWallAt(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return true
	}
	return m.IsWall(int(math.Floor(x)), int(math.Floor(y)))
}

// FirstFloor scans row-major from the top-left and returns the first floor cell.
func (m *GameMap) FirstFloor() (int, int, bool) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Cells[y][x] == Floor {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// FloorCells returns every floor cell inside r, row-major.
func (m *GameMap) FloorCells(r Rect) [][2]int {
	var out [][2]int
	for y := max(r.Y1, 0); y <= min(r.Y2, m.Height-1); y++ {
		for x := max(r.X1, 0); x <= min(r.X2, m.Width-1); x++ {
			if m.Cells[y][x] == Floor {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// CountFloor returns the number of floor cells.
func (m *GameMap) CountFloor() int {
	n := 0
	for y := range m.Cells {
		for _, c := range m.Cells[y] {
			if c == Floor {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of m.
func (m *GameMap) Clone() *GameMap {
	c := &GameMap{Width: m.Width, Height: m.Height, Cells: make([][]Cell, m.Height)}
	for y := range m.Cells {
		c.Cells[y] = append([]Cell(nil), m.Cells[y]...)
	}
	return c
}

// Flatten encodes the grid row-major as 0 (floor) / 1 (wall).
func (m *GameMap) Flatten() []int {
	out := make([]int, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Cells[y][x] == Floor {
				out = append(out, flatFloor)
			} else {
				out = append(out, flatWall)
			}
		}
	}
	return out
}

// FromFlat decodes a grid produced by Flatten. The slice must hold exactly
// width*height values, each 0 or 1.
func FromFlat(width, height int, flat []int) (*GameMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gamemap: invalid size %dx%d", width, height)
	}
	if len(flat) != width*height {
		return nil, fmt.Errorf("gamemap: got %d cells, want %d", len(flat), width*height)
	}
	m := New(width, height)
	for i, v := range flat {
		x, y := i%width, i/width
		switch v {
		case flatFloor:
			m.Cells[y][x] = Floor
		case flatWall:
			m.Cells[y][x] = Wall
		default:
			return nil, fmt.Errorf("gamemap: cell %d has value %d", i, v)
		}
	}
	return m, nil
}
