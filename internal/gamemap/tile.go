package gamemap

// Cell is the content of one grid square.
type Cell uint8

const (
	Wall Cell = iota
	Floor
)

// String returns a short debug name for the cell.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	}
	return "invalid"
}

// Valid reports whether c is one of the known cell kinds.
func (c Cell) Valid() bool { return c == Wall || c == Floor }

// flat encodings used by save files: 0 floor, 1 wall.
const (
	flatFloor = 0
	flatWall  = 1
)
