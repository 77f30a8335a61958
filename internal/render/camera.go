package render

import "math"

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera for a viewport of viewW columns by viewH rows.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Center repositions the camera so that the continuous world position
// (x, y) is in the middle. Offsets stay on whole tiles so the grid never
// shifts by half a tile.
func (c *Camera) Center(x, y float64) {
	c.OffsetX = int(math.Floor(x)) - (c.ViewWidth/2)/2
	c.OffsetY = int(math.Floor(y)) - c.ViewHeight/2
}

// TileToScreen converts the tile (wx, wy) to the screen cell of its left
// column. visible is false when the tile falls outside the viewport.
func (c *Camera) TileToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// PointToScreen places a two-column sprite centered on the continuous
// position (x, y). Horizontal placement has half-tile resolution.
func (c *Camera) PointToScreen(x, y float64) (sx, sy int, visible bool) {
	sx = int(math.Floor((x - 0.5 - float64(c.OffsetX)) * 2))
	sy = int(math.Floor(y - float64(c.OffsetY)))
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to tile coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, sy + c.OffsetY
}
