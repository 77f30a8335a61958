package generate

import (
	"dungeon-arcanum/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// Reachable returns every floor cell 4-connected to (sx, sy). The result is
// empty when the start is not a floor cell.
func Reachable(gmap *gamemap.GameMap, sx, sy int) mapset.Set[[2]int] {
	visited := mapset.New[[2]int]()
	if gmap.IsWall(sx, sy) {
		return visited
	}
	start := [2]int{sx, sy}
	queue := [][2]int{start}
	visited.Put(start)

	dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			next := [2]int{cur[0] + d[0], cur[1] + d[1]}
			if gmap.IsWall(next[0], next[1]) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// Regions counts the 4-connected floor regions of gmap. Maps built by
// Generate have one region whenever RoomCount > 0; maps restored from a save
// file may not.
func Regions(gmap *gamemap.GameMap) int {
	seen := mapset.New[[2]int]()
	n := 0
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if gmap.IsWall(x, y) || seen.Has([2]int{x, y}) {
				continue
			}
			n++
			region := Reachable(gmap, x, y)
			region.Each(func(c [2]int) { seen.Put(c) })
		}
	}
	return n
}
