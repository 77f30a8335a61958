package generate

import "dungeon-arcanum/internal/gamemap"

// randRange returns a uniform integer in [lo, hi].
func randRange(cfg *Config, lo, hi int) int {
	return lo + cfg.Rand.Intn(hi-lo+1)
}

// placeRoom samples one room and carves it. Rooms may overlap earlier ones.
func placeRoom(gmap *gamemap.GameMap, cfg *Config) gamemap.Rect {
	rw := randRange(cfg, cfg.MinRoomW, cfg.MaxRoomW)
	rh := randRange(cfg, cfg.MinRoomH, cfg.MaxRoomH)
	rx := randRange(cfg, 1, gmap.Width-rw-2)
	ry := randRange(cfg, 1, gmap.Height-rh-2)

	room := gamemap.NewRect(rx, ry, rw, rh)
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.Floor)
		}
	}
	return room
}

// Generate scatters cfg.RoomCount rooms over a wall-filled grid and joins
// each room to the one placed before it with an L-shaped corridor.
// The rooms are returned in placement order; the map does not keep them.
func Generate(cfg *Config) (*gamemap.GameMap, []gamemap.Rect, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	gmap := gamemap.New(cfg.Width, cfg.Height)

	rooms := make([]gamemap.Rect, 0, cfg.RoomCount)
	for range cfg.RoomCount {
		rooms = append(rooms, placeRoom(gmap, cfg))
	}

	for i := 1; i < len(rooms); i++ {
		ax, ay := rooms[i-1].Center()
		bx, by := rooms[i].Center()
		carveCorridor(gmap, ax, ay, bx, by, cfg)
	}
	return gmap, rooms, nil
}
