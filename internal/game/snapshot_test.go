package game

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"dungeon-arcanum/internal/store"
)

func TestSnapshotJSONShape(t *testing.T) {
	s := newTestState(t, 1)
	placeEnemyNearPlayer(t, s, 3, 0)
	data, err := json.Marshal(s.Serialize())
	if err != nil {
		t.Fatal(err)
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"map", "player", "enemies", "score", "level"} {
		if _, ok := generic[k]; !ok {
			t.Errorf("snapshot JSON lacks %q: %s", k, data)
		}
	}
	player := generic["player"].(map[string]any)
	for _, k := range []string{"x", "y", "hp", "inv"} {
		if _, ok := player[k]; !ok {
			t.Errorf("player JSON lacks %q", k)
		}
	}
	if n := len(generic["map"].([]any)); n != 40*30 {
		t.Errorf("map has %d cells, want %d", n, 40*30)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	s, err := New(DefaultRules(), 77)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 40; i++ {
		s.Step(0.05, NewIntent(1, 1, i%5 == 0, i == 3))
	}
	s.Score = 30
	s.Level = 2

	data, err := json.Marshal(s.Serialize())
	if err != nil {
		t.Fatal(err)
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	got, err := Deserialize(snap, s.Rules, 1)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if !reflect.DeepEqual(got.Map.Cells, s.Map.Cells) {
		t.Error("grid differs after round trip")
	}
	if got.Player.Pos != s.Player.Pos || got.Player.HP != s.Player.HP {
		t.Errorf("player = %v/%d, want %v/%d", got.Player.Pos, got.Player.HP, s.Player.Pos, s.Player.HP)
	}
	if !reflect.DeepEqual(got.Player.Player.Inventory, s.Player.Player.Inventory) {
		t.Errorf("inventory = %v, want %v", got.Player.Player.Inventory, s.Player.Player.Inventory)
	}
	if len(got.Enemies) != len(s.Enemies) {
		t.Fatalf("got %d enemies, want %d", len(got.Enemies), len(s.Enemies))
	}
	for i := range s.Enemies {
		if got.Enemies[i].Pos != s.Enemies[i].Pos || got.Enemies[i].HP != s.Enemies[i].HP {
			t.Errorf("enemy %d = %v/%d, want %v/%d", i,
				got.Enemies[i].Pos, got.Enemies[i].HP, s.Enemies[i].Pos, s.Enemies[i].HP)
		}
	}
	if got.Score != 30 || got.Level != 2 || got.Running != s.Running {
		t.Errorf("score=%d level=%d running=%v", got.Score, got.Level, got.Running)
	}
	if !reflect.DeepEqual(got.Serialize(), s.Serialize()) {
		t.Error("re-serialized snapshot differs")
	}
}

func TestDeserializeRejectsBadSnapshots(t *testing.T) {
	base := func(t *testing.T) Snapshot {
		s := newTestState(t, 1)
		placeEnemyNearPlayer(t, s, 2, 0)
		return s.Serialize()
	}
	cases := []struct {
		name   string
		mutate func(*Snapshot)
		field  string
	}{
		{"short map", func(sn *Snapshot) { sn.Map = sn.Map[:10] }, "map"},
		{"bad cell", func(sn *Snapshot) { sn.Map[0] = 7 }, "map"},
		{"player in wall", func(sn *Snapshot) { sn.Player.X, sn.Player.Y = 0.5, 0.5 }, "player"},
		{"player hp over max", func(sn *Snapshot) { sn.Player.HP = 101 }, "player.hp"},
		{"negative player hp", func(sn *Snapshot) { sn.Player.HP = -1 }, "player.hp"},
		{"dead enemy", func(sn *Snapshot) { sn.Enemies[0].HP = 0 }, "enemies[0].hp"},
		{"enemy off grid", func(sn *Snapshot) { sn.Enemies[0].X = 500 }, "enemies[0]"},
		{"level zero", func(sn *Snapshot) { sn.Level = 0 }, "level"},
		{"negative score", func(sn *Snapshot) { sn.Score = -5 }, "score"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := base(t)
			tc.mutate(&snap)
			st, err := Deserialize(snap, DefaultRules(), 1)
			var se *SnapshotError
			if !errors.As(err, &se) {
				t.Fatalf("err = %v; want *SnapshotError", err)
			}
			if se.Field != tc.field {
				t.Errorf("field = %q, want %q", se.Field, tc.field)
			}
			if st != nil {
				t.Error("a failed Deserialize must not return a state")
			}
		})
	}
}

func TestDeserializeDeadPlayerIsNotRunning(t *testing.T) {
	snap := newTestState(t, 1).Serialize()
	snap.Player.HP = 0
	s, err := Deserialize(snap, DefaultRules(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if s.Running {
		t.Error("restored game with 0 HP should not be running")
	}
}

func TestDecodeSnapshotRejectsBadBlobs(t *testing.T) {
	valid, err := json.Marshal(newTestState(t, 1).Serialize())
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		blob string
	}{
		{"not json", "{"},
		{"empty object", "{}"},
		{"missing score", strings.Replace(string(valid), `"score":0,`, "", 1)},
		{"unknown field", strings.Replace(string(valid), `"level":1`, `"level":1,"version":2`, 1)},
		{"player missing hp", `{"map":[],"player":{"x":1,"y":1,"inv":[]},"enemies":[],"score":0,"level":1}`},
		{"enemy missing x", `{"map":[],"player":{"x":1,"y":1,"hp":1,"inv":[]},"enemies":[{"y":1,"hp":1}],"score":0,"level":1}`},
		{"player missing inv", `{"map":[],"player":{"x":1,"y":1,"hp":1},"enemies":[],"score":0,"level":1}`},
		{"player null inv", `{"map":[],"player":{"x":1,"y":1,"hp":1,"inv":null},"enemies":[],"score":0,"level":1}`},
		{"trailing garbage", string(valid) + " trailing-garbage"},
		{"second object", string(valid) + string(valid)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSnapshot([]byte(tc.blob))
			var se *SnapshotError
			if !errors.As(err, &se) {
				t.Errorf("err = %v; want *SnapshotError", err)
			}
		})
	}
}

func TestDecodeSnapshotTrailingData(t *testing.T) {
	blob := `{"map":[],"player":{"x":1,"y":1,"hp":1,"inv":[]},"enemies":[],"score":0,"level":1}`
	if _, err := DecodeSnapshot([]byte(blob + "\n\t ")); err != nil {
		t.Fatalf("trailing whitespace rejected: %v", err)
	}
	_, err := DecodeSnapshot([]byte(blob + " trailing-garbage"))
	var se *SnapshotError
	if !errors.As(err, &se) || se.Field != "blob" {
		t.Fatalf("err = %v; want *SnapshotError on blob", err)
	}

	_, err = DecodeSnapshot([]byte(`{"map":[],"player":{"x":1,"y":1,"hp":1},"enemies":[],"score":0,"level":1}`))
	if !errors.As(err, &se) || se.Field != "player.inv" {
		t.Fatalf("err = %v; want *SnapshotError on player.inv", err)
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	st := store.NewFileStore(t.TempDir())
	rules := DefaultRules()

	if _, err := Load(ctx, st, DefaultSaveKey, rules, 1); !errors.Is(err, ErrNoSave) {
		t.Fatalf("Load on empty store: err = %v; want ErrNoSave", err)
	}

	s, err := New(rules, 9)
	if err != nil {
		t.Fatal(err)
	}
	s.Step(0.05, Intent{Pickup: true})
	if err := Save(ctx, st, DefaultSaveKey, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(ctx, st, DefaultSaveKey, rules, 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got.Serialize(), s.Serialize()) {
		t.Error("loaded game differs from saved game")
	}
}

func TestLoadMalformedBlob(t *testing.T) {
	ctx := context.Background()
	st := store.NewFileStore(t.TempDir())
	if err := st.Put(ctx, DefaultSaveKey, []byte(`{"map":[1,0]}`)); err != nil {
		t.Fatal(err)
	}
	_, err := Load(ctx, st, DefaultSaveKey, DefaultRules(), 1)
	var se *SnapshotError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v; want *SnapshotError", err)
	}
}
