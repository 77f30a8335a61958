package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	SaveRunLog(RunLog{Seed: 7, Score: 40, Level: 1, EnemiesKilled: 1, Died: true})

	logPath := filepath.Join(tmp, "dungeon-arcanum", "runs.jsonl")
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		t.Errorf("log entry should end with newline; got: %q", content)
	}
	var got RunLog
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &got); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if got.Seed != 7 || got.Score != 40 || !got.Died {
		t.Errorf("round-tripped entry = %+v", got)
	}
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	for i := range 3 {
		SaveRunLog(RunLog{Score: i * 10, Level: 1})
	}

	data, err := os.ReadFile(filepath.Join(tmp, "dungeon-arcanum", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

func TestStepAccumulatesStats(t *testing.T) {
	s := newTestState(t, 3)
	e := placeEnemyNearPlayer(t, s, 0.5, 0)
	e.HP = 30

	s.Step(0.05, Intent{Attack: true, Pickup: true})
	if s.Stats.EnemiesKilled != 1 || s.Stats.DamageDealt != 30 || s.Stats.ItemsFound != 1 {
		t.Errorf("stats = %+v", s.Stats)
	}
	if s.Stats.Score != s.Score {
		t.Errorf("stats score %d != state score %d", s.Stats.Score, s.Score)
	}
}
