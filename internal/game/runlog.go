package game

import (
	"encoding/json"
	"os"
	"path/filepath"

	"dungeon-arcanum/internal/store"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Seed          int64   `json:"seed"`
	Score         int     `json:"score"`
	Level         int     `json:"level"`
	EnemiesKilled int     `json:"enemies_killed"`
	DamageDealt   int     `json:"damage_dealt"`
	DamageTaken   int     `json:"damage_taken"`
	ItemsFound    int     `json:"items_found"`
	Seconds       float64 `json:"seconds"`
	Died          bool    `json:"died"`
}

// SaveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Errors are silently discarded so a disk problem never crashes the game.
func SaveRunLog(log RunLog) {
	dir, err := store.DataDir()
	if err != nil {
		return
	}
	appendRunLog(dir, log)
}

func appendRunLog(dir string, log RunLog) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return
	}
	data = append(data, '\n')
	f.Write(data) //nolint:errcheck // best-effort write
}
