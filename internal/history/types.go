// Package history persists scan results and division seed snapshots to a
// local SQLite database or a Turso remote.
package history

import "time"

// ScanRow is one persisted scan in list form. Payload carries the full
// serialized result for replay.
type ScanRow struct {
	ID           string
	URL          string
	Status       string
	MatchType    string
	TypeDetail   string
	TotalMatches int
	ScannedAt    time.Time
	Payload      string
}

// TeamSeed is a division roster snapshot entry. Seed is nil for unseeded
// teams.
type TeamSeed struct {
	TeamID int
	Name   string
	Seed   *int
}
