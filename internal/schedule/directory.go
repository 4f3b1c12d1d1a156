package schedule

import "github.com/multicourt/vbl-scanner/internal/vbl"

// TeamInfo is the directory view of one roster entry.
type TeamInfo struct {
	Name    string
	Seed    *int
	Players []string
}

// TeamDirectory maps division-wide team ids to their display info.
type TeamDirectory map[int]TeamInfo

// BuildDirectory projects the hydrate roster into a lookup table. Entries
// with id 0 are placeholder slots and are skipped without logging. An empty
// roster yields an empty, usable directory.
func BuildDirectory(teams []vbl.Team) TeamDirectory {
	dir := make(TeamDirectory, len(teams))
	for _, t := range teams {
		if t.ID == 0 {
			continue
		}
		name := t.Name
		if name == "" {
			name = "Unknown"
		}
		players := make([]string, 0, len(t.Players))
		for _, p := range t.Players {
			players = append(players, p.Name)
		}
		dir[t.ID] = TeamInfo{
			Name:    name,
			Seed:    t.Seed,
			Players: players,
		}
	}
	return dir
}
