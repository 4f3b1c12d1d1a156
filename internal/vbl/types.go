package vbl

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Hydrate is the bulk "division hydrate" document: every team, day, bracket
// and pool for one tournament division in a single fetch. These structs are
// the only place the raw payload shape is known; extractor logic works on
// them, never on untyped maps.
type Hydrate struct {
	Teams []Team `json:"teams"`
	Days  []Day  `json:"days"`
}

// Team is a division roster entry. Name is already the display form, with
// multi-player teams pre-joined as "First Last / First Last".
type Team struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Seed    *int     `json:"seed"`
	Players []Player `json:"players"`
}

type Player struct {
	Name string `json:"name"`
}

// Day is one tournament day. A day can carry bracket play, pool play, or both.
type Day struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	BracketPlay bool      `json:"bracketPlay"`
	PoolPlay    bool      `json:"poolPlay"`
	Brackets    []Bracket `json:"brackets"`
	Flights     []Flight  `json:"flights"`
}

type Bracket struct {
	ID                   int           `json:"id"`
	Name                 string        `json:"name"`
	Type                 string        `json:"type"`
	WinnersMatchSettings MatchSettings `json:"winnersMatchSettings"`
	Matches              []Match       `json:"matches"`
}

type MatchSettings struct {
	GameSettings []GameSetting `json:"gameSettings"`
}

// GameSetting is one game's configuration and, when played, its score.
// Cap carries the platform's 0-means-uncapped convention; it is translated
// to nil at the extraction boundary, not here.
type GameSetting struct {
	To   int  `json:"to"`
	Cap  *int `json:"cap"`
	Home int  `json:"home"`
	Away int  `json:"away"`
}

// Match is a raw bracket or pool match. An ID of 0 marks a placeholder slot;
// combined with IsBye it identifies matches that are never played.
type Match struct {
	ID            int           `json:"id"`
	DisplayNumber *int          `json:"displayNumber"`
	Number        *int          `json:"number"`
	HomeTeam      *MatchTeam    `json:"homeTeam"`
	AwayTeam      *MatchTeam    `json:"awayTeam"`
	Court         Scalar        `json:"court"`
	StartTime     string        `json:"startTime"`
	IsBye         bool          `json:"isBye"`
	AwayMap       Scalar        `json:"awayMap"`
	Games         []GameSetting `json:"games"`
}

// MatchTeam is a side of a match. Seed is the seed for that round's position,
// which can differ from the team's division-wide seed.
type MatchTeam struct {
	TeamID int  `json:"teamId"`
	Seed   *int `json:"seed"`
}

type Flight struct {
	ID    int    `json:"id"`
	Pools []Pool `json:"pools"`
}

type Pool struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Teams   []PoolTeam `json:"teams"`
	Matches []Match    `json:"matches"`
}

// PoolTeam links a pool-local team id to the division-wide team id.
type PoolTeam struct {
	ID     int  `json:"id"`
	TeamID int  `json:"teamId"`
	Seed   *int `json:"seed"`
}

// Scalar is a JSON value the platform serializes inconsistently as a string,
// a number, or null ("court": 1 vs "court": "Stadium"). It decodes to its
// string form, empty when null or absent.
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = Scalar(n.String())
	return nil
}

func (s Scalar) String() string { return string(s) }

// IsZero reports whether the value was absent, null, empty, or a literal 0,
// the payload's ways of saying "unset".
func (s Scalar) IsZero() bool {
	if s == "" {
		return true
	}
	if n, err := strconv.Atoi(string(s)); err == nil && n == 0 {
		return true
	}
	return false
}
