// Package schedule holds the canonical match-schedule data model and the
// extraction pipeline that normalizes the platform's heterogeneous match
// representations into it.
package schedule

import "encoding/json"

// Match type labels carried on every record and scan result.
const (
	MatchTypeBracket = "Bracket Play"
	MatchTypePool    = "Pool Play"
)

// ScanResult statuses.
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusError   = "error"
	StatusPartial = "partial"
)

// MatchRecord is one scheduled match in its canonical form.
//
// The JSON key convention is deliberately mixed (camelCase for derived
// display fields, snake_case for identity fields) because the downstream
// native-app consumer parses exactly these keys. Do not "fix" it.
//
// Index is only stable within one scan: the orchestrator overwrites it in a
// final re-indexing pass after all sub-extractions are merged.
type MatchRecord struct {
	Index        int     `json:"index"`
	MatchNumber  *string `json:"match_number"`
	Team1        *string `json:"team1"`
	Team2        *string `json:"team2"`
	Team1Seed    *string `json:"team1_seed"`
	Team2Seed    *string `json:"team2_seed"`
	Court        *string `json:"court"`
	StartTime    *string `json:"startTime"`
	StartDate    *string `json:"startDate"`
	APIURL       *string `json:"api_url"`
	MatchType    string  `json:"match_type"`
	TypeDetail   string  `json:"type_detail"`
	SetsToWin    int     `json:"setsToWin"`
	PointsPerSet int     `json:"pointsPerSet"`
	PointCap     *int    `json:"pointCap"`
	FormatText   *string `json:"formatText"`
	Team1Score   int     `json:"team1_score"`
	Team2Score   int     `json:"team2_score"`
}

// ScanResult is the envelope for one scanned URL.
type ScanResult struct {
	URL        string        `json:"url"`
	Timestamp  string        `json:"timestamp"`
	Matches    []MatchRecord `json:"matches"`
	Status     string        `json:"status"`
	Error      *string       `json:"error"`
	MatchType  string        `json:"match_type"`
	TypeDetail string        `json:"type_detail"`
}

// TotalMatches is always derived from the match list, never stored.
func (r *ScanResult) TotalMatches() int {
	return len(r.Matches)
}

// MarshalJSON emits the derived total_matches alongside the stored fields.
func (r *ScanResult) MarshalJSON() ([]byte, error) {
	type alias ScanResult
	return json.Marshal(struct {
		*alias
		TotalMatches int `json:"total_matches"`
	}{
		alias:        (*alias)(r),
		TotalMatches: r.TotalMatches(),
	})
}

// Fail marks the result as errored with the given message.
func (r *ScanResult) Fail(msg string) *ScanResult {
	r.Status = StatusError
	r.Error = &msg
	return r
}

// Reindex rewrites every record's Index sequentially starting at 0, in
// assembly order. Bracket and pool extraction each number their output
// locally; this pass is what keeps those local indices from leaking into a
// merged result.
func Reindex(matches []MatchRecord) {
	for i := range matches {
		matches[i].Index = i
	}
}
