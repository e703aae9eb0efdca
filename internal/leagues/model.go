package leagues

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrGroupNotFound   = errors.New("group not found")
	ErrTeamNotFound    = errors.New("team not found in source group")
	ErrMatchNotFound   = errors.New("match not found in group")
	ErrMalformedGroup  = errors.New("group has no match list")
)

type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
	Bye  bool   `json:"isBye,omitempty"`
}

// TeamStats is a team's cumulative record inside one group. It is
// derived from the group's completed matches and never edited directly.
type TeamStats struct {
	Team           Team `json:"team"`
	Played         int  `json:"played"`
	Wins           int  `json:"wins"`
	Draws          int  `json:"draws"`
	Losses         int  `json:"losses"`
	GoalsFor       int  `json:"goalsFor"`
	GoalsAgainst   int  `json:"goalsAgainst"`
	GoalDifference int  `json:"goalDifference"`
	Points         int  `json:"points"`
}

type Match struct {
	ID         string  `json:"id"`
	Round      int     `json:"round,omitempty"`
	HomeTeamID string  `json:"team1Id"`
	AwayTeamID string  `json:"team2Id"`
	HomeScore  *int    `json:"team1Score"`
	AwayScore  *int    `json:"team2Score"`
	Played     bool    `json:"isCompleted"`
	WinnerID   *string `json:"winnerId,omitempty"`
	StartTime  *string `json:"startTime"`
	Court      *int    `json:"court"`
}

// Group is one round-robin pool. A nil Matches slice is corruption;
// a group without fixtures carries an empty slice.
type Group struct {
	Name    string       `json:"name"`
	Teams   []*TeamStats `json:"teams"`
	Matches []*Match     `json:"matches"`
}

type Table struct {
	Name   string   `json:"name,omitempty"`
	Groups []*Group `json:"groups"`
}

// UnmarshalJSON decodes a group from stored state. A "matches" value that
// is not an array is left nil so that Validate and Sanitize can see the
// corruption instead of the whole payload being rejected.
func (g *Group) UnmarshalJSON(data []byte) error {
	type plain Group
	var raw struct {
		plain
		Matches json.RawMessage `json:"matches"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	matches, err := decodeList[*Match](raw.Matches)
	if err != nil {
		return err
	}
	*g = Group(raw.plain)
	g.Matches = matches
	return nil
}

// UnmarshalJSON leaves Groups nil when "groups" is not an array.
func (t *Table) UnmarshalJSON(data []byte) error {
	type plain Table
	var raw struct {
		plain
		Groups json.RawMessage `json:"groups"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	groups, err := decodeList[*Group](raw.Groups)
	if err != nil {
		return err
	}
	*t = Table(raw.plain)
	t.Groups = groups
	return nil
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type Competition struct {
	PreliminaryRound *Table `json:"preliminaryRound"`
	FinalRoundLeague *Table `json:"finalRoundLeague,omitempty"`
}

type NamedTable struct {
	Name  string
	Table *Table
}

// Rounds lists the tables present on the competition in play order.
func (c *Competition) Rounds() []NamedTable {
	if c == nil {
		return nil
	}
	var rounds []NamedTable
	if c.PreliminaryRound != nil {
		rounds = append(rounds, NamedTable{Name: "preliminaryRound", Table: c.PreliminaryRound})
	}
	if c.FinalRoundLeague != nil {
		rounds = append(rounds, NamedTable{Name: "finalRoundLeague", Table: c.FinalRoundLeague})
	}
	return rounds
}

func (t *Table) FindGroup(name string) *Group {
	if t == nil {
		return nil
	}
	for _, group := range t.Groups {
		if group != nil && group.Name == name {
			return group
		}
	}
	return nil
}

func (g *Group) teamIndex(teamID string) int {
	for i, entry := range g.Teams {
		if entry != nil && entry.Team.ID == teamID {
			return i
		}
	}
	return -1
}

func (g *Group) matchIndex(matchID string) int {
	for i, match := range g.Matches {
		if match != nil && match.ID == matchID {
			return i
		}
	}
	return -1
}

func (s *TeamStats) reset() {
	s.Played = 0
	s.Wins = 0
	s.Draws = 0
	s.Losses = 0
	s.GoalsFor = 0
	s.GoalsAgainst = 0
	s.GoalDifference = 0
	s.Points = 0
}

func intPtr(v int) *int {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
