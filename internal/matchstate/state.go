package matchstate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/codr1/teamdesk/internal/brackets"
	"github.com/codr1/teamdesk/internal/leagues"
)

// Match is a top-level event on the team calendar. League or bracket
// data is attached only for tournament days.
type Match struct {
	ID                    string               `json:"id"`
	Title                 string               `json:"title"`
	Date                  string               `json:"date,omitempty"`
	Venue                 string               `json:"venue,omitempty"`
	LeagueCompetitionData *leagues.Competition `json:"leagueCompetitionData,omitempty"`
	TournamentBracket     *brackets.Bracket    `json:"tournamentBracket,omitempty"`
}

func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	out := *m
	out.LeagueCompetitionData = m.LeagueCompetitionData.Clone()
	out.TournamentBracket = m.TournamentBracket.Clone()
	return &out
}

func CloneAll(matches []*Match) []*Match {
	if matches == nil {
		return nil
	}
	out := make([]*Match, len(matches))
	for i, match := range matches {
		out[i] = match.Clone()
	}
	return out
}

// Decode reads a JSON array of matches. The result is not validated.
func Decode(r io.Reader) ([]*Match, error) {
	var matches []*Match
	if err := json.NewDecoder(r).Decode(&matches); err != nil {
		return nil, fmt.Errorf("decode match state: %w", err)
	}
	return matches, nil
}

func Encode(w io.Writer, matches []*Match) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(matches); err != nil {
		return fmt.Errorf("encode match state: %w", err)
	}
	return nil
}
