package brackets

import (
	"errors"
	"fmt"

	"github.com/codr1/teamdesk/internal/leagues"
)

var (
	ErrNotEnoughTeams = errors.New("at least two teams are required")
	ErrMatchNotFound  = errors.New("bracket match not found")
	ErrMatchNotReady  = errors.New("bracket match is waiting for its teams")
	ErrNoWinner       = errors.New("tied score needs a winner")
)

// Bracket is a single-elimination tree stored round by round. Match i of
// round r feeds slot i%2 of match i/2 in round r+1.
type Bracket struct {
	Name   string   `json:"name"`
	Rounds []*Round `json:"rounds"`
}

type Round struct {
	Name    string   `json:"name"`
	Matches []*Match `json:"matches"`
}

type Match struct {
	ID       string        `json:"id"`
	Team1    *leagues.Team `json:"team1"`
	Team2    *leagues.Team `json:"team2"`
	Score1   *int          `json:"score1"`
	Score2   *int          `json:"score2"`
	WinnerID string        `json:"winnerId,omitempty"`
}

// IsBye reports whether one side of the match is a bye entry.
func (m *Match) IsBye() bool {
	return m != nil && ((m.Team1 != nil && m.Team1.Bye) || (m.Team2 != nil && m.Team2.Bye))
}

func (m *Match) Completed() bool {
	return m != nil && m.WinnerID != ""
}

// Winner returns the team whose id matches WinnerID, or nil.
func (m *Match) Winner() *leagues.Team {
	if m == nil || m.WinnerID == "" {
		return nil
	}
	for _, team := range []*leagues.Team{m.Team1, m.Team2} {
		if team != nil && team.ID == m.WinnerID {
			return team
		}
	}
	return nil
}

func (b *Bracket) Clone() *Bracket {
	if b == nil {
		return nil
	}
	out := &Bracket{Name: b.Name}
	if b.Rounds != nil {
		out.Rounds = make([]*Round, len(b.Rounds))
		for i, round := range b.Rounds {
			out.Rounds[i] = round.Clone()
		}
	}
	return out
}

func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	out := &Round{Name: r.Name}
	if r.Matches != nil {
		out.Matches = make([]*Match, len(r.Matches))
		for i, match := range r.Matches {
			out.Matches[i] = match.Clone()
		}
	}
	return out
}

func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	out := *m
	out.Team1 = cloneTeam(m.Team1)
	out.Team2 = cloneTeam(m.Team2)
	out.Score1 = cloneInt(m.Score1)
	out.Score2 = cloneInt(m.Score2)
	return &out
}

func (b *Bracket) locate(matchID string) (int, int, error) {
	for r, round := range b.Rounds {
		if round == nil {
			continue
		}
		for i, match := range round.Matches {
			if match != nil && match.ID == matchID {
				return r, i, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
}

func cloneTeam(team *leagues.Team) *leagues.Team {
	if team == nil {
		return nil
	}
	out := *team
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
