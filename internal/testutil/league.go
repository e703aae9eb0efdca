package testutil

import (
	"fmt"
	"testing"

	"github.com/codr1/teamdesk/internal/leagues"
)

// NewTeams builds n team entries with ids "t1".."tn" and names "Team 1".."Team n".
func NewTeams(t *testing.T, n int) []*leagues.TeamStats {
	t.Helper()

	teams := make([]*leagues.TeamStats, 0, n)
	for i := 1; i <= n; i++ {
		teams = append(teams, &leagues.TeamStats{
			Team: leagues.Team{ID: fmt.Sprintf("t%d", i), Name: fmt.Sprintf("Team %d", i)},
		})
	}
	return teams
}

// NewGroup builds a group with a freshly generated, unplayed round-robin.
func NewGroup(t *testing.T, name string, teams ...*leagues.TeamStats) *leagues.Group {
	t.Helper()

	return &leagues.Group{
		Name:    name,
		Teams:   teams,
		Matches: leagues.GenerateFixturesForGroup(teams),
	}
}

// NewCompetition builds a preliminary round with one group per name,
// dealing teamsPerGroup teams into each.
func NewCompetition(t *testing.T, teamsPerGroup int, names ...string) *leagues.Competition {
	t.Helper()

	table := &leagues.Table{Name: "Preliminary", Groups: make([]*leagues.Group, 0, len(names))}
	for _, name := range names {
		teams := make([]*leagues.TeamStats, 0, teamsPerGroup)
		for i := 1; i <= teamsPerGroup; i++ {
			teams = append(teams, &leagues.TeamStats{
				Team: leagues.Team{ID: fmt.Sprintf("%s%d", name, i), Name: fmt.Sprintf("Team %s%d", name, i)},
			})
		}
		table.Groups = append(table.Groups, NewGroup(t, name, teams...))
	}
	return &leagues.Competition{PreliminaryRound: table}
}

// Score marks match as played with the given score.
func Score(match *leagues.Match, home, away int) *leagues.Match {
	match.HomeScore = &home
	match.AwayScore = &away
	match.Played = true
	return match
}
