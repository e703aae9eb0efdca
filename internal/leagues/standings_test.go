package leagues_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/codr1/teamdesk/internal/leagues"
	"github.com/codr1/teamdesk/internal/testutil"
)

type record struct {
	Played, Wins, Draws, Losses, GoalsFor, GoalsAgainst, GoalDifference, Points int
}

func recordOf(entry *leagues.TeamStats) record {
	return record{
		Played:         entry.Played,
		Wins:           entry.Wins,
		Draws:          entry.Draws,
		Losses:         entry.Losses,
		GoalsFor:       entry.GoalsFor,
		GoalsAgainst:   entry.GoalsAgainst,
		GoalDifference: entry.GoalDifference,
		Points:         entry.Points,
	}
}

func statsByID(group *leagues.Group) map[string]record {
	out := make(map[string]record, len(group.Teams))
	for _, entry := range group.Teams {
		out[entry.Team.ID] = recordOf(entry)
	}
	return out
}

func twoTeamGroup(t *testing.T) (*leagues.Group, *leagues.Match) {
	t.Helper()

	group := testutil.NewGroup(t, "A", testutil.NewTeams(t, 2)...)
	if len(group.Matches) != 1 {
		t.Fatalf("expected one fixture, got %d", len(group.Matches))
	}
	return group, group.Matches[0]
}

func TestUpdateLeagueStatsAfterMatchWin(t *testing.T) {
	group, fixture := twoTeamGroup(t)
	played := testutil.Score(fixture.Clone(), 3, 1)

	updated, err := leagues.UpdateLeagueStatsAfterMatch(group, played)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	stats := statsByID(updated)
	winner := stats[played.HomeTeamID]
	loser := stats[played.AwayTeamID]
	if want := (record{Played: 1, Wins: 1, GoalsFor: 3, GoalsAgainst: 1, GoalDifference: 2, Points: 3}); winner != want {
		t.Fatalf("winner = %+v, want %+v", winner, want)
	}
	if want := (record{Played: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 3, GoalDifference: -2}); loser != want {
		t.Fatalf("loser = %+v, want %+v", loser, want)
	}

	again, err := leagues.UpdateLeagueStatsAfterMatch(updated, played)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if !reflect.DeepEqual(statsByID(again), stats) {
		t.Fatalf("re-applying the same result changed standings: %+v", statsByID(again))
	}

	if fixture.Played || group.Teams[0].Played != 0 {
		t.Fatal("caller's group was modified")
	}
}

func TestUpdateLeagueStatsAfterMatchDraw(t *testing.T) {
	group, fixture := twoTeamGroup(t)

	updated, err := leagues.UpdateLeagueStatsAfterMatch(group, testutil.Score(fixture.Clone(), 2, 2))
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := record{Played: 1, Draws: 1, GoalsFor: 2, GoalsAgainst: 2, Points: 1}
	for id, got := range statsByID(updated) {
		if got != want {
			t.Fatalf("team %s = %+v, want %+v", id, got, want)
		}
	}
}

func TestUpdateLeagueStatsAfterMatchShootout(t *testing.T) {
	group, fixture := twoTeamGroup(t)
	played := testutil.Score(fixture.Clone(), 1, 1)
	winner := played.AwayTeamID
	played.WinnerID = &winner

	updated, err := leagues.UpdateLeagueStatsAfterMatch(group, played)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	stats := statsByID(updated)
	if want := (record{Played: 1, Wins: 1, GoalsFor: 1, GoalsAgainst: 1, Points: 2}); stats[played.AwayTeamID] != want {
		t.Fatalf("shootout winner = %+v, want %+v", stats[played.AwayTeamID], want)
	}
	if want := (record{Played: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 1, Points: 1}); stats[played.HomeTeamID] != want {
		t.Fatalf("shootout loser = %+v, want %+v", stats[played.HomeTeamID], want)
	}
}

func TestUpdateLeagueStatsAfterMatchIgnoresUnfinishedMatches(t *testing.T) {
	tests := []struct {
		name  string
		match func(*leagues.Match) *leagues.Match
	}{
		{name: "not_played", match: func(m *leagues.Match) *leagues.Match {
			m = testutil.Score(m, 4, 0)
			m.Played = false
			return m
		}},
		{name: "missing_away_score", match: func(m *leagues.Match) *leagues.Match {
			m = testutil.Score(m, 4, 0)
			m.AwayScore = nil
			return m
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			group, fixture := twoTeamGroup(t)
			updated, err := leagues.UpdateLeagueStatsAfterMatch(group, test.match(fixture.Clone()))
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			for id, got := range statsByID(updated) {
				if got != (record{}) {
					t.Fatalf("team %s = %+v, want zero record", id, got)
				}
			}
		})
	}
}

func TestUpdateLeagueStatsAfterMatchErrors(t *testing.T) {
	group, fixture := twoTeamGroup(t)

	if _, err := leagues.UpdateLeagueStatsAfterMatch(nil, fixture); !errors.Is(err, leagues.ErrInvalidArgument) {
		t.Fatalf("nil group: got %v", err)
	}
	if _, err := leagues.UpdateLeagueStatsAfterMatch(group, nil); !errors.Is(err, leagues.ErrInvalidArgument) {
		t.Fatalf("nil match: got %v", err)
	}
	if _, err := leagues.UpdateLeagueStatsAfterMatch(group, &leagues.Match{ID: "missing"}); !errors.Is(err, leagues.ErrMatchNotFound) {
		t.Fatalf("unknown match: got %v", err)
	}

	broken := group.Clone()
	broken.Matches = nil
	if _, err := leagues.UpdateLeagueStatsAfterMatch(broken, fixture); !errors.Is(err, leagues.ErrMalformedGroup) {
		t.Fatalf("nil matches: got %v", err)
	}
}

func TestRecalculateStandingsStartsFromZero(t *testing.T) {
	group := testutil.NewGroup(t, "A", testutil.NewTeams(t, 3)...)
	for _, entry := range group.Teams {
		entry.Points = 99
		entry.Played = 7
	}
	testutil.Score(group.Matches[0], 2, 0)

	out := leagues.RecalculateStandings(group)

	total := 0
	for _, entry := range out.Teams {
		total += entry.Played
		if entry.GoalDifference != entry.GoalsFor-entry.GoalsAgainst {
			t.Fatalf("team %s goal difference %d inconsistent", entry.Team.ID, entry.GoalDifference)
		}
	}
	if total != 2 {
		t.Fatalf("played total = %d, want 2", total)
	}
	if group.Teams[0].Points != 99 {
		t.Fatal("caller's group was modified")
	}
}

func TestRecalculateTableIgnoresStoredCounters(t *testing.T) {
	comp := testutil.NewCompetition(t, 2, "A", "B")
	table := comp.PreliminaryRound
	played := testutil.Score(table.Groups[0].Matches[0], 3, 0)
	table.Groups[1].Teams[0].Points = 9
	table.Groups[1].Teams[0].Wins = 3
	table.Groups = append(table.Groups, nil)

	out := leagues.RecalculateTable(table)

	groupA := statsByID(out.Groups[0])
	if want := (record{Played: 1, Wins: 1, GoalsFor: 3, GoalDifference: 3, Points: 3}); groupA[played.HomeTeamID] != want {
		t.Fatalf("group A winner = %+v, want %+v", groupA[played.HomeTeamID], want)
	}
	for id, stats := range statsByID(out.Groups[1]) {
		if stats != (record{}) {
			t.Fatalf("group B team %s = %+v, want zero record", id, stats)
		}
	}
	if out.Groups[2] != nil {
		t.Fatal("missing group should stay missing")
	}
	if table.Groups[1].Teams[0].Points != 9 {
		t.Fatal("caller's table was modified")
	}
	if leagues.RecalculateTable(nil) != nil {
		t.Fatal("nil table should stay nil")
	}
}

func TestRecalculateStandingsOrderIndependent(t *testing.T) {
	group := testutil.NewGroup(t, "A", testutil.NewTeams(t, 4)...)
	for i, match := range group.Matches {
		testutil.Score(match, i%3, (i+1)%2)
	}

	forward := leagues.RecalculateStandings(group)

	reversed := group.Clone()
	for i, j := 0, len(reversed.Matches)-1; i < j; i, j = i+1, j-1 {
		reversed.Matches[i], reversed.Matches[j] = reversed.Matches[j], reversed.Matches[i]
	}
	backward := leagues.RecalculateStandings(reversed)

	if !reflect.DeepEqual(statsByID(forward), statsByID(backward)) {
		t.Fatalf("standings depend on match order:\n%+v\n%+v", statsByID(forward), statsByID(backward))
	}
}

func TestRankTeams(t *testing.T) {
	entry := func(id, name string, points, gd, gf int) *leagues.TeamStats {
		return &leagues.TeamStats{
			Team:           leagues.Team{ID: id, Name: name},
			Points:         points,
			GoalDifference: gd,
			GoalsFor:       gf,
		}
	}
	teams := []*leagues.TeamStats{
		entry("e", "Echo", 3, 1, 2),
		entry("a", "Alpha", 6, 0, 1),
		entry("d", "Delta", 3, 1, 4),
		nil,
		entry("c", "Charlie", 3, 2, 2),
		entry("b2", "Bravo", 3, 1, 2),
		entry("b1", "Bravo", 3, 1, 2),
	}

	ranked := leagues.RankTeams(teams)

	want := []string{"a", "c", "d", "b1", "b2", "e"}
	if len(ranked) != len(want) {
		t.Fatalf("got %d teams, want %d", len(ranked), len(want))
	}
	for i, id := range want {
		if ranked[i].Team.ID != id {
			t.Fatalf("rank %d: got %s, want %s", i+1, ranked[i].Team.ID, id)
		}
	}
	if teams[0].Team.ID != "e" {
		t.Fatal("RankTeams reordered its input")
	}
}
