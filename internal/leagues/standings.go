package leagues

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

const (
	pointsForWin          = 3
	pointsForDraw         = 1
	pointsForShootoutWin  = 2
	pointsForShootoutLoss = 1
)

// RecalculateStandings returns a copy of the group whose team records
// are rebuilt from zero by replaying every completed, fully scored match.
func RecalculateStandings(group *Group) *Group {
	if group == nil {
		return nil
	}
	out := group.Clone()
	recalculate(out)
	return out
}

// RecalculateTable returns a copy of table with every group's standings
// rebuilt from its matches. Stored counters are never trusted.
func RecalculateTable(table *Table) *Table {
	if table == nil {
		return nil
	}
	out := table.Clone()
	for _, group := range out.Groups {
		if group != nil {
			recalculate(group)
		}
	}
	return out
}

// UpdateLeagueStatsAfterMatch swaps the match carrying updated.ID for a
// copy of updated and rebuilds the standings. The caller's group is left
// as it was.
func UpdateLeagueStatsAfterMatch(group *Group, updated *Match) (*Group, error) {
	logger := log.With().Str("component", "standings").Logger()

	if group == nil || updated == nil || updated.ID == "" {
		logger.Error().Msg("Group and match with an id are required to update standings")
		return nil, fmt.Errorf("%w: group and match are required", ErrInvalidArgument)
	}
	if group.Matches == nil {
		logger.Error().Str("group", group.Name).Msg("Cannot update standings for group without match list")
		return nil, fmt.Errorf("%w: %s", ErrMalformedGroup, group.Name)
	}

	out := group.Clone()
	idx := out.matchIndex(updated.ID)
	if idx < 0 {
		logger.Error().
			Str("group", group.Name).
			Str("match_id", updated.ID).
			Msg("Match to update not found in group")
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, updated.ID)
	}
	out.Matches[idx] = updated.Clone()
	recalculate(out)
	return out, nil
}

func recalculate(group *Group) {
	byID := make(map[string]*TeamStats, len(group.Teams))
	for _, entry := range group.Teams {
		if entry == nil {
			continue
		}
		entry.reset()
		byID[entry.Team.ID] = entry
	}

	for _, match := range group.Matches {
		if match == nil || !match.Played || match.HomeScore == nil || match.AwayScore == nil {
			continue
		}
		home, okHome := byID[match.HomeTeamID]
		away, okAway := byID[match.AwayTeamID]
		if !okHome || !okAway {
			log.Warn().
				Str("component", "standings").
				Str("group", group.Name).
				Str("match_id", match.ID).
				Msg("Skipping match with team outside the group")
			continue
		}
		applyResult(home, away, *match.HomeScore, *match.AwayScore, match.WinnerID)
	}

	for _, entry := range byID {
		entry.GoalDifference = entry.GoalsFor - entry.GoalsAgainst
	}
}

func applyResult(home, away *TeamStats, homeScore, awayScore int, winnerID *string) {
	home.Played++
	away.Played++
	home.GoalsFor += homeScore
	home.GoalsAgainst += awayScore
	away.GoalsFor += awayScore
	away.GoalsAgainst += homeScore

	switch {
	case homeScore > awayScore:
		recordWin(home, away, pointsForWin, 0)
	case awayScore > homeScore:
		recordWin(away, home, pointsForWin, 0)
	case winnerID != nil && *winnerID == home.Team.ID:
		recordWin(home, away, pointsForShootoutWin, pointsForShootoutLoss)
	case winnerID != nil && *winnerID == away.Team.ID:
		recordWin(away, home, pointsForShootoutWin, pointsForShootoutLoss)
	default:
		home.Draws++
		away.Draws++
		home.Points += pointsForDraw
		away.Points += pointsForDraw
	}
}

func recordWin(winner, loser *TeamStats, winnerPoints, loserPoints int) {
	winner.Wins++
	winner.Points += winnerPoints
	loser.Losses++
	loser.Points += loserPoints
}

// Standings returns the group's teams in ranking order.
func (g *Group) Standings() []*TeamStats {
	if g == nil {
		return nil
	}
	return RankTeams(g.Teams)
}

// RankTeams sorts a copy of teams by points, goal difference and goals
// scored, falling back to collated name and then id for a total order.
func RankTeams(teams []*TeamStats) []*TeamStats {
	ordered := make([]*TeamStats, 0, len(teams))
	for _, entry := range teams {
		if entry != nil {
			ordered = append(ordered, entry)
		}
	}

	names := newNameCollator()
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if cmp := names.compare(a.Team.Name, b.Team.Name); cmp != 0 {
			return cmp < 0
		}
		return a.Team.ID < b.Team.ID
	})
	return ordered
}
