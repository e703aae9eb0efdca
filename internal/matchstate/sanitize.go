package matchstate

import (
	"github.com/rs/zerolog/log"

	"github.com/codr1/teamdesk/internal/leagues"
)

// Validate reports whether every group of every league round attached to
// matches is present and has a match list. It never modifies its input.
func Validate(matches []*Match) bool {
	for _, match := range matches {
		if match == nil || match.LeagueCompetitionData == nil {
			continue
		}
		for _, round := range match.LeagueCompetitionData.Rounds() {
			for _, group := range round.Table.Groups {
				if group == nil || group.Matches == nil {
					return false
				}
			}
		}
	}
	return true
}

// Sanitize returns a repaired copy of matches: missing groups are dropped,
// and missing group or match lists become empty. Every repair is logged.
func Sanitize(matches []*Match) []*Match {
	out := CloneAll(matches)
	for _, match := range out {
		if match == nil || match.LeagueCompetitionData == nil {
			continue
		}
		for _, round := range match.LeagueCompetitionData.Rounds() {
			sanitizeTable(match.ID, round.Name, round.Table)
		}
	}
	return out
}

func sanitizeTable(matchID, roundName string, table *leagues.Table) {
	logger := log.With().
		Str("component", "state_sanitizer").
		Str("match_id", matchID).
		Str("round", roundName).
		Logger()

	if table.Groups == nil {
		logger.Warn().Msg("Healed round without group list")
		table.Groups = []*leagues.Group{}
		return
	}

	groups := table.Groups[:0]
	for _, group := range table.Groups {
		if group == nil {
			logger.Warn().Msg("Dropped missing group")
			continue
		}
		if group.Matches == nil {
			logger.Warn().Str("group", group.Name).Msg("Healed group without match list")
			group.Matches = []*leagues.Match{}
		}
		groups = append(groups, group)
	}
	table.Groups = groups
}
