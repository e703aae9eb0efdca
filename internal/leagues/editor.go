package leagues

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

type MoveRequest struct {
	TeamID      string
	SourceGroup string
	TargetGroup string
	Courts      int
	// Timing is optional; without it the rebuilt fixtures stay unscheduled.
	Timing *Timing
}

// MoveTeamBetweenGroups moves one team between two groups of the
// preliminary round and rebuilds both groups: records are zeroed and the
// fixtures regenerated, so results already entered for either group are
// dropped. The caller's competition is never modified; on error the
// returned competition is nil. Moving a team to the group it is already
// in returns comp itself.
func MoveTeamBetweenGroups(comp *Competition, req MoveRequest) (*Competition, error) {
	logger := log.With().
		Str("component", "league_editor").
		Str("team_id", req.TeamID).
		Str("source_group", req.SourceGroup).
		Str("target_group", req.TargetGroup).
		Int("courts", req.Courts).
		Logger()

	if comp == nil || strings.TrimSpace(req.TeamID) == "" ||
		strings.TrimSpace(req.SourceGroup) == "" || strings.TrimSpace(req.TargetGroup) == "" {
		logger.Error().Msg("Competition, team and both group names are required to move a team")
		return nil, fmt.Errorf("%w: competition, team and group names are required", ErrInvalidArgument)
	}
	if req.Courts < 1 {
		logger.Error().Msg("Number of courts must be positive")
		return nil, fmt.Errorf("%w: number of courts must be positive", ErrInvalidArgument)
	}
	if req.SourceGroup == req.TargetGroup {
		logger.Debug().Msg("Source and target group match; nothing to move")
		return comp, nil
	}

	out := comp.Clone()
	source := out.PreliminaryRound.FindGroup(req.SourceGroup)
	target := out.PreliminaryRound.FindGroup(req.TargetGroup)
	if source == nil || target == nil {
		logger.Error().
			Bool("source_found", source != nil).
			Bool("target_found", target != nil).
			Msg("Group not found in preliminary round")
		return nil, fmt.Errorf("%w: %s or %s", ErrGroupNotFound, req.SourceGroup, req.TargetGroup)
	}

	idx := source.teamIndex(req.TeamID)
	if idx < 0 {
		logger.Error().Msg("Team not found in source group")
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, req.TeamID)
	}
	moved := source.Teams[idx]
	source.Teams = append(source.Teams[:idx], source.Teams[idx+1:]...)
	target.Teams = append(target.Teams, moved)

	for _, group := range []*Group{source, target} {
		if err := RebuildGroup(group, req.Courts, req.Timing); err != nil {
			logger.Error().Err(err).Str("group", group.Name).Msg("Failed to rebuild group fixtures")
			return nil, err
		}
	}

	logger.Info().
		Int("source_matches", len(source.Matches)).
		Int("target_matches", len(target.Matches)).
		Msg("Moved team and regenerated fixtures")
	return out, nil
}

// RebuildGroup resets every record in the group, replaces its fixtures
// with a fresh round-robin, schedules them when timing is complete and
// sorts the teams by name. The group is modified in place.
func RebuildGroup(group *Group, courts int, timing *Timing) error {
	if group == nil {
		return fmt.Errorf("%w: group is required", ErrInvalidArgument)
	}
	for _, entry := range group.Teams {
		if entry != nil {
			entry.reset()
		}
	}
	group.Matches = GenerateFixturesForGroup(group.Teams)
	if err := AssignTimeSlots(group.Matches, courts, timing); err != nil {
		return err
	}
	SortTeamsByName(group.Teams)
	return nil
}

// RegenerateTable returns a copy of table with every group rebuilt.
func RegenerateTable(table *Table, courts int, timing *Timing) (*Table, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: table is required", ErrInvalidArgument)
	}
	out := table.Clone()
	for _, group := range out.Groups {
		if group == nil {
			continue
		}
		if err := RebuildGroup(group, courts, timing); err != nil {
			return nil, fmt.Errorf("rebuild group %s: %w", group.Name, err)
		}
	}
	return out, nil
}
