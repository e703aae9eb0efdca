package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/teamdesk/internal/announce"
	"github.com/codr1/teamdesk/internal/leagues"
	"github.com/codr1/teamdesk/internal/matchstate"
)

var errInvalidState = errors.New("invalid match state")

func run(command string, files []string, opts options) error {
	switch command {
	case "validate":
		return runValidate(files, opts)
	case "standings":
		return renderEach(files, opts, standingsMessages)
	case "bracket":
		return renderEach(files, opts, bracketMessages)
	case "sanitize":
		return transformOne(files, opts, func(state []*matchstate.Match) ([]*matchstate.Match, error) {
			return matchstate.Sanitize(state), nil
		})
	case "schedule":
		return transformOne(files, opts, func(state []*matchstate.Match) ([]*matchstate.Match, error) {
			return scheduleAll(state, opts)
		})
	case "move":
		return transformOne(files, opts, func(state []*matchstate.Match) ([]*matchstate.Match, error) {
			return moveTeam(state, opts)
		})
	}
	return fmt.Errorf("unknown command: %s", command)
}

func readState(path string) ([]*matchstate.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	state, err := matchstate.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return state, nil
}

// forEachFile loads every file concurrently and keeps one result per
// file in argument order.
func forEachFile(files []string, fn func(path string, state []*matchstate.Match) (string, error)) ([]string, error) {
	results := make([]string, len(files))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		g.Go(func() error {
			state, err := readState(path)
			if err != nil {
				return err
			}
			out, err := fn(path, state)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runValidate(files []string, opts options) error {
	results, err := forEachFile(files, func(path string, state []*matchstate.Match) (string, error) {
		if matchstate.Validate(state) {
			return "ok", nil
		}
		return "invalid", nil
	})
	if err != nil {
		return err
	}

	invalid := 0
	for i, result := range results {
		fmt.Fprintf(opts.out, "%s: %s\n", files[i], result)
		if result != "ok" {
			invalid++
		}
	}
	if invalid > 0 {
		log.Warn().Int("invalid_files", invalid).Msg("Match state failed validation")
		return errInvalidState
	}
	return nil
}

func renderEach(files []string, opts options, render func([]*matchstate.Match, options) []string) error {
	results, err := forEachFile(files, func(path string, state []*matchstate.Match) (string, error) {
		return strings.Join(render(matchstate.Sanitize(state), opts), "\n\n"), nil
	})
	if err != nil {
		return err
	}
	for _, result := range results {
		if result != "" {
			fmt.Fprintln(opts.out, result)
		}
	}
	return nil
}

func standingsMessages(state []*matchstate.Match, opts options) []string {
	var messages []string
	for _, match := range state {
		if match == nil || match.LeagueCompetitionData == nil {
			continue
		}
		for _, round := range match.LeagueCompetitionData.Rounds() {
			title := opts.cfg.Announcements.StandingsTitle
			if title == "" {
				title = strings.TrimSpace(fmt.Sprintf("%s %s", match.Title, round.Table.Name))
			}
			messages = append(messages, announce.LeagueTable(title, leagues.RecalculateTable(round.Table)))
		}
	}
	return messages
}

func bracketMessages(state []*matchstate.Match, _ options) []string {
	var messages []string
	for _, match := range state {
		if match == nil || match.TournamentBracket == nil {
			continue
		}
		messages = append(messages, announce.Bracket(match.TournamentBracket))
	}
	return messages
}

func transformOne(files []string, opts options, fn func([]*matchstate.Match) ([]*matchstate.Match, error)) error {
	if len(files) != 1 {
		return fmt.Errorf("expected exactly one state file, got %d", len(files))
	}
	state, err := readState(files[0])
	if err != nil {
		return err
	}
	out, err := fn(state)
	if err != nil {
		return err
	}
	return matchstate.Encode(opts.out, out)
}

func scheduleAll(state []*matchstate.Match, opts options) ([]*matchstate.Match, error) {
	out := matchstate.Sanitize(state)
	for _, match := range out {
		if match == nil || match.LeagueCompetitionData == nil || match.LeagueCompetitionData.PreliminaryRound == nil {
			continue
		}
		table, err := leagues.RegenerateTable(match.LeagueCompetitionData.PreliminaryRound, opts.cfg.Scheduling.Courts, opts.cfg.Timing())
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", match.ID, err)
		}
		match.LeagueCompetitionData.PreliminaryRound = table
	}
	return out, nil
}

func moveTeam(state []*matchstate.Match, opts options) ([]*matchstate.Match, error) {
	if !matchstate.Validate(state) {
		return nil, fmt.Errorf("%w: run sanitize first", errInvalidState)
	}
	out := matchstate.CloneAll(state)
	for _, match := range out {
		if match == nil || match.ID != opts.matchID {
			continue
		}
		comp, err := leagues.MoveTeamBetweenGroups(match.LeagueCompetitionData, leagues.MoveRequest{
			TeamID:      opts.teamID,
			SourceGroup: opts.from,
			TargetGroup: opts.to,
			Courts:      opts.cfg.Scheduling.Courts,
			Timing:      opts.cfg.Timing(),
		})
		if err != nil {
			return nil, err
		}
		match.LeagueCompetitionData = comp
		return out, nil
	}
	return nil, fmt.Errorf("match %q not found", opts.matchID)
}
