package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codr1/teamdesk/internal/config"
	"github.com/codr1/teamdesk/internal/matchstate"
)

const corruptState = `[
  {"id": "cup", "title": "Spring Cup", "leagueCompetitionData": {
    "preliminaryRound": {"name": "Prelims", "groups": [
      {"name": "A", "teams": [
        {"team": {"id": "h", "name": "Hawks"}},
        {"team": {"id": "b", "name": "Bears"}}
      ], "matches": []},
      {"name": "B", "teams": [
        {"team": {"id": "o", "name": "Owls"}}
      ]}
    ]}
  }}
]`

func writeState(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write state: %v", err)
	}
	return path
}

func testOptions(out *bytes.Buffer) options {
	cfg := config.Default()
	cfg.Scheduling.Courts = 2
	cfg.Scheduling.StartTime = "10:00"
	cfg.Scheduling.MatchDurationMinutes = 15
	return options{cfg: cfg, out: out}
}

func decodeOutput(t *testing.T, out *bytes.Buffer) []*matchstate.Match {
	t.Helper()

	state, err := matchstate.Decode(out)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return state
}

func TestValidateCommand(t *testing.T) {
	var out bytes.Buffer
	path := writeState(t, corruptState)

	err := run("validate", []string{path}, testOptions(&out))
	if !errors.Is(err, errInvalidState) {
		t.Fatalf("got %v, want errInvalidState", err)
	}
	if !strings.Contains(out.String(), path+": invalid") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestSanitizeThenMoveCommand(t *testing.T) {
	var out bytes.Buffer
	opts := testOptions(&out)
	if err := run("sanitize", []string{writeState(t, corruptState)}, opts); err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if !matchstate.Validate(decodeOutput(t, bytes.NewBuffer(out.Bytes()))) {
		t.Fatal("sanitized output does not validate")
	}

	healed := writeState(t, out.String())
	out.Reset()
	opts.matchID, opts.teamID, opts.from, opts.to = "cup", "h", "A", "B"
	if err := run("move", []string{healed}, opts); err != nil {
		t.Fatalf("move: %v", err)
	}

	state := decodeOutput(t, &out)
	groupB := state[0].LeagueCompetitionData.PreliminaryRound.FindGroup("B")
	if len(groupB.Teams) != 2 || len(groupB.Matches) != 1 {
		t.Fatalf("group B = %d teams, %d matches", len(groupB.Teams), len(groupB.Matches))
	}
	if groupB.Matches[0].StartTime == nil || *groupB.Matches[0].StartTime != "10:00" {
		t.Fatalf("moved fixtures not scheduled: %+v", groupB.Matches[0])
	}
}

func TestMoveCommandRejectsCorruptState(t *testing.T) {
	var out bytes.Buffer
	opts := testOptions(&out)
	opts.matchID, opts.teamID, opts.from, opts.to = "cup", "h", "A", "B"

	if err := run("move", []string{writeState(t, corruptState)}, opts); !errors.Is(err, errInvalidState) {
		t.Fatalf("got %v, want errInvalidState", err)
	}
}

func TestScheduleAndStandingsCommands(t *testing.T) {
	var out bytes.Buffer
	opts := testOptions(&out)
	if err := run("schedule", []string{writeState(t, corruptState)}, opts); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	state := decodeOutput(t, bytes.NewBuffer(out.Bytes()))
	groupA := state[0].LeagueCompetitionData.PreliminaryRound.FindGroup("A")
	if len(groupA.Matches) != 1 || groupA.Matches[0].Court == nil {
		t.Fatalf("group A fixtures not scheduled: %+v", groupA.Matches)
	}

	scheduled := writeState(t, out.String())
	out.Reset()
	if err := run("standings", []string{scheduled, scheduled}, opts); err != nil {
		t.Fatalf("standings: %v", err)
	}
	if got := strings.Count(out.String(), "Spring Cup Prelims"); got != 2 {
		t.Fatalf("expected one message per file, got %d:\n%s", got, out.String())
	}
}

func TestStandingsCommandReplaysMatches(t *testing.T) {
	var out bytes.Buffer
	state := `[{"id": "cup", "title": "Cup", "leagueCompetitionData": {"preliminaryRound": {"name": "Prelims", "groups": [
	  {"name": "A", "teams": [
	    {"team": {"id": "a", "name": "Alpha"}, "points": 0},
	    {"team": {"id": "b", "name": "Bravo"}, "played": 3, "wins": 3, "points": 9}
	  ], "matches": [
	    {"id": "m1", "team1Id": "a", "team2Id": "b", "team1Score": 3, "team2Score": 0, "isCompleted": true}
	  ]}
	]}}}]`

	if err := run("standings", []string{writeState(t, state)}, testOptions(&out)); err != nil {
		t.Fatalf("standings: %v", err)
	}
	for _, line := range []string{
		"1. Alpha  P1 W1 D0 L0  3-0 (+3)  3pts",
		"2. Bravo  P1 W0 D0 L1  0-3 (-3)  0pts",
	} {
		if !strings.Contains(out.String(), line) {
			t.Fatalf("missing %q in:\n%s", line, out.String())
		}
	}
}

func TestBracketCommand(t *testing.T) {
	var out bytes.Buffer
	state := `[{"id": "ko", "title": "Knockout", "tournamentBracket": {"name": "Cup", "rounds": [
	  {"name": "Final", "matches": [{"id": "R1M1", "team1": {"id": "h", "name": "Hawks"}, "team2": {"id": "b", "name": "Bears"}, "score1": 3, "score2": 1, "winnerId": "h"}]}
	]}}]`

	if err := run("bracket", []string{writeState(t, state)}, testOptions(&out)); err != nil {
		t.Fatalf("bracket: %v", err)
	}
	if !strings.Contains(out.String(), "Hawks 3 - 1 Bears") || !strings.Contains(out.String(), "Champion: Hawks") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if err := run("explode", []string{"x"}, testOptions(&out)); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
