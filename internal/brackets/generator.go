package brackets

import (
	"fmt"
	"math/bits"

	"github.com/rs/zerolog/log"

	"github.com/codr1/teamdesk/internal/leagues"
)

const byeTeamName = "BYE"

// GenerateSingleElimination seeds teams, in the order given, into a
// knockout bracket padded to the next power of two. Seeds are placed in
// standard bracket order so the top two can only meet in the final. The
// top seeds draw the byes and are advanced to the second round straight
// away.
func GenerateSingleElimination(name string, teams []leagues.Team) (*Bracket, error) {
	entrants := make([]leagues.Team, 0, len(teams))
	for _, team := range teams {
		if !team.Bye {
			entrants = append(entrants, team)
		}
	}
	n := len(entrants)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughTeams, n)
	}

	numRounds := bits.Len(uint(n - 1))
	size := 1 << numRounds
	numByes := size - n

	log.Debug().
		Str("component", "bracket_generator").
		Str("bracket", name).
		Int("teams", n).
		Int("rounds", numRounds).
		Int("byes", numByes).
		Msg("Generating single elimination bracket")

	bracket := &Bracket{Name: name, Rounds: make([]*Round, 0, numRounds)}
	matchesInRound := size / 2
	for r := 1; r <= numRounds; r++ {
		round := &Round{Name: roundName(matchesInRound), Matches: make([]*Match, matchesInRound)}
		for i := range round.Matches {
			round.Matches[i] = &Match{ID: fmt.Sprintf("R%dM%d", r, i+1)}
		}
		bracket.Rounds = append(bracket.Rounds, round)
		matchesInRound /= 2
	}

	order := seedOrder(size)
	for i, match := range bracket.Rounds[0].Matches {
		home := entrants[order[2*i]-1]
		match.Team1 = &home
		if seed := order[2*i+1]; seed <= n {
			away := entrants[seed-1]
			match.Team2 = &away
			continue
		}
		match.Team2 = &leagues.Team{ID: fmt.Sprintf("bye-%d", i+1), Name: byeTeamName, Bye: true}
		match.WinnerID = home.ID
		bracket.advance(0, i)
	}

	return bracket, nil
}

// RecordResult returns a copy of b with the match result stored and the
// winner carried into the next round. A tied score needs winnerID naming
// one of the two teams. Changing an earlier result clears any later
// match the previous winner had reached.
func RecordResult(b *Bracket, matchID string, score1, score2 int, winnerID string) (*Bracket, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	out := b.Clone()
	r, i, err := out.locate(matchID)
	if err != nil {
		return nil, err
	}
	match := out.Rounds[r].Matches[i]
	if match.Team1 == nil || match.Team2 == nil || match.IsBye() {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotReady, matchID)
	}

	var winner string
	switch {
	case score1 > score2:
		winner = match.Team1.ID
	case score2 > score1:
		winner = match.Team2.ID
	case winnerID == match.Team1.ID || winnerID == match.Team2.ID:
		winner = winnerID
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoWinner, matchID)
	}

	match.Score1 = &score1
	match.Score2 = &score2
	match.WinnerID = winner
	out.advance(r, i)
	return out, nil
}

// advance places the winner of match i in round r into its next-round
// slot, resetting that match if the slot changes hands.
func (b *Bracket) advance(r, i int) {
	if r+1 >= len(b.Rounds) || b.Rounds[r+1] == nil {
		return
	}
	next := i / 2
	if next >= len(b.Rounds[r+1].Matches) || b.Rounds[r+1].Matches[next] == nil {
		return
	}
	winner := b.Rounds[r].Matches[i].Winner()
	if winner == nil {
		return
	}
	target := b.Rounds[r+1].Matches[next]
	slot := &target.Team1
	if i%2 == 1 {
		slot = &target.Team2
	}
	if *slot != nil && (*slot).ID == winner.ID {
		return
	}
	*slot = cloneTeam(winner)
	if target.WinnerID != "" {
		target.WinnerID = ""
		target.Score1 = nil
		target.Score2 = nil
		b.clearFrom(r+1, next)
	}
}

func (b *Bracket) clearFrom(r, i int) {
	if r+1 >= len(b.Rounds) || b.Rounds[r+1] == nil {
		return
	}
	next := i / 2
	if next >= len(b.Rounds[r+1].Matches) || b.Rounds[r+1].Matches[next] == nil {
		return
	}
	target := b.Rounds[r+1].Matches[next]
	if i%2 == 0 {
		target.Team1 = nil
	} else {
		target.Team2 = nil
	}
	if target.WinnerID != "" {
		target.WinnerID = ""
		target.Score1 = nil
		target.Score2 = nil
		b.clearFrom(r+1, next)
	}
}

// seedOrder lists seeds 1..size by first-round position. Adjacent
// entries meet in the first round and each pair sums to size+1.
func seedOrder(size int) []int {
	order := []int{1}
	for len(order) < size {
		slots := len(order) * 2
		next := make([]int, 0, slots)
		for _, seed := range order {
			next = append(next, seed, slots+1-seed)
		}
		order = next
	}
	return order
}

func roundName(matches int) string {
	switch matches {
	case 1:
		return "Final"
	case 2:
		return "Semi-final"
	case 4:
		return "Quarter-final"
	}
	return fmt.Sprintf("Round of %d", matches*2)
}
