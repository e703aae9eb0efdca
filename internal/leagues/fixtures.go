package leagues

import "github.com/google/uuid"

// GenerateFixturesForGroup builds a single round-robin for the given
// teams: every pair meets exactly once, grouped into rounds with the
// circle method. Matches come back unplayed and unscheduled.
func GenerateFixturesForGroup(teams []*TeamStats) []*Match {
	pairs := buildRoundRobinPairs(teams)
	matches := make([]*Match, 0, len(pairs))
	for _, pairing := range pairs {
		matches = append(matches, &Match{
			ID:         uuid.NewString(),
			Round:      pairing.Round,
			HomeTeamID: pairing.HomeTeam.Team.ID,
			AwayTeamID: pairing.AwayTeam.Team.ID,
		})
	}
	return matches
}

type roundPair struct {
	Round    int
	HomeTeam *TeamStats
	AwayTeam *TeamStats
}

func buildRoundRobinPairs(teams []*TeamStats) []roundPair {
	working := make([]*TeamStats, 0, len(teams)+1)
	for _, entry := range teams {
		if entry != nil {
			working = append(working, entry)
		}
	}
	if len(working) < 2 {
		return nil
	}
	if len(working)%2 == 1 {
		working = append(working, nil)
	}

	rounds := len(working) - 1
	pairs := make([]roundPair, 0, rounds*len(working)/2)

	for round := 0; round < rounds; round++ {
		for i := 0; i < len(working)/2; i++ {
			home := working[i]
			away := working[len(working)-1-i]
			if home == nil || away == nil {
				continue
			}
			if i == 0 && round%2 == 1 {
				home, away = away, home
			}
			pairs = append(pairs, roundPair{
				Round:    round + 1,
				HomeTeam: home,
				AwayTeam: away,
			})
		}
		rotateTeams(working)
	}

	return pairs
}

func rotateTeams(teams []*TeamStats) {
	if len(teams) <= 2 {
		return
	}
	last := teams[len(teams)-1]
	copy(teams[2:], teams[1:len(teams)-1])
	teams[1] = last
}
