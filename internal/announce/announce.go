package announce

import (
	"fmt"
	"strings"

	"github.com/codr1/teamdesk/internal/brackets"
	"github.com/codr1/teamdesk/internal/leagues"
)

// LeagueTable renders the ranked standings of every group in table as a
// plain-text message for the announcement feed.
func LeagueTable(title string, table *leagues.Table) string {
	if table == nil {
		return ""
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = strings.TrimSpace(table.Name)
	}
	if title == "" {
		title = "League Standings"
	}

	lines := []string{title}
	for _, group := range table.Groups {
		if group == nil {
			continue
		}
		lines = append(lines, "", fmt.Sprintf("[%s]", groupLabel(group.Name)))
		standings := group.Standings()
		if len(standings) == 0 {
			lines = append(lines, "No teams yet")
			continue
		}
		for rank, entry := range standings {
			lines = append(lines, fmt.Sprintf("%d. %s  P%d W%d D%d L%d  %d-%d (%s)  %dpts",
				rank+1,
				entry.Team.Name,
				entry.Played,
				entry.Wins,
				entry.Draws,
				entry.Losses,
				entry.GoalsFor,
				entry.GoalsAgainst,
				signed(entry.GoalDifference),
				entry.Points,
			))
		}
	}
	return strings.Join(lines, "\n")
}

// Bracket renders the knockout bracket round by round.
func Bracket(b *brackets.Bracket) string {
	if b == nil {
		return ""
	}
	name := strings.TrimSpace(b.Name)
	if name == "" {
		name = "Tournament"
	}

	lines := []string{name}
	for _, round := range b.Rounds {
		if round == nil {
			continue
		}
		lines = append(lines, "", fmt.Sprintf("== %s ==", round.Name))
		for _, match := range round.Matches {
			if match == nil {
				continue
			}
			lines = append(lines, matchLine(match))
		}
	}

	if final := finalMatch(b); final != nil {
		if champion := final.Winner(); champion != nil {
			lines = append(lines, "", fmt.Sprintf("Champion: %s", champion.Name))
		}
	}
	return strings.Join(lines, "\n")
}

func matchLine(match *brackets.Match) string {
	if match.IsBye() {
		if winner := match.Winner(); winner != nil {
			return fmt.Sprintf("%s (bye)", winner.Name)
		}
	}
	home := teamLabel(match.Team1)
	away := teamLabel(match.Team2)
	if match.Score1 == nil || match.Score2 == nil {
		return fmt.Sprintf("%s vs %s", home, away)
	}

	line := fmt.Sprintf("%s %d - %d %s", home, *match.Score1, *match.Score2, away)
	if *match.Score1 == *match.Score2 {
		if winner := match.Winner(); winner != nil {
			line = fmt.Sprintf("%s (%s wins)", line, winner.Name)
		}
	}
	return line
}

func finalMatch(b *brackets.Bracket) *brackets.Match {
	if len(b.Rounds) == 0 {
		return nil
	}
	last := b.Rounds[len(b.Rounds)-1]
	if last == nil || len(last.Matches) != 1 {
		return nil
	}
	return last.Matches[0]
}

func teamLabel(team *leagues.Team) string {
	if team == nil {
		return "TBD"
	}
	return team.Name
}

func groupLabel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Group"
	}
	return name
}

func signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}
