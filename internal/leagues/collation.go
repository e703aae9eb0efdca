package leagues

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// A collate.Collator keeps scratch buffers, so each sort gets its own.
type nameCollator struct {
	collator *collate.Collator
}

func newNameCollator() nameCollator {
	return nameCollator{collator: collate.New(language.Japanese)}
}

func (c nameCollator) compare(a, b string) int {
	return c.collator.CompareString(a, b)
}

// SortTeamsByName orders teams in place by display name using Japanese
// collation. Nil entries sink to the end.
func SortTeamsByName(teams []*TeamStats) {
	names := newNameCollator()
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return names.compare(a.Team.Name, b.Team.Name) < 0
	})
}
