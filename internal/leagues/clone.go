package leagues

// Clone methods copy the competition tree without sharing any pointer or
// slice backing array with the receiver. Nil slices stay nil and empty
// slices stay empty so that structural corruption survives a copy.

func (c *Competition) Clone() *Competition {
	if c == nil {
		return nil
	}
	return &Competition{
		PreliminaryRound: c.PreliminaryRound.Clone(),
		FinalRoundLeague: c.FinalRoundLeague.Clone(),
	}
}

func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{Name: t.Name}
	if t.Groups != nil {
		out.Groups = make([]*Group, len(t.Groups))
		for i, group := range t.Groups {
			out.Groups[i] = group.Clone()
		}
	}
	return out
}

func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	out := &Group{Name: g.Name}
	if g.Teams != nil {
		out.Teams = make([]*TeamStats, len(g.Teams))
		for i, entry := range g.Teams {
			out.Teams[i] = entry.Clone()
		}
	}
	out.Matches = CloneMatches(g.Matches)
	return out
}

func (s *TeamStats) Clone() *TeamStats {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	out := *m
	out.HomeScore = cloneInt(m.HomeScore)
	out.AwayScore = cloneInt(m.AwayScore)
	out.Court = cloneInt(m.Court)
	out.WinnerID = cloneString(m.WinnerID)
	out.StartTime = cloneString(m.StartTime)
	return &out
}

func CloneMatches(matches []*Match) []*Match {
	if matches == nil {
		return nil
	}
	out := make([]*Match, len(matches))
	for i, match := range matches {
		out[i] = match.Clone()
	}
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return intPtr(*v)
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	return stringPtr(*v)
}
