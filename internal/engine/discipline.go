package engine

import "strings"

// DisciplineMatcher decides whether a credit plan sold for one discipline
// can pay for a session of another.  A plan matches when the labels are
// equal, one contains the other, the plan is "General", or the pair appears
// in the legacy table.  The legacy table exists because old plans were sold
// under labels that no longer match the room catalog.
type DisciplineMatcher struct {
	legacyPairs map[string]string
}

// GeneralDiscipline is the wildcard plan discipline that matches any
// session type.
const GeneralDiscipline = "General"

// DefaultMatcher carries the one known legacy pairing: plans labeled
// "Pole Exotic" must keep paying for "Pole Dance" sessions and vice versa.
func DefaultMatcher() DisciplineMatcher {
	return NewMatcher(map[string]string{
		"Pole Exotic": "Pole Dance",
	})
}

// NewMatcher builds a matcher from a table of equivalent label pairs.  The
// table is symmetric; each entry covers both directions.
func NewMatcher(pairs map[string]string) DisciplineMatcher {
	m := DisciplineMatcher{legacyPairs: make(map[string]string, len(pairs)*2)}
	for a, b := range pairs {
		m.legacyPairs[a] = b
		m.legacyPairs[b] = a
	}
	return m
}

// Match reports whether a plan sold for planDiscipline covers a session of
// sessionType.
func (m DisciplineMatcher) Match(planDiscipline, sessionType string) bool {
	if planDiscipline == "" || sessionType == "" {
		return false
	}
	if planDiscipline == GeneralDiscipline {
		return true
	}
	if planDiscipline == sessionType {
		return true
	}
	if strings.Contains(planDiscipline, sessionType) || strings.Contains(sessionType, planDiscipline) {
		return true
	}
	return m.legacyPairs[planDiscipline] == sessionType
}
