package engine

import "testing"

func TestDisciplineMatch(t *testing.T) {
	m := DefaultMatcher()
	cases := []struct {
		plan, session string
		want          bool
	}{
		{"Yoga", "Yoga", true},
		{"Pole Dance", "Pole", true},     // session contained in plan
		{"Pole", "Pole Dance", true},     // plan contained in session
		{"General", "Telas", true},       // wildcard plan
		{"Pole Exotic", "Pole Dance", true}, // legacy pair
		{"Pole Dance", "Pole Exotic", true}, // legacy pair, other direction
		{"Yoga", "Telas", false},
		{"", "Yoga", false},
		{"Yoga", "", false},
		{"Telas", "General", false}, // wildcard only applies plan-side
	}
	for _, c := range cases {
		if got := m.Match(c.plan, c.session); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.plan, c.session, got, c.want)
		}
	}
}

func TestNewMatcherIsSymmetric(t *testing.T) {
	m := NewMatcher(map[string]string{"Aro": "Aro Deportivo"})
	if !m.Match("Aro Deportivo", "Aro") || !m.Match("Aro", "Aro Deportivo") {
		t.Fatal("custom pair should match both directions")
	}
}
