package matching

import "testing"

func TestMatches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		userSkill   string
		requirement string
		want        bool
	}{
		{name: "exact", userSkill: "React", requirement: "React", want: true},
		{name: "case insensitive", userSkill: "react", requirement: "React", want: true},
		{name: "surrounding whitespace", userSkill: "  React  ", requirement: "React", want: true},
		{name: "user contains requirement", userSkill: "React Native", requirement: "React", want: true},
		{name: "requirement contains user", userSkill: "Java", requirement: "JavaScript", want: true},
		{name: "unrelated", userSkill: "Python", requirement: "React", want: false},
		{name: "empty user skill", userSkill: "", requirement: "React", want: false},
		{name: "empty requirement", userSkill: "React", requirement: "", want: false},
		{name: "whitespace only", userSkill: "   ", requirement: "React", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(tc.userSkill, tc.requirement); got != tc.want {
				t.Fatalf("Matches(%q, %q) = %v, want %v", tc.userSkill, tc.requirement, got, tc.want)
			}
		})
	}
}

func TestMatchesIsSymmetricOnContainment(t *testing.T) {
	// Containment runs both directions, so swapping the arguments must not
	// change the verdict.
	pairs := [][2]string{
		{"Java", "JavaScript"},
		{"SQL", "PostgreSQL"},
		{"React", "React Native"},
	}

	for _, pair := range pairs {
		if Matches(pair[0], pair[1]) != Matches(pair[1], pair[0]) {
			t.Fatalf("Matches(%q, %q) differs from the swapped call", pair[0], pair[1])
		}
	}
}
