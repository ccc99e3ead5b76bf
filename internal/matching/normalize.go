package matching

import "strings"

// Matches reports whether a user skill name satisfies a requirement skill
// name. Both are case-folded and either may contain the other, so "React"
// satisfies "React.js" and vice versa. This is deliberately permissive and
// known to produce false positives such as "Java" satisfying "JavaScript";
// callers that need a stricter matcher can swap this function without
// touching the gap matcher.
//
// Empty inputs never match.
func Matches(userSkill, requirementSkill string) bool {
	a := strings.ToLower(strings.TrimSpace(userSkill))
	b := strings.ToLower(strings.TrimSpace(requirementSkill))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
