package recommend

import (
	"strings"

	"github.com/skillscope/skillscope/internal/matching"
	"github.com/skillscope/skillscope/internal/profile"
)

// MaxRecommendations caps the advice list shown to the user.
const MaxRecommendations = 5

// Advice strings, in fixed priority order. The order is user-facing: the
// most impactful gaps come first and survive the cap.
const (
	AdviceGainExperience  = "Consider gaining more hands-on experience through personal projects or internships"
	AdviceBuildConfidence = "Focus on building confidence in your core skills through practice and projects"
	AdviceBroadenSkills   = "Expand your skill set by learning complementary technologies"
	AdviceLearnFramework  = "Learn a popular framework to enhance your development capabilities"
	AdviceLearnTooling    = "Familiarize yourself with essential development tools like Git and Docker"

	AdviceFrontendFramework = "Learn a modern JavaScript framework like React, Vue, or Angular"
	AdviceFrontendCSS       = "Strengthen your CSS skills and learn preprocessors like SASS"
	AdviceBackendLanguage   = "Master a backend programming language like Python, Java, or Node.js"
	AdviceBackendDatabase   = "Learn database technologies and SQL"
)

// rule is one step of the decision list. Each enabled rule contributes at
// most one advice string.
type rule struct {
	advice  string
	applies func(in input) bool
}

type input struct {
	years  int
	skills []profile.Skill
}

var baseRules = []rule{
	{AdviceGainExperience, func(in input) bool { return in.years < 2 }},
	{AdviceBuildConfidence, func(in input) bool { return profile.AverageConfidence(in.skills) < 0.7 }},
	{AdviceBroadenSkills, func(in input) bool { return len(in.skills) < 5 }},
	{AdviceLearnFramework, func(in input) bool { return !hasCategory(in.skills, profile.CategoryFramework) }},
	{AdviceLearnTooling, func(in input) bool { return !hasCategory(in.skills, profile.CategoryTool) }},
}

// Role-specific rules keyed by role identifier. Full Stack Developer has
// none; that asymmetry mirrors the product behavior and is intentional.
var roleRules = map[string][]rule{
	matching.RoleFrontend: {
		{AdviceFrontendFramework, func(in input) bool { return !hasAnyName(in.skills, "react", "vue", "angular") }},
		{AdviceFrontendCSS, func(in input) bool { return !hasAnyName(in.skills, "css", "sass") }},
	},
	matching.RoleBackend: {
		{AdviceBackendLanguage, func(in input) bool { return !hasAnyName(in.skills, "python", "java", "node") }},
		{AdviceBackendDatabase, func(in input) bool { return !hasAnyName(in.skills, "database", "sql") }},
	},
}

// Recommend evaluates the decision list in priority order and returns up to
// MaxRecommendations advice strings for the given profile and target role.
// It is a total, pure function: no input is mutated, no error is possible,
// and an empty skill set simply fires the maximal rule set.
func Recommend(years int, skills []profile.Skill, role string) []string {
	in := input{years: years, skills: skills}

	out := make([]string, 0, MaxRecommendations)
	for _, r := range baseRules {
		if len(out) == MaxRecommendations {
			return out
		}
		if r.applies(in) {
			out = append(out, r.advice)
		}
	}

	for _, r := range roleRules[role] {
		if len(out) == MaxRecommendations {
			return out
		}
		if r.applies(in) {
			out = append(out, r.advice)
		}
	}

	return out
}

func hasCategory(skills []profile.Skill, category string) bool {
	for _, s := range skills {
		if s.Category == category {
			return true
		}
	}
	return false
}

func hasAnyName(skills []profile.Skill, needles ...string) bool {
	for _, s := range skills {
		name := strings.ToLower(s.Name)
		for _, needle := range needles {
			if strings.Contains(name, needle) {
				return true
			}
		}
	}
	return false
}
