package profile

// Experience level bands derived from years of experience.
const (
	LevelJunior   = "Junior"
	LevelMidLevel = "Mid-level"
	LevelSenior   = "Senior"
	LevelExpert   = "Expert"
)

// Summary is the aggregated view of a profile shown on the final review step.
type Summary struct {
	Name              string         `json:"name"`
	YearsOfExperience int            `json:"yearsOfExperience"`
	ExperienceLevel   string         `json:"experienceLevel"`
	SkillCount        int            `json:"skillCount"`
	AvgConfidence     float64        `json:"avgConfidence"`
	CategoryCounts    map[string]int `json:"categoryCounts"`
	TopSkill          *Skill         `json:"topSkill,omitempty"`
}

// ExperienceLevel bands years of experience into a coarse seniority label.
func ExperienceLevel(years int) string {
	switch {
	case years < 1:
		return LevelJunior
	case years < 3:
		return LevelMidLevel
	case years < 7:
		return LevelSenior
	default:
		return LevelExpert
	}
}

// Summarize aggregates a skill set into category counts, average confidence
// and the single highest-confidence skill. It never mutates its input.
func Summarize(name string, years int, skills []Skill) Summary {
	counts := make(map[string]int, len(skills))
	for _, s := range skills {
		counts[s.Category]++
	}

	var top *Skill
	for i := range skills {
		if top == nil || skills[i].Confidence > top.Confidence {
			s := skills[i]
			top = &s
		}
	}

	return Summary{
		Name:              name,
		YearsOfExperience: years,
		ExperienceLevel:   ExperienceLevel(years),
		SkillCount:        len(skills),
		AvgConfidence:     AverageConfidence(skills),
		CategoryCounts:    counts,
		TopSkill:          top,
	}
}
