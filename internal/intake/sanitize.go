package intake

import (
	"math"
	"strings"

	"github.com/skillscope/skillscope/internal/ai"
	"github.com/skillscope/skillscope/internal/profile"
)

const (
	maxTopSkills = 3

	fallbackSkillName  = "Unknown Skill"
	fallbackConfidence = 0.5
)

// sanitize clamps an untrusted extraction into the canonical profile shape:
// at most maxTopSkills skills, confidence inside [0,1], non-negative integer
// years, and defaults for fields the model left out.
func sanitize(extraction *ai.Extraction) *profile.ResumeData {
	years := extraction.YearsOfExperience
	if math.IsNaN(years) || years < 0 {
		years = 0
	}

	guesses := extraction.TopSkills
	if len(guesses) > maxTopSkills {
		guesses = guesses[:maxTopSkills]
	}

	skills := make([]profile.Skill, 0, len(guesses))
	for _, guess := range guesses {
		skills = append(skills, sanitizeSkill(guess))
	}

	return &profile.ResumeData{
		Name:              strings.TrimSpace(extraction.Name),
		YearsOfExperience: int(math.Round(years)),
		TopSkills:         skills,
	}
}

func sanitizeSkill(guess ai.SkillGuess) profile.Skill {
	name := strings.TrimSpace(guess.Name)
	if name == "" {
		name = fallbackSkillName
	}

	category := strings.TrimSpace(guess.Category)
	if category == "" {
		category = profile.CategoryTechnology
	}

	// A zero confidence means the model omitted the field; fall back to the
	// neutral default before clamping.
	confidence := guess.Confidence
	if confidence == 0 || math.IsNaN(confidence) {
		confidence = fallbackConfidence
	}

	return profile.Skill{
		Name:       name,
		Confidence: profile.ClampConfidence(confidence),
		Category:   category,
	}
}
