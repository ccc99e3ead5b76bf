package ai

import (
	"context"
	"errors"
)

// ErrMalformedResponse marks analyzer output that did not contain the
// required fields. The raw model text never travels with the error; it is
// logged by the analyzer for diagnostics only.
var ErrMalformedResponse = errors.New("malformed analyzer response")

// SkillGuess is one skill the model claims to have found. Values are
// untrusted and unclamped; the intake adapter sanitizes them.
type SkillGuess struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

// Extraction is the model's structured guess for one resume.
type Extraction struct {
	Name              string       `json:"name"`
	YearsOfExperience float64      `json:"yearsOfExperience"`
	TopSkills         []SkillGuess `json:"topSkills"`
	Raw               string       `json:"-"`
}

// Analyzer turns raw resume text into a structured extraction.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText string) (*Extraction, error)
}
