package profile

import (
	"fmt"
	"math"
	"strings"
)

// Known skill categories. The set is open: user edits may introduce values
// outside this list and they are carried through untouched.
const (
	CategoryProgrammingLanguage = "Programming Language"
	CategoryFramework           = "Framework"
	CategoryTool                = "Tool"
	CategoryTechnology          = "Technology"
	CategoryPlatform            = "Platform"
)

// Categories lists the known categories in display order.
func Categories() []string {
	return []string{
		CategoryProgrammingLanguage,
		CategoryFramework,
		CategoryTool,
		CategoryTechnology,
		CategoryPlatform,
	}
}

// Skill is a single user skill with an extraction confidence in [0,1].
type Skill struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

// ClampConfidence forces a confidence value into [0,1]. NaN collapses to 0.
func ClampConfidence(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AverageConfidence returns the mean confidence across skills. An empty set
// averages to 0 so that low-confidence rules still apply to it.
func AverageConfidence(skills []Skill) float64 {
	if len(skills) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range skills {
		sum += ClampConfidence(s.Confidence)
	}
	return sum / float64(len(skills))
}

// ResumeData is the sanitized profile produced from one uploaded resume. It
// lives only for the duration of a session and is mutated solely through the
// skill-editing methods below.
type ResumeData struct {
	Name              string  `json:"name"`
	YearsOfExperience int     `json:"yearsOfExperience"`
	TopSkills         []Skill `json:"topSkills"`
}

// Clone returns a deep copy, so analysis code can work on a snapshot while
// the owner keeps editing.
func (r *ResumeData) Clone() *ResumeData {
	if r == nil {
		return nil
	}
	out := &ResumeData{
		Name:              r.Name,
		YearsOfExperience: r.YearsOfExperience,
	}
	out.TopSkills = append(out.TopSkills, r.TopSkills...)
	return out
}

// AddSkill appends a skill, clamping its confidence.
func (r *ResumeData) AddSkill(s Skill) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("skill name must not be empty")
	}
	if strings.TrimSpace(s.Category) == "" {
		s.Category = CategoryTechnology
	}
	s.Confidence = ClampConfidence(s.Confidence)
	r.TopSkills = append(r.TopSkills, s)
	return nil
}

// UpdateSkill replaces the skill at index, clamping its confidence.
func (r *ResumeData) UpdateSkill(index int, s Skill) error {
	if index < 0 || index >= len(r.TopSkills) {
		return fmt.Errorf("no skill at index %d", index)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("skill name must not be empty")
	}
	if strings.TrimSpace(s.Category) == "" {
		s.Category = r.TopSkills[index].Category
	}
	s.Confidence = ClampConfidence(s.Confidence)
	r.TopSkills[index] = s
	return nil
}

// RemoveSkill deletes the skill at index.
func (r *ResumeData) RemoveSkill(index int) error {
	if index < 0 || index >= len(r.TopSkills) {
		return fmt.Errorf("no skill at index %d", index)
	}
	r.TopSkills = append(r.TopSkills[:index], r.TopSkills[index+1:]...)
	return nil
}
