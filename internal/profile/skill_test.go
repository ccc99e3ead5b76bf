package profile

import (
	"math"
	"testing"
)

func TestClampConfidence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "in range", in: 0.5, want: 0.5},
		{name: "lower bound", in: 0, want: 0},
		{name: "upper bound", in: 1, want: 1},
		{name: "negative", in: -0.3, want: 0},
		{name: "above one", in: 1.7, want: 1},
		{name: "nan", in: math.NaN(), want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampConfidence(tc.in); got != tc.want {
				t.Fatalf("ClampConfidence(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAverageConfidence(t *testing.T) {
	skills := []Skill{
		{Name: "Go", Confidence: 0.5},
		{Name: "Docker", Confidence: 1},
	}

	if got := AverageConfidence(skills); got != 0.75 {
		t.Fatalf("expected average of 0.75, got %v", got)
	}
}

func TestAverageConfidenceEmptySet(t *testing.T) {
	if got := AverageConfidence(nil); got != 0 {
		t.Fatalf("expected 0 for an empty set, got %v", got)
	}
}

func TestAverageConfidenceClampsOutliers(t *testing.T) {
	skills := []Skill{
		{Name: "Go", Confidence: 2},
		{Name: "Docker", Confidence: -1},
	}

	if got := AverageConfidence(skills); got != 0.5 {
		t.Fatalf("expected outliers clamped to [0,1], got average %v", got)
	}
}

func TestResumeDataClone(t *testing.T) {
	original := &ResumeData{
		Name:              "Ada",
		YearsOfExperience: 4,
		TopSkills:         []Skill{{Name: "Go", Confidence: 0.9, Category: CategoryProgrammingLanguage}},
	}

	clone := original.Clone()
	clone.TopSkills[0].Name = "Rust"
	clone.Name = "Grace"

	if original.TopSkills[0].Name != "Go" || original.Name != "Ada" {
		t.Fatalf("mutating the clone leaked into the original: %+v", original)
	}
}

func TestAddSkill(t *testing.T) {
	r := &ResumeData{}

	if err := r.AddSkill(Skill{Name: "Go", Confidence: 1.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := r.TopSkills[0]
	if got.Confidence != 1 {
		t.Fatalf("expected confidence clamped to 1, got %v", got.Confidence)
	}
	if got.Category != CategoryTechnology {
		t.Fatalf("expected default category, got %q", got.Category)
	}

	if err := r.AddSkill(Skill{Name: "   "}); err == nil {
		t.Fatalf("expected an error for a blank skill name")
	}
}

func TestUpdateSkill(t *testing.T) {
	r := &ResumeData{TopSkills: []Skill{{Name: "Go", Confidence: 0.9, Category: CategoryProgrammingLanguage}}}

	if err := r.UpdateSkill(0, Skill{Name: "Golang", Confidence: -0.2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := r.TopSkills[0]
	if got.Name != "Golang" || got.Confidence != 0 {
		t.Fatalf("unexpected skill after update: %+v", got)
	}
	if got.Category != CategoryProgrammingLanguage {
		t.Fatalf("expected category preserved on update, got %q", got.Category)
	}

	if err := r.UpdateSkill(5, Skill{Name: "Rust"}); err == nil {
		t.Fatalf("expected an error for an out-of-range index")
	}
}

func TestRemoveSkill(t *testing.T) {
	r := &ResumeData{TopSkills: []Skill{{Name: "Go"}, {Name: "Rust"}}}

	if err := r.RemoveSkill(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.TopSkills) != 1 || r.TopSkills[0].Name != "Rust" {
		t.Fatalf("unexpected skills after removal: %+v", r.TopSkills)
	}

	if err := r.RemoveSkill(3); err == nil {
		t.Fatalf("expected an error for an out-of-range index")
	}
}
