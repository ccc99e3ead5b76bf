package profile

import "testing"

func TestExperienceLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		years int
		want  string
	}{
		{years: 0, want: LevelJunior},
		{years: 1, want: LevelMidLevel},
		{years: 2, want: LevelMidLevel},
		{years: 3, want: LevelSenior},
		{years: 6, want: LevelSenior},
		{years: 7, want: LevelExpert},
		{years: 20, want: LevelExpert},
	}

	for _, tc := range cases {
		if got := ExperienceLevel(tc.years); got != tc.want {
			t.Fatalf("ExperienceLevel(%d) = %q, want %q", tc.years, got, tc.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	skills := []Skill{
		{Name: "Go", Confidence: 0.5, Category: CategoryProgrammingLanguage},
		{Name: "Docker", Confidence: 1, Category: CategoryTool},
		{Name: "Git", Confidence: 0.75, Category: CategoryTool},
	}

	summary := Summarize("Ada", 5, skills)

	if summary.ExperienceLevel != LevelSenior {
		t.Fatalf("expected senior level, got %q", summary.ExperienceLevel)
	}
	if summary.SkillCount != 3 {
		t.Fatalf("expected 3 skills, got %d", summary.SkillCount)
	}
	if summary.AvgConfidence != 0.75 {
		t.Fatalf("expected average confidence 0.75, got %v", summary.AvgConfidence)
	}
	if summary.CategoryCounts[CategoryTool] != 2 {
		t.Fatalf("expected 2 tools, got %d", summary.CategoryCounts[CategoryTool])
	}
	if summary.TopSkill == nil || summary.TopSkill.Name != "Docker" {
		t.Fatalf("expected Docker as top skill, got %+v", summary.TopSkill)
	}
}

func TestSummarizeEmptySkills(t *testing.T) {
	summary := Summarize("Ada", 0, nil)

	if summary.TopSkill != nil {
		t.Fatalf("expected no top skill, got %+v", summary.TopSkill)
	}
	if summary.AvgConfidence != 0 {
		t.Fatalf("expected 0 average confidence, got %v", summary.AvgConfidence)
	}
	if summary.SkillCount != 0 {
		t.Fatalf("expected 0 skills, got %d", summary.SkillCount)
	}
}
