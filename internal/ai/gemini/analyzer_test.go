package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/skillscope/skillscope/internal/ai"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestAnalyzerAnalyze(t *testing.T) {
	stub := &stubGenerator{response: `{
		"name": "Ada Lovelace",
		"yearsOfExperience": 4,
		"topSkills": [
			{"name": "Go", "confidence": 0.9, "category": "Programming Language"}
		]
	}`}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	extraction, err := analyzer.Analyze(context.Background(), "resume body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extraction.Name != "Ada Lovelace" {
		t.Fatalf("unexpected name: %q", extraction.Name)
	}
	if extraction.YearsOfExperience != 4 {
		t.Fatalf("unexpected years: %v", extraction.YearsOfExperience)
	}
	if len(extraction.TopSkills) != 1 || extraction.TopSkills[0].Name != "Go" {
		t.Fatalf("unexpected skills: %+v", extraction.TopSkills)
	}

	if !strings.Contains(stub.lastPrompt, "resume body") {
		t.Fatalf("expected resume text embedded in the prompt")
	}
	if strings.Contains(stub.lastPrompt, "{{RESUME_TEXT}}") {
		t.Fatalf("expected the placeholder replaced in the prompt")
	}
}

func TestAnalyzerStripsMarkdownFences(t *testing.T) {
	stub := &stubGenerator{response: "Here you go:\n```json\n" +
		`{"name": "Ada", "yearsOfExperience": 2, "topSkills": []}` +
		"\n```\nLet me know if you need anything else."}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	extraction, err := analyzer.Analyze(context.Background(), "resume")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extraction.Name != "Ada" {
		t.Fatalf("unexpected name: %q", extraction.Name)
	}
	if extraction.TopSkills == nil || len(extraction.TopSkills) != 0 {
		t.Fatalf("expected an empty skill list, got %+v", extraction.TopSkills)
	}
}

func TestAnalyzerWeaklyTypedFields(t *testing.T) {
	// Models frequently return numbers as strings and vice versa.
	stub := &stubGenerator{response: `{
		"name": "Ada",
		"yearsOfExperience": "3",
		"topSkills": [{"name": "Go", "confidence": "0.8", "category": "Tool"}]
	}`}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	extraction, err := analyzer.Analyze(context.Background(), "resume")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extraction.YearsOfExperience != 3 {
		t.Fatalf("expected string years coerced to 3, got %v", extraction.YearsOfExperience)
	}
	if extraction.TopSkills[0].Confidence != 0.8 {
		t.Fatalf("expected string confidence coerced to 0.8, got %v", extraction.TopSkills[0].Confidence)
	}
}

func TestAnalyzerMalformedResponses(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{name: "not json", response: "I could not parse this resume."},
		{name: "missing name", response: `{"yearsOfExperience": 2, "topSkills": []}`},
		{name: "missing years", response: `{"name": "Ada", "topSkills": []}`},
		{name: "missing skills", response: `{"name": "Ada", "yearsOfExperience": 2}`},
		{name: "blank name", response: `{"name": "  ", "yearsOfExperience": 2, "topSkills": []}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			analyzer := NewAnalyzer(&stubGenerator{response: tc.response}, zap.NewNop(), 0)

			_, err := analyzer.Analyze(context.Background(), "resume")
			if !errors.Is(err, ai.ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestAnalyzerGeneratorErrorPassesThrough(t *testing.T) {
	genErr := errors.New("rate limited")
	analyzer := NewAnalyzer(&stubGenerator{err: genErr}, zap.NewNop(), 0)

	_, err := analyzer.Analyze(context.Background(), "resume")
	if !errors.Is(err, genErr) {
		t.Fatalf("expected the generator error, got %v", err)
	}
}

func TestAnalyzerRejectsEmptyText(t *testing.T) {
	analyzer := NewAnalyzer(&stubGenerator{}, zap.NewNop(), 0)

	if _, err := analyzer.Analyze(context.Background(), "   "); err == nil {
		t.Fatalf("expected an error for blank resume text")
	}
}

func TestAnalyzerTruncatesLongResumes(t *testing.T) {
	stub := &stubGenerator{response: `{"name": "Ada", "yearsOfExperience": 1, "topSkills": []}`}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	long := strings.Repeat("experience ", 2000)
	if _, err := analyzer.Analyze(context.Background(), long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(stub.lastPrompt, long) {
		t.Fatalf("expected the resume text truncated before prompting")
	}
}
