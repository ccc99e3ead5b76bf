package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/skillscope/skillscope/internal/ai"
	"github.com/skillscope/skillscope/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Analyzer asks Gemini for a structured extraction of a resume's text and
// validates the model's free-form JSON reply.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200

	// Resumes are truncated before prompting; the opening section carries
	// the name, experience summary and skills on virtually every resume.
	maxResumeRunes = 4000
)

func NewAnalyzer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Analyzer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Analyze sends the resume text to Gemini and parses the reply into an
// Extraction. A reply missing the required fields fails with
// ai.ErrMalformedResponse; the raw reply is logged at debug level and never
// returned inside the error.
func (a *Analyzer) Analyze(ctx context.Context, resumeText string) (*ai.Extraction, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, fmt.Errorf("resume text is required")
	}

	prompt := buildPrompt(truncateRunes(resumeText, maxResumeRunes))

	a.logger.Debug("gemini analyze request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini analyze response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, a.maxLogLen)),
	)

	extraction, err := parseExtraction(raw)
	if err != nil {
		a.logger.Debug("gemini response rejected",
			zap.Error(err),
			zap.String("raw_response", util.TruncateForLog(raw, a.maxLogLen*4)),
		)
		return nil, err
	}

	extraction.Raw = raw
	return extraction, nil
}

func buildPrompt(resumeText string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume:\n{{RESUME_TEXT}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{RESUME_TEXT}}", resumeText)
}

// parseExtraction validates the model's reply. The reply is untrusted: it
// may be fenced in markdown, carry prose around the JSON, or use the wrong
// scalar types, so fields are decoded weakly and then checked for presence.
func parseExtraction(raw string) (*ai.Extraction, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrMalformedResponse, err)
	}

	for _, key := range []string{"name", "yearsOfExperience", "topSkills"} {
		if _, ok := data[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ai.ErrMalformedResponse, key)
		}
	}

	var extraction ai.Extraction
	cfg := &mapstructure.DecoderConfig{
		Result:           &extraction,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrMalformedResponse, err)
	}

	if strings.TrimSpace(extraction.Name) == "" {
		return nil, fmt.Errorf("%w: empty name", ai.ErrMalformedResponse)
	}
	if extraction.TopSkills == nil {
		return nil, fmt.Errorf("%w: topSkills is not a list", ai.ErrMalformedResponse)
	}

	return &extraction, nil
}

// extractJSON strips markdown fences and surrounding prose, keeping the
// outermost JSON object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	raw = strings.TrimSpace(raw)

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		raw = raw[start : end+1]
	}

	return strings.TrimSpace(raw)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
