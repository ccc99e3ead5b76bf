// Package intake validates uploaded resumes, runs them through the external
// extraction and analysis collaborators and sanitizes the result into the
// canonical profile shape. It is the only trust boundary in front of the
// matching and recommendation core.
package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/skillscope/skillscope/internal/ai"
	"github.com/skillscope/skillscope/internal/extract"
	"github.com/skillscope/skillscope/internal/profile"
)

const pdfContentType = "application/pdf"

// Adapter wires document extraction and LLM analysis into a single
// ParseResume operation.
type Adapter struct {
	extractor extract.Extractor
	analyzer  ai.Analyzer
	logger    *zap.Logger
	maxBytes  int64
}

// New creates an intake adapter. A nil analyzer is allowed: uploads then
// fail with ErrNotConfigured, so a server without a credential still starts
// and reports the problem per request.
func New(extractor extract.Extractor, analyzer ai.Analyzer, logger *zap.Logger, maxBytes int64) *Adapter {
	return &Adapter{
		extractor: extractor,
		analyzer:  analyzer,
		logger:    logger,
		maxBytes:  maxBytes,
	}
}

// Configured reports whether an analyzer credential is available.
func (a *Adapter) Configured() bool {
	return a != nil && a.analyzer != nil
}

// ParseResume validates the document, extracts its text, analyzes it and
// returns sanitized resume data. Validation happens before any extraction
// or network work.
func (a *Adapter) ParseResume(ctx context.Context, data []byte, contentType string) (*profile.ResumeData, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	if mediaType(contentType) != pdfContentType {
		return nil, fmt.Errorf("%w (got %q)", ErrUnsupportedType, contentType)
	}

	if a.maxBytes > 0 && int64(len(data)) > a.maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrDocumentTooLarge, len(data))
	}

	if a.analyzer == nil {
		return nil, ErrNotConfigured
	}

	text, err := a.extractor.Text(data)
	if err != nil {
		return nil, fmt.Errorf("extract document text: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	a.logger.Debug("document text extracted", zap.Int("text_length", len(text)))

	extraction, err := a.analyzer.Analyze(ctx, text)
	if err != nil {
		if errors.Is(err, ai.ErrMalformedResponse) {
			a.logger.Warn("analyzer returned malformed response", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrUpstreamMalformed, err)
		}
		return nil, fmt.Errorf("analyze resume: %w", err)
	}

	resume := sanitize(extraction)

	a.logger.Info("resume parsed",
		zap.Int("years_of_experience", resume.YearsOfExperience),
		zap.Int("skills", len(resume.TopSkills)),
	)

	return resume, nil
}

// mediaType strips any parameters from a Content-Type header value.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
