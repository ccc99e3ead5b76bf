// Package session holds the in-memory state of one review flow: the parsed
// resume, the selected target role and the in-flight upload guard. Nothing
// here is persisted.
package session

import (
	"errors"
	"sync"

	"github.com/skillscope/skillscope/internal/matching"
	"github.com/skillscope/skillscope/internal/profile"
)

var (
	ErrNoResume       = errors.New("no resume has been uploaded for this session")
	ErrUploadInFlight = errors.New("an upload is already in progress for this session")
)

// Session owns one user's ResumeData. The matching and recommendation core
// only ever sees snapshot copies taken under the session lock, so edits and
// analyses can interleave freely.
type Session struct {
	ID string

	mu        sync.Mutex
	resume    *profile.ResumeData
	role      string
	uploading bool
}

func newSession(id string) *Session {
	return &Session{
		ID:   id,
		role: matching.DefaultRole,
	}
}

// BeginUpload marks the session as having an upload in flight. A second
// concurrent upload is rejected, per the one-in-flight-request contract.
func (s *Session) BeginUpload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uploading {
		return ErrUploadInFlight
	}
	s.uploading = true
	return nil
}

// FinishUpload installs freshly parsed resume data and clears the in-flight
// flag. A nil resume only clears the flag (failed upload).
func (s *Session) FinishUpload(resume *profile.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploading = false
	if resume != nil {
		s.resume = resume
	}
}

// SetRole records the target role for subsequent analyses.
func (s *Session) SetRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
}

// Role returns the currently selected target role.
func (s *Session) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// Resume returns a deep copy of the session's resume data.
func (s *Session) Resume() (*profile.ResumeData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resume == nil {
		return nil, ErrNoResume
	}
	return s.resume.Clone(), nil
}

// Skills returns a snapshot copy of the session's skill list.
func (s *Session) Skills() ([]profile.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resume == nil {
		return nil, ErrNoResume
	}

	out := make([]profile.Skill, len(s.resume.TopSkills))
	copy(out, s.resume.TopSkills)
	return out, nil
}

// AddSkill appends a skill to the session's resume.
func (s *Session) AddSkill(skill profile.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resume == nil {
		return ErrNoResume
	}
	return s.resume.AddSkill(skill)
}

// UpdateSkill replaces the skill at index.
func (s *Session) UpdateSkill(index int, skill profile.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resume == nil {
		return ErrNoResume
	}
	return s.resume.UpdateSkill(index, skill)
}

// RemoveSkill deletes the skill at index.
func (s *Session) RemoveSkill(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resume == nil {
		return ErrNoResume
	}
	return s.resume.RemoveSkill(index)
}
