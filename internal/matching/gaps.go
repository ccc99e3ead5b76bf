package matching

import (
	"math"

	"github.com/skillscope/skillscope/internal/profile"
)

// GapStatus tells whether a requirement is covered by the user's skill set.
type GapStatus string

const (
	StatusMatched GapStatus = "matched"
	StatusMissing GapStatus = "missing"
)

// Gap pairs one requirement with its match status for a given skill set.
type Gap struct {
	Skill      string     `json:"skill"`
	Category   string     `json:"category"`
	Importance Importance `json:"importance"`
	Status     GapStatus  `json:"status"`
}

// Statistics aggregates a gap list into match percentages and counts.
type Statistics struct {
	Total                int `json:"total"`
	Matched              int `json:"matched"`
	Required             int `json:"required"`
	RequiredMatched      int `json:"requiredMatched"`
	OverallMatchPercent  int `json:"overallMatchPercent"`
	RequiredMatchPercent int `json:"requiredMatchPercent"`
}

// Missing returns how many gaps are unmatched.
func (s Statistics) Missing() int {
	return s.Total - s.Matched
}

// ComputeGaps classifies every requirement as matched or missing against the
// user's skills. A requirement is matched when any skill name satisfies
// Matches. The output preserves requirement order, never mutates its inputs
// and is fully deterministic: equal inputs yield equal output.
func ComputeGaps(skills []profile.Skill, requirements []Requirement) []Gap {
	gaps := make([]Gap, 0, len(requirements))

	for _, req := range requirements {
		status := StatusMissing
		for _, s := range skills {
			if Matches(s.Name, req.Skill) {
				status = StatusMatched
				break
			}
		}

		gaps = append(gaps, Gap{
			Skill:      req.Skill,
			Category:   req.Category,
			Importance: req.Importance,
			Status:     status,
		})
	}

	return gaps
}

// ComputeStatistics aggregates gaps into match counts and rounded
// percentages. Empty input yields all-zero statistics, never a division by
// zero.
func ComputeStatistics(gaps []Gap) Statistics {
	stats := Statistics{Total: len(gaps)}

	for _, gap := range gaps {
		if gap.Status == StatusMatched {
			stats.Matched++
		}
		if gap.Importance == ImportanceRequired {
			stats.Required++
			if gap.Status == StatusMatched {
				stats.RequiredMatched++
			}
		}
	}

	if stats.Total > 0 {
		stats.OverallMatchPercent = roundPercent(stats.Matched, stats.Total)
	}
	if stats.Required > 0 {
		stats.RequiredMatchPercent = roundPercent(stats.RequiredMatched, stats.Required)
	}

	return stats
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
