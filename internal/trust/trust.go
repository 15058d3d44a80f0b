// Package trust recomputes the community trust score of a ladies day entry
// from its vote ledger. The score is always rebuilt from the full ledger
// rather than patched incrementally, so the stored aggregates can never
// drift from the votes that back them.
package trust

import (
	"github.com/ladies-sauna/ls-api/internal/domain"
)

// Tally holds the derived aggregates for a ladies day entry.
type Tally struct {
	SupportCount    int
	OppositionCount int
	TrustScore      float64
}

// Recompute derives the vote counts and trust score for an entry from its
// complete vote ledger. currentScore is the entry's score before this
// recomputation; it is retained when the ledger is empty, which preserves
// the submission-time seed (the submitter's own trust score).
//
// With at least one vote the score is support/total scaled to the 0-5
// range and clamped.
func Recompute(votes []domain.VoteType, currentScore float64) Tally {
	t := Tally{TrustScore: currentScore}

	for _, v := range votes {
		switch v {
		case domain.VoteTypeSupport:
			t.SupportCount++
		case domain.VoteTypeOppose:
			t.OppositionCount++
		}
	}

	total := t.SupportCount + t.OppositionCount
	if total > 0 {
		ratio := float64(t.SupportCount) / float64(total)
		t.TrustScore = clamp(domain.TrustScoreMin, domain.TrustScoreMax, ratio*domain.TrustScoreMax)
	}

	return t
}

// TotalVotes returns the number of votes reflected in the tally.
func (t Tally) TotalVotes() int {
	return t.SupportCount + t.OppositionCount
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
