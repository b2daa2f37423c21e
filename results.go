package main

import "math"

// Tier is a coarse feedback bucket derived from the final percentage. The
// core emits identifiers only; display text and icons belong to the client.
type Tier string

const (
	TierPerfect     Tier = "perfect"
	TierExcellent   Tier = "excellent"
	TierGood        Tier = "good"
	TierFair        Tier = "fair"
	TierNeedsReview Tier = "needs-review"
)

// ResultsSummary is the final score of one completed quiz plus the ordered
// per-question review list.
type ResultsSummary struct {
	Score      int                `json:"score"`
	Total      int                `json:"total"`
	Percentage int                `json:"percentage"`
	Tier       Tier               `json:"tier"`
	Review     []AnsweredQuestion `json:"review"`
}

// tierFor maps a percentage to its feedback tier. Bounds are inclusive.
func tierFor(percentage int) Tier {
	switch {
	case percentage == 100:
		return TierPerfect
	case percentage >= 80:
		return TierExcellent
	case percentage >= 60:
		return TierGood
	case percentage >= 40:
		return TierFair
	default:
		return TierNeedsReview
	}
}

func buildSummary(score, total int, answers []AnsweredQuestion) ResultsSummary {
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) * 100.0 / float64(total)))
	}
	review := append([]AnsweredQuestion(nil), answers...)
	return ResultsSummary{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Tier:       tierFor(percentage),
		Review:     review,
	}
}
