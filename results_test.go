package main

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		percentage int
		want       Tier
	}{
		{100, TierPerfect},
		{99, TierExcellent},
		{80, TierExcellent},
		{79, TierGood},
		{60, TierGood},
		{59, TierFair},
		{40, TierFair},
		{39, TierNeedsReview},
		{0, TierNeedsReview},
	}
	for _, tt := range tests {
		if got := tierFor(tt.percentage); got != tt.want {
			t.Errorf("tierFor(%d) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestBuildSummaryRounding(t *testing.T) {
	tests := []struct {
		score, total   int
		wantPercentage int
	}{
		{5, 5, 100},
		{3, 5, 60},
		{1, 3, 33},
		{2, 3, 67},
		{0, 5, 0},
		{7, 10, 70},
	}
	for _, tt := range tests {
		got := buildSummary(tt.score, tt.total, nil)
		if got.Percentage != tt.wantPercentage {
			t.Errorf("buildSummary(%d, %d).Percentage = %d, want %d",
				tt.score, tt.total, got.Percentage, tt.wantPercentage)
		}
	}
}

func TestBuildSummaryReviewIsACopy(t *testing.T) {
	answers := []AnsweredQuestion{
		{Question: "a", IsCorrect: true},
		{Question: "b", IsCorrect: false},
	}
	sum := buildSummary(1, 2, answers)
	answers[0].Question = "mutated"
	if sum.Review[0].Question != "a" {
		t.Error("summary review shares backing array with session answers")
	}
}
