package main

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func makePool(n int) []Vocabulary {
	pool := make([]Vocabulary, 0, n)
	for i := 1; i <= n; i++ {
		pool = append(pool, Vocabulary{
			ID:          uint(i),
			EnglishWord: fmt.Sprintf("word-%02d", i),
			ThaiMeaning: fmt.Sprintf("meaning-%02d", i),
		})
	}
	return pool
}

func seededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestGenerateQuestionsProperties(t *testing.T) {
	tests := []struct {
		name     string
		poolSize int
		count    int
		wantOpts int
	}{
		{name: "small pool exhausted", poolSize: 5, count: 5, wantOpts: 4},
		{name: "subset of larger pool", poolSize: 20, count: 10, wantOpts: 4},
		{name: "single question", poolSize: 5, count: 1, wantOpts: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				qs, err := generateQuestions(makePool(tt.poolSize), tt.count, seededRand(seed))
				if err != nil {
					t.Fatalf("generateQuestions() error = %v", err)
				}
				if len(qs) != tt.count {
					t.Fatalf("got %d questions, want %d", len(qs), tt.count)
				}

				seenSource := map[uint]bool{}
				for _, q := range qs {
					if seenSource[q.SourceID] {
						t.Errorf("seed %d: word %q drawn twice", seed, q.EnglishWord)
					}
					seenSource[q.SourceID] = true

					if len(q.Options) != tt.wantOpts {
						t.Errorf("seed %d: got %d options, want %d", seed, len(q.Options), tt.wantOpts)
					}

					correct := 0
					seenText := map[string]bool{}
					foundAnswer := false
					for _, o := range q.Options {
						if o.IsCorrect {
							correct++
							if o.Text != q.CorrectAnswer {
								t.Errorf("correct option text %q != correctAnswer %q", o.Text, q.CorrectAnswer)
							}
						}
						if seenText[o.Text] {
							t.Errorf("seed %d: duplicate option text %q", seed, o.Text)
						}
						seenText[o.Text] = true
						if o.Text == q.CorrectAnswer {
							foundAnswer = true
						}
					}
					if correct != 1 {
						t.Errorf("seed %d: got %d correct options, want exactly 1", seed, correct)
					}
					if !foundAnswer {
						t.Errorf("seed %d: correct answer missing from options", seed)
					}
				}
			}
		})
	}
}

func TestGenerateQuestionsPreconditions(t *testing.T) {
	tests := []struct {
		name     string
		poolSize int
		count    int
	}{
		{name: "count exceeds pool", poolSize: 5, count: 10},
		{name: "zero count", poolSize: 5, count: 0},
		{name: "negative count", poolSize: 5, count: -1},
		{name: "empty pool", poolSize: 0, count: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generateQuestions(makePool(tt.poolSize), tt.count, seededRand(1))
			if !errors.Is(err, ErrInsufficientPool) {
				t.Errorf("error = %v, want ErrInsufficientPool", err)
			}
		})
	}
}

func TestGenerateQuestionsSeedReproducible(t *testing.T) {
	a, err := generateQuestions(makePool(10), 5, seededRand(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := generateQuestions(makePool(10), 5, seededRand(42))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].EnglishWord != b[i].EnglishWord {
			t.Fatalf("question %d differs: %q vs %q", i, a[i].EnglishWord, b[i].EnglishWord)
		}
	}
}

func TestPickDistractorsSharedMeanings(t *testing.T) {
	// three entries share one meaning; options must still be pairwise
	// distinct, so only one of them can appear as a distractor
	pool := []Vocabulary{
		{ID: 1, EnglishWord: "big", ThaiMeaning: "ใหญ่"},
		{ID: 2, EnglishWord: "large", ThaiMeaning: "ใหญ่"},
		{ID: 3, EnglishWord: "huge", ThaiMeaning: "ใหญ่"},
		{ID: 4, EnglishWord: "small", ThaiMeaning: "เล็ก"},
		{ID: 5, EnglishWord: "fast", ThaiMeaning: "เร็ว"},
	}
	for seed := int64(0); seed < 50; seed++ {
		ds := pickDistractors(pool, pool[0], 3, seededRand(seed))
		seen := map[string]bool{"ใหญ่": true}
		for _, d := range ds {
			if seen[d] {
				t.Fatalf("seed %d: duplicate distractor %q", seed, d)
			}
			seen[d] = true
		}
		// only เล็ก and เร็ว are usable against ใหญ่
		if len(ds) != 2 {
			t.Fatalf("seed %d: got %d distractors, want 2", seed, len(ds))
		}
	}
}

func TestPickDistractorsShortPool(t *testing.T) {
	pool := makePool(3)
	ds := pickDistractors(pool, pool[0], 3, seededRand(7))
	if len(ds) != 2 {
		t.Fatalf("got %d distractors, want 2 from a pool of 3", len(ds))
	}

	qs, err := generateQuestions(pool, 3, seededRand(7))
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range qs {
		if len(q.Options) != 3 {
			t.Errorf("word %q: got %d options, want 3 (degraded)", q.EnglishWord, len(q.Options))
		}
	}
}
