package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// MinPoolSize is the smallest vocabulary a quiz can be started from.
	MinPoolSize = 5

	distractorsPerQuestion = 3
)

var (
	// ErrInsufficientPool means the vocabulary is too small for the
	// requested quiz. Checked before a session is created.
	ErrInsufficientPool = errors.New("not enough vocabulary for the requested quiz")

	// ErrInvalidState means an operation was called outside the session
	// state it is valid in (e.g. answering after the quiz completed).
	ErrInvalidState = errors.New("operation not valid in current session state")

	// ErrUnknownOption means the submitted answer text is not one of the
	// current question's options.
	ErrUnknownOption = errors.New("answer is not one of the question options")

	// ErrNoActiveSession means no quiz is currently running.
	ErrNoActiveSession = errors.New("no active quiz session")
)

// QuizOption is a single answer choice. Exactly one option per question
// has IsCorrect set.
type QuizOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuizQuestion asks for the Thai meaning of an English word. Options hold
// the correct meaning plus up to three distractors in shuffled order and
// are never mutated after generation.
type QuizQuestion struct {
	EnglishWord   string       `json:"englishWord"`
	CorrectAnswer string       `json:"correctAnswer"`
	Options       []QuizOption `json:"options"`
	SourceID      uint         `json:"sourceId"`
}

// AnsweredQuestion records one submitted answer for the review list.
type AnsweredQuestion struct {
	Question       string `json:"question"`
	CorrectAnswer  string `json:"correctAnswer"`
	SelectedAnswer string `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// generateQuestions draws count distinct entries from pool uniformly at
// random and builds one multiple-choice question per entry. The pool is a
// snapshot: later edits to the store do not affect generated questions.
func generateQuestions(pool []Vocabulary, count int, r *rand.Rand) ([]QuizQuestion, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", ErrInsufficientPool)
	}
	if len(pool) < count {
		return nil, fmt.Errorf("%w: have %d words, need %d", ErrInsufficientPool, len(pool), count)
	}
	if r == nil {
		r = newRand(nil)
	}

	drawn := drawEntries(pool, count, r)

	out := make([]QuizQuestion, 0, count)
	for _, v := range drawn {
		distractors := pickDistractors(pool, v, distractorsPerQuestion, r)

		options := make([]QuizOption, 0, len(distractors)+1)
		options = append(options, QuizOption{Text: v.ThaiMeaning, IsCorrect: true})
		for _, d := range distractors {
			options = append(options, QuizOption{Text: d, IsCorrect: false})
		}
		r.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

		out = append(out, QuizQuestion{
			EnglishWord:   v.EnglishWord,
			CorrectAnswer: v.ThaiMeaning,
			Options:       options,
			SourceID:      v.ID,
		})
	}
	return out, nil
}

// drawEntries returns count entries sampled without replacement.
func drawEntries(pool []Vocabulary, count int, r *rand.Rand) []Vocabulary {
	out := append([]Vocabulary(nil), pool...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count > len(out) {
		count = len(out)
	}
	return out[:count]
}

// pickDistractors samples up to max wrong meanings for current from the
// rest of the pool. Meanings equal to the correct answer or to an already
// picked distractor are skipped, so option texts within one question stay
// pairwise distinct even when two entries share a meaning. A short pool
// yields fewer distractors, not an error.
func pickDistractors(pool []Vocabulary, current Vocabulary, max int, r *rand.Rand) []string {
	others := make([]Vocabulary, 0, len(pool))
	for _, v := range pool {
		if v.ID != current.ID {
			others = append(others, v)
		}
	}
	r.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	taken := map[string]bool{current.ThaiMeaning: true}
	out := make([]string, 0, max)
	for _, v := range others {
		if len(out) == max {
			break
		}
		if taken[v.ThaiMeaning] {
			continue
		}
		taken[v.ThaiMeaning] = true
		out = append(out, v.ThaiMeaning)
	}
	return out
}
