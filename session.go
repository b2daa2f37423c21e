package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// defaultAdvanceDelay is the feedback pause between answering a question
// and the next one becoming available.
const defaultAdvanceDelay = 800 * time.Millisecond

type sessionState int

const (
	stateSetup sessionState = iota
	stateInProgress
	stateCompleted
)

// QuizSession is the mutable state of one quiz attempt. It is created by
// SessionManager.Start, owned by exactly one caller, and discarded when a
// new quiz starts. Invariants held after every SubmitAnswer:
// len(answers) == currentIndex and score == number of correct answers.
type QuizSession struct {
	ID        string
	StartedAt time.Time

	mu           sync.Mutex
	state        sessionState
	questions    []QuizQuestion
	currentIndex int
	score        int
	answers      []AnsweredQuestion

	// advancing is set between an answer submission and the deferred
	// advance firing; submissions during that window are rejected so a
	// question cannot be answered twice.
	advancing bool
	// closed marks an abandoned or replaced session; pending timers
	// must no-op against it.
	closed bool
	delay  time.Duration
	timer  *time.Timer
}

// SubmitAnswer evaluates optionText against the current question, records
// the answer and advances the session. Rejected outside InProgress and
// while a deferred advance is pending.
func (s *QuizSession) SubmitAnswer(optionText string) (AnsweredQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state != stateInProgress {
		return AnsweredQuestion{}, ErrInvalidState
	}
	if s.advancing {
		return AnsweredQuestion{}, ErrInvalidState
	}

	q := s.questions[s.currentIndex]
	var selected *QuizOption
	for i := range q.Options {
		if q.Options[i].Text == optionText {
			selected = &q.Options[i]
			break
		}
	}
	if selected == nil {
		return AnsweredQuestion{}, ErrUnknownOption
	}

	answered := AnsweredQuestion{
		Question:       q.EnglishWord,
		CorrectAnswer:  q.CorrectAnswer,
		SelectedAnswer: selected.Text,
		IsCorrect:      selected.IsCorrect,
	}
	s.answers = append(s.answers, answered)
	if answered.IsCorrect {
		s.score++
	}
	s.currentIndex++

	if s.currentIndex == len(s.questions) {
		s.state = stateCompleted
		return answered, nil
	}
	if s.delay > 0 {
		s.advancing = true
		s.timer = time.AfterFunc(s.delay, s.advance)
	}
	return answered, nil
}

// advance clears the feedback pause. It is the deferred callback behind
// the answer-to-next-question delay and must never touch a session that
// has been abandoned or replaced.
func (s *QuizSession) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.advancing = false
}

// CurrentQuestion returns the question at the current index along with its
// zero-based position. Valid only while the session is in progress.
func (s *QuizSession) CurrentQuestion() (QuizQuestion, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != stateInProgress {
		return QuizQuestion{}, 0, ErrInvalidState
	}
	return s.questions[s.currentIndex], s.currentIndex, nil
}

// Progress reports answered count, score and total without state checks,
// for progress displays.
func (s *QuizSession) Progress() (answered, score, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIndex, s.score, len(s.questions)
}

// Completed reports whether every question has been answered.
func (s *QuizSession) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateCompleted
}

// Summarize builds the results for a completed session. Calling it twice
// yields identical values.
func (s *QuizSession) Summarize() (ResultsSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != stateCompleted {
		return ResultsSummary{}, ErrInvalidState
	}
	return buildSummary(s.score, len(s.questions), s.answers), nil
}

// close invalidates the session: pending timers become no-ops and every
// operation fails with ErrInvalidState from here on.
func (s *QuizSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// SessionManager owns the single active quiz session. Starting a new quiz
// closes the previous session so stale deferred callbacks cannot mutate
// fresh state.
type SessionManager struct {
	mu     sync.Mutex
	active *QuizSession
	delay  time.Duration
}

func NewSessionManager(delay time.Duration) *SessionManager {
	return &SessionManager{delay: delay}
}

// Start validates the pool, generates questions once and transitions the
// new session straight into InProgress. The vocabulary slice is treated as
// a fixed snapshot. An optional seed makes the draw reproducible.
func (m *SessionManager) Start(pool []Vocabulary, count int, seed *int64) (*QuizSession, error) {
	if len(pool) < MinPoolSize {
		return nil, ErrInsufficientPool
	}
	questions, err := generateQuestions(pool, count, newRand(seed))
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		m.active.close()
	}
	m.active = &QuizSession{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		state:     stateInProgress,
		questions: questions,
		answers:   make([]AnsweredQuestion, 0, len(questions)),
		delay:     m.delay,
	}
	return m.active, nil
}

// Active returns the running session, if any.
func (m *SessionManager) Active() (*QuizSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil, ErrNoActiveSession
	}
	return m.active, nil
}

// Abandon discards the active session, e.g. when the user leaves the quiz
// or the results screen.
func (m *SessionManager) Abandon() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		m.active.close()
		m.active = nil
	}
}
