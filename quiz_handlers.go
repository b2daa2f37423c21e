package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

/*** Quiz mode ***/

// QuestionDTO is a question as shown to the client: option texts only, no
// correctness flags, so the answer cannot be read out of the payload.
type QuestionDTO struct {
	Position    int      `json:"position"` // 1..total
	Total       int      `json:"total"`
	EnglishWord string   `json:"englishWord"`
	Options     []string `json:"options"`
}

func questionDTO(q QuizQuestion, index, total int) QuestionDTO {
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, o.Text)
	}
	return QuestionDTO{
		Position:    index + 1,
		Total:       total,
		EnglishWord: q.EnglishWord,
		Options:     opts,
	}
}

type StartQuizReq struct {
	Count int    `json:"count"`
	Seed  *int64 `json:"seed"` // optional for reproducibility
}

// StartQuiz snapshots the vocabulary, generates the questions and replaces
// any previous session. The pool must hold at least MinPoolSize words and
// at least count of them.
func StartQuiz(db *gorm.DB, mgr *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartQuizReq
		_ = c.BindJSON(&req)
		if req.Count <= 0 {
			req.Count = MinPoolSize
		}

		pool, err := loadVocabularies(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		session, err := mgr.Start(pool, req.Count, req.Seed)
		if errors.Is(err, ErrInsufficientPool) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "quiz start failed"})
			return
		}

		q, idx, _ := session.CurrentQuestion()
		_, _, total := session.Progress()
		logger.WithFields(logFields{"session": session.ID, "count": total}).Info("quiz started")
		c.JSON(http.StatusOK, gin.H{
			"sessionId": session.ID,
			"total":     total,
			"question":  questionDTO(q, idx, total),
		})
	}
}

// CurrentQuestion returns the question at the session's current index.
func CurrentQuestion(mgr *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := mgr.Active()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active quiz"})
			return
		}
		q, idx, err := session.CurrentQuestion()
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "quiz already completed"})
			return
		}
		answered, score, total := session.Progress()
		c.JSON(http.StatusOK, gin.H{
			"question": questionDTO(q, idx, total),
			"answered": answered,
			"score":    score,
		})
	}
}

type SubmitAnswerReq struct {
	Answer string `json:"answer"`
}

// SubmitAnswer scores one answer and reveals the correct meaning, matching
// the immediate feedback of the original quiz screen. Double submissions
// during the advance pause and submissions after completion are rejected.
func SubmitAnswer(mgr *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := mgr.Active()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active quiz"})
			return
		}
		var req SubmitAnswerReq
		if err := c.BindJSON(&req); err != nil || req.Answer == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "answer required"})
			return
		}

		answered, err := session.SubmitAnswer(req.Answer)
		if errors.Is(err, ErrUnknownOption) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "answer not accepted in current state"})
			return
		}

		count, score, total := session.Progress()
		c.JSON(http.StatusOK, gin.H{
			"isCorrect":     answered.IsCorrect,
			"correctAnswer": answered.CorrectAnswer,
			"answered":      count,
			"score":         score,
			"total":         total,
			"finished":      session.Completed(),
		})
	}
}

// QuizResults returns the summary and review list of a completed quiz.
func QuizResults(mgr *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := mgr.Active()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active quiz"})
			return
		}
		summary, err := session.Summarize()
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "quiz not completed yet"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// AbandonQuiz discards the active session; pending advance timers become
// no-ops.
func AbandonQuiz(mgr *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mgr.Abandon()
		c.JSON(http.StatusOK, gin.H{"abandoned": true})
	}
}
