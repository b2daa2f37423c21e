package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

type logFields = logrus.Fields

func init() {
	// Load .env in local development; containerized deployments set the
	// environment directly.
	if err := godotenv.Load(); err != nil {
		logger.Debugf(".env not loaded: %v", err)
	}
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("LOG_LEVEL") == "debug" {
		logger.SetLevel(logrus.DebugLevel)
	}
}

// advanceDelay reads ADVANCE_MS, the feedback pause before the next
// question becomes available.
func advanceDelay() time.Duration {
	if v := os.Getenv("ADVANCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultAdvanceDelay
}

func main() {
	// 1) DB
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "vocab.db"
	}
	db, err := OpenDB(dbPath)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		logger.Fatalf("migrate: %v", err)
	}

	// 2) Seed (if empty)
	if isEmpty, _ := IsVocabularyTableEmpty(db); isEmpty {
		path := os.Getenv("SEED_FILE")
		if path == "" {
			path = "data/words.json"
		}
		if _, err := os.Stat(path); err == nil {
			if err := SeedFromJSON(db, path); err != nil {
				logger.Fatalf("seed: %v", err)
			}
			logger.WithFields(logFields{"file": path}).Info("seeded vocabulary from file")
		} else if err := SeedSamples(db); err != nil {
			logger.Fatalf("seed samples: %v", err)
		} else {
			logger.Info("seeded sample vocabulary")
		}
	}

	// 3) Quiz sessions
	sessions := NewSessionManager(advanceDelay())

	// 4) Router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			// local single-user app; allow any localhost:PORT frontend
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	// --- API routes ---
	api := r.Group("/api/v1")
	{
		// Vocabulary
		api.GET("/words", ListWords(db))
		api.POST("/words", CreateWord(db))
		api.PUT("/words/:id", UpdateWord(db))
		api.DELETE("/words/:id", DeleteWord(db))
		api.GET("/words/export", ExportWords(db))
		api.POST("/words/import", ImportWords(db))
		api.GET("/stats", Stats(db))

		// Quiz
		api.POST("/quiz", StartQuiz(db, sessions))
		api.GET("/quiz/current", CurrentQuestion(sessions))
		api.POST("/quiz/answer", SubmitAnswer(sessions))
		api.GET("/quiz/results", QuizResults(sessions))
		api.DELETE("/quiz", AbandonQuiz(sessions))
	}

	// --- Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.WithFields(logFields{"port": port, "db": dbPath}).Info("listening")
	if err := r.Run(":" + port); err != nil {
		logger.Fatalf("run: %v", err)
	}
}
