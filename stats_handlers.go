package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// offeredCounts are the quiz sizes the setup screen presents as buttons.
var offeredCounts = []int{5, 10, 15, 20}

type QuizOptionStat struct {
	Count     int  `json:"count"`
	Available bool `json:"available"`
}

type StatsResponse struct {
	TotalWords  int64            `json:"totalWords"`
	MinPoolSize int              `json:"minPoolSize"`
	QuizReady   bool             `json:"quizReady"`
	QuizOptions []QuizOptionStat `json:"quizOptions"`
}

// Stats reports the vocabulary size and which quiz sizes it can support,
// so the client can disable counts exceeding the pool.
func Stats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var total int64
		if err := db.Model(&Vocabulary{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		opts := make([]QuizOptionStat, 0, len(offeredCounts))
		for _, n := range offeredCounts {
			opts = append(opts, QuizOptionStat{
				Count:     n,
				Available: total >= int64(n),
			})
		}

		c.JSON(http.StatusOK, StatsResponse{
			TotalWords:  total,
			MinPoolSize: MinPoolSize,
			QuizReady:   total >= MinPoolSize,
			QuizOptions: opts,
		})
	}
}
