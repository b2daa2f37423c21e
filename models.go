package main

import (
	"time"
)

// --- Vocabulary ---

// Vocabulary is one English word paired with its Thai meaning.
// Identity is fixed once created; the word and meaning can be edited.
type Vocabulary struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EnglishWord string    `gorm:"not null;size:200" json:"englishWord"`
	ThaiMeaning string    `gorm:"not null;size:500" json:"thaiMeaning"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}
