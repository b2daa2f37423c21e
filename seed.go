package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"
)

// ==== JSON input structures ====

type VocabInput struct {
	EnglishWord string `json:"englishWord"`
	ThaiMeaning string `json:"thaiMeaning"`
}

// ==== Seeder ====

// SeedFromJSON loads initial vocabulary from a data file. Accepts either a
// bare array or { "words": [ ... ] }.
func SeedFromJSON(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var wrapper struct {
		Words []VocabInput `json:"words"`
	}
	var arr []VocabInput

	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Words) > 0 {
		arr = wrapper.Words
	} else if err := json.Unmarshal(raw, &arr); err != nil {
		return fmt.Errorf("json parse: %w", err)
	}

	for i, in := range arr {
		if strings.TrimSpace(in.EnglishWord) == "" || strings.TrimSpace(in.ThaiMeaning) == "" {
			return fmt.Errorf("seed entry %d: englishWord and thaiMeaning are required", i)
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, in := range arr {
			v := Vocabulary{
				EnglishWord: strings.TrimSpace(in.EnglishWord),
				ThaiMeaning: strings.TrimSpace(in.ThaiMeaning),
			}
			if err := tx.Create(&v).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SeedSamples inserts a few starter words for first-time users.
func SeedSamples(db *gorm.DB) error {
	samples := []Vocabulary{
		{EnglishWord: "Serendipity", ThaiMeaning: "การพบเจอสิ่งดีๆ โดยบังเอิญ"},
		{EnglishWord: "Ephemeral", ThaiMeaning: "ชั่วคราว, ไม่ยั่งยืน"},
		{EnglishWord: "Leverage", ThaiMeaning: "ใช้ประโยชน์, ใช้ให้เกิดประสิทธิภาพสูงสุด"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range samples {
			if err := tx.Create(&samples[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
