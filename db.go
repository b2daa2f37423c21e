package main

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func OpenDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Vocabulary{},
	)
}

func IsVocabularyTableEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&Vocabulary{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
