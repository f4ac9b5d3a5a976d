package services

import (
	"context"
	"testing"

	"github.com/vfranco00/Nutri-Agent/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// a second pooled connection would see a different :memory: database
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.ShoppingList{},
		&models.ShoppingItem{},
		&models.WeightEntry{},
		&models.FoodCache{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// stubOracle is a scripted Oracle: it records every prompt and returns the
// configured answer or error. onQuery, when set, runs before answering;
// tests use it to simulate a concurrent writer.
type stubOracle struct {
	answer  string
	err     error
	prompts []string
	onQuery func()
}

func (o *stubOracle) Query(_ context.Context, prompt string) (string, error) {
	o.prompts = append(o.prompts, prompt)
	if o.onQuery != nil {
		o.onQuery()
	}
	if o.err != nil {
		return "", o.err
	}
	return o.answer, nil
}

func (o *stubOracle) calls() int { return len(o.prompts) }
