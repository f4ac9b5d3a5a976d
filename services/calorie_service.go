package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfranco00/Nutri-Agent/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lookupTimeout bounds a single calorie lookup against the oracle.
const lookupTimeout = 60 * time.Second

type CalorieService struct {
	db     *gorm.DB
	oracle Oracle
}

func NewCalorieService(db *gorm.DB, oracle Oracle) *CalorieService {
	return &CalorieService{db: db, oracle: oracle}
}

// ResolveCalories returns the calories in one unit of the named food,
// consulting the food_cache memo before falling back to the oracle.
//
// The cache key is the lowercased, trimmed name only. The unit is NOT part
// of the key, so a hit is reused regardless of the unit the caller asked
// for (the stored unit_type records what the value was computed under).
// Oracle failures of any kind collapse to 0.0: logged, never cached, never
// propagated. A successful miss writes exactly one new row; concurrent
// misses for the same name race on the unique index and the loser's insert
// is absorbed, but it still returns its own parsed value.
func (s *CalorieService) ResolveCalories(ctx context.Context, name, unit string) float64 {
	key := strings.ToLower(strings.TrimSpace(name))

	var cached models.FoodCache
	if err := s.db.Where("name = ?", key).First(&cached).Error; err == nil {
		return cached.CaloriesPerUnit
	}

	qctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Quantas calorias (kcal) existem em exatamente 1 %s de %s? Responda APENAS com o número, sem texto.",
		unit, key,
	)
	answer, err := s.oracle.Query(qctx, prompt)
	if err != nil {
		log.Printf("calorie lookup for %q failed: %v", key, err)
		return 0.0
	}

	value, err := parseCalorieAnswer(answer)
	if err != nil {
		log.Printf("calorie lookup for %q returned non-numeric answer %q", key, answer)
		return 0.0
	}

	entry := models.FoodCache{Name: key, CaloriesPerUnit: value, UnitType: unit}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
		// Lost the race (or the DB hiccuped): the memo already has a row, the
		// locally-computed value is still good for this caller.
		log.Printf("failed to cache calories for %q: %v", key, err)
	}
	return value
}

// TotalCalories resolves the per-unit value and scales it by the requested
// quantity, rounded to 1 decimal place.
func (s *CalorieService) TotalCalories(ctx context.Context, name string, quantity float64, unit string) float64 {
	perUnit := s.ResolveCalories(ctx, name, unit)
	return math.Round(perUnit*quantity*10) / 10
}

// parseCalorieAnswer extracts a float from the oracle's raw text. The prompt
// asks for a bare number but models occasionally add units or punctuation,
// so commas are treated as decimal separators before parsing.
func parseCalorieAnswer(raw string) (float64, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, ",", ".")
	return strconv.ParseFloat(clean, 64)
}
