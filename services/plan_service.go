package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/vfranco00/Nutri-Agent/models"
)

// planTimeout bounds multi-day plan generation; single-day plans and recipe
// generation use the shorter lookupTimeout.
const planTimeout = 120 * time.Second

type PlanMode string

const (
	PlanVaried     PlanMode = "varied"
	PlanRepetitive PlanMode = "repetitive"
)

const (
	MinPlanDays = 1
	MaxPlanDays = 7
)

type PlanMacros struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fats    string `json:"fats"`
}

type PlanMeal struct {
	Name       string `json:"name"`
	Suggestion string `json:"suggestion"`
}

type DailyPlan struct {
	Day            string     `json:"day"`
	CaloriesTarget int        `json:"calories_target"`
	Macros         PlanMacros `json:"macros"`
	Meals          []PlanMeal `json:"meals"`
	Tip            string     `json:"tip"`
}

type PlanResponse struct {
	Days []DailyPlan `json:"days"`
}

// GeneratedRecipe mirrors the recipe creation payload so a generated recipe
// can be saved as-is.
type GeneratedRecipe struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Instructions string  `json:"instructions"`
	PrepTime     int     `json:"prep_time"`
	Calories     float64 `json:"calories"`
	Ingredients  []struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	} `json:"ingredients"`
}

// PlanService assembles natural-language requests from a profile and parses
// the oracle's answer strictly as JSON. Unlike the calorie resolver, a
// failure here is terminal: the caller gets ErrGeneration, never a silent
// fallback. First failure ends the request; there are no retries.
type PlanService struct {
	oracle Oracle
}

func NewPlanService(oracle Oracle) *PlanService {
	return &PlanService{oracle: oracle}
}

// GeneratePlan builds a days-long meal plan for the profile. days is clamped
// to [MinPlanDays, MaxPlanDays]; mode defaults to varied. The profile must
// already carry computed metrics (upsert guarantees that).
func (s *PlanService) GeneratePlan(ctx context.Context, profile *models.Profile, days int, mode PlanMode) (*PlanResponse, error) {
	if days < MinPlanDays {
		days = MinPlanDays
	}
	if days > MaxPlanDays {
		days = MaxPlanDays
	}
	if mode != PlanRepetitive {
		mode = PlanVaried
	}

	timeout := lookupTimeout
	if days > 1 {
		timeout = planTimeout
	}
	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := s.oracle.Query(qctx, buildPlanPrompt(profile, days, mode))
	if err != nil {
		log.Printf("plan generation failed: %v", err)
		return nil, ErrGeneration
	}

	var plan PlanResponse
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &plan); err != nil {
		log.Printf("plan generation returned invalid JSON: %v", err)
		return nil, ErrGeneration
	}
	if len(plan.Days) == 0 {
		return nil, ErrGeneration
	}
	return &plan, nil
}

// RecipeByIngredients asks the oracle for a single recipe built from the
// given ingredient list, honoring the profile's restrictions when present.
func (s *PlanService) RecipeByIngredients(ctx context.Context, profile *models.Profile, ingredients []string) (*GeneratedRecipe, error) {
	qctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	raw, err := s.oracle.Query(qctx, buildRecipePrompt(profile, ingredients))
	if err != nil {
		log.Printf("recipe generation failed: %v", err)
		return nil, ErrGeneration
	}

	var recipe GeneratedRecipe
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &recipe); err != nil {
		log.Printf("recipe generation returned invalid JSON: %v", err)
		return nil, ErrGeneration
	}
	if recipe.Title == "" || recipe.Instructions == "" {
		return nil, ErrGeneration
	}
	return &recipe, nil
}

func buildPlanPrompt(p *models.Profile, days int, mode PlanMode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Atue como um nutricionista esportivo. Crie um plano alimentar de %d dia(s) para:\n", days)
	fmt.Fprintf(&b, "- Idade: %d anos, Peso: %.1f kg, Altura: %.1f cm, Sexo: %s\n", p.Age, p.Weight, p.Height, p.Gender)
	fmt.Fprintf(&b, "- Nível de atividade: %s, Objetivo: %s, Dieta: %s\n", p.ActivityLevel, p.Goal, p.DietType)
	if p.DailyCalories != nil {
		fmt.Fprintf(&b, "- Meta calórica diária: %d kcal\n", *p.DailyCalories)
	}
	if p.Allergies != "" {
		fmt.Fprintf(&b, "- Alergias (NUNCA incluir): %s\n", p.Allergies)
	}
	if p.FoodLikes != "" {
		fmt.Fprintf(&b, "- Gosta de: %s\n", p.FoodLikes)
	}
	if p.FoodDislikes != "" {
		fmt.Fprintf(&b, "- Não gosta de: %s\n", p.FoodDislikes)
	}
	if mode == PlanRepetitive {
		b.WriteString("- Repita as mesmas refeições todos os dias.\n")
	} else {
		b.WriteString("- Varie as refeições entre os dias.\n")
	}

	b.WriteString(`
Responda APENAS um JSON estrito (sem markdown, sem ` + "```json" + `) com esta estrutura:
{
  "days": [
    {
      "day": "Dia 1",
      "calories_target": 2500,
      "macros": { "protein": "200g", "carbs": "300g", "fats": "80g" },
      "meals": [
        { "name": "Café da Manhã", "suggestion": "Ovos e aveia..." },
        { "name": "Almoço", "suggestion": "Frango e salada..." },
        { "name": "Jantar", "suggestion": "Peixe e legumes..." }
      ],
      "tip": "Dica rápida."
    }
  ]
}`)
	return b.String()
}

func buildRecipePrompt(p *models.Profile, ingredients []string) string {
	var b strings.Builder

	b.WriteString("Atue como um chef de cozinha. Crie UMA receita usando principalmente estes ingredientes: ")
	b.WriteString(strings.Join(ingredients, ", "))
	b.WriteString(".\n")
	if p != nil {
		if p.DietType != "" {
			fmt.Fprintf(&b, "- A receita deve respeitar a dieta: %s\n", p.DietType)
		}
		if p.Allergies != "" {
			fmt.Fprintf(&b, "- Alergias (NUNCA incluir): %s\n", p.Allergies)
		}
	}

	b.WriteString(`
Responda APENAS um JSON estrito (sem markdown, sem ` + "```json" + `) com esta estrutura:
{
  "title": "Nome da receita",
  "description": "Descrição curta",
  "instructions": "Passo a passo completo",
  "prep_time": 30,
  "calories": 450.0,
  "ingredients": [
    { "name": "Frango", "quantity": 200, "unit": "g" }
  ]
}`)
	return b.String()
}
