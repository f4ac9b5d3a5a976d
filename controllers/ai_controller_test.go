package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/vfranco00/Nutri-Agent/models"
	"github.com/vfranco00/Nutri-Agent/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func aiTestRouter(t *testing.T, db *gorm.DB, oracle services.Oracle) *gin.Engine {
	t.Helper()

	calorieSvc := services.NewCalorieService(db, oracle)
	planSvc := services.NewPlanService(oracle)
	profileSvc := services.NewProfileService(db)
	ctl := NewAIController(planSvc, calorieSvc, profileSvc)

	r := gin.New()
	ai := r.Group("/ai", fakeAuth(1))
	ai.POST("/generate-plan", ctl.GeneratePlan)
	ai.POST("/calculate-calories", ctl.CalculateCalories)
	return r
}

func TestCalculateCalories_Endpoint(t *testing.T) {
	db := newTestDB(t)
	db.Create(&models.FoodCache{Name: "aveia", CaloriesPerUnit: 3.89, UnitType: "g"})
	r := aiTestRouter(t, db, &stubOracle{answer: "999"})

	w := doJSON(t, r, http.MethodPost, "/ai/calculate-calories",
		`{"name": "Aveia", "quantity": 33, "unit": "g"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		TotalCalories float64 `json:"total_calories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	// 3.89 * 33 = 128.37 → one decimal
	if resp.TotalCalories != 128.4 {
		t.Errorf("total_calories = %v, want 128.4", resp.TotalCalories)
	}
}

func TestCalculateCalories_ValidatesBody(t *testing.T) {
	r := aiTestRouter(t, newTestDB(t), &stubOracle{answer: "2.5"})

	cases := []string{
		`{}`,
		`{"name": "aveia", "unit": "g"}`,
		`{"name": "aveia", "quantity": -5, "unit": "g"}`,
		`{"name": "aveia", "quantity": 10}`,
	}
	for _, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/ai/calculate-calories", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestGeneratePlan_RequiresProfile(t *testing.T) {
	r := aiTestRouter(t, newTestDB(t), &stubOracle{answer: "{}"})

	w := doJSON(t, r, http.MethodPost, "/ai/generate-plan", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without a profile", w.Code)
	}
}

func TestGeneratePlan_BadOracleOutputIs502(t *testing.T) {
	db := newTestDB(t)
	profileSvc := services.NewProfileService(db)
	if _, err := profileSvc.Upsert(1, services.ProfileInput{
		Age: 30, Weight: 70, Height: 175,
		Gender: services.GenderMale, ActivityLevel: services.ActivityModerate, Goal: services.GoalMaintain,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := aiTestRouter(t, db, &stubOracle{answer: "não consigo gerar"})

	w := doJSON(t, r, http.MethodPost, "/ai/generate-plan", `{"days": 1}`)
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 on invalid oracle output", w.Code)
	}
}
