package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/vfranco00/Nutri-Agent/services"

	"github.com/gin-gonic/gin"
)

func profileTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctl := NewProfileController(services.NewProfileService(newTestDB(t)))

	r := gin.New()
	g := r.Group("/profiles", fakeAuth(1))
	g.GET("/me", ctl.GetMe)
	g.PUT("/me", ctl.UpsertMe)
	return r
}

const validProfileJSON = `{
	"age": 30, "weight": 70, "height": 175,
	"gender": "male", "activity_level": "moderately_active", "goal": "maintain"
}`

func TestUpsertProfile_ReturnsComputedMetrics(t *testing.T) {
	r := profileTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/profiles/me", validProfileJSON)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		BMR           *float64 `json:"bmr"`
		DailyCalories *int     `json:"daily_calories"`
		DietType      string   `json:"diet_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.BMR == nil || *resp.BMR != 1695.36 {
		t.Errorf("bmr = %v, want 1695.36", resp.BMR)
	}
	if resp.DailyCalories == nil || *resp.DailyCalories != 2628 {
		t.Errorf("daily_calories = %v, want 2628", resp.DailyCalories)
	}
	if resp.DietType != "omnivore" {
		t.Errorf("diet_type = %q, want default omnivore", resp.DietType)
	}
}

// Invalid shapes and out-of-range values are rejected at the boundary and
// never reach the calculator.
func TestUpsertProfile_Validation(t *testing.T) {
	r := profileTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"bad gender", `{"age":30,"weight":70,"height":175,"gender":"other","activity_level":"sedentary","goal":"maintain"}`},
		{"bad activity", `{"age":30,"weight":70,"height":175,"gender":"male","activity_level":"athlete","goal":"maintain"}`},
		{"bad goal", `{"age":30,"weight":70,"height":175,"gender":"male","activity_level":"sedentary","goal":"bulk"}`},
		{"age over 120", `{"age":121,"weight":70,"height":175,"gender":"male","activity_level":"sedentary","goal":"maintain"}`},
		{"zero weight", `{"age":30,"weight":0,"height":175,"gender":"male","activity_level":"sedentary","goal":"maintain"}`},
		{"negative height", `{"age":30,"weight":70,"height":-1,"gender":"male","activity_level":"sedentary","goal":"maintain"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPut, "/profiles/me", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	r := profileTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/profiles/me", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
