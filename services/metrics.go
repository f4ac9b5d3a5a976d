package services

import "math"

// Closed enums for the biometric inputs. Values are validated at the HTTP
// boundary (binding:"oneof=..."); inside the services they are switched
// exhaustively.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "lightly_active"
	ActivityModerate  ActivityLevel = "moderately_active"
	ActivityVery      ActivityLevel = "very_active"
	ActivitySuper     ActivityLevel = "super_active"
)

type Goal string

const (
	GoalLoseWeight Goal = "lose_weight"
	GoalMaintain   Goal = "maintain"
	GoalGainMuscle Goal = "gain_muscle"
)

// activityMultiplier maps an activity level to its TDEE multiplier. An
// unrecognised level falls back to the sedentary multiplier rather than
// erroring; that permissive default is intentional and covered by tests.
func activityMultiplier(level ActivityLevel) float64 {
	switch level {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityVery:
		return 1.725
	case ActivitySuper:
		return 1.9
	default:
		return 1.2
	}
}

// ComputeMetrics computes BMR (Harris-Benedict revised) and the daily
// calorie target from a user's biometrics, activity level and goal.
// Pure and deterministic: no database, no external calls.
//
// The goal adjusts TDEE by a fixed offset (-500 kcal to lose weight,
// +300 to gain muscle, unchanged to maintain). The target is rounded with
// math.Round, i.e. half away from zero.
func ComputeMetrics(age int, weightKg, heightCm float64, gender Gender, activity ActivityLevel, goal Goal) (bmr float64, dailyCalories int) {
	if gender == GenderMale {
		bmr = 88.36 + 13.4*weightKg + 4.8*heightCm - 5.7*float64(age)
	} else {
		bmr = 447.6 + 9.2*weightKg + 3.1*heightCm - 4.3*float64(age)
	}

	tdee := bmr * activityMultiplier(activity)

	adjusted := tdee
	switch goal {
	case GoalLoseWeight:
		adjusted = tdee - 500
	case GoalGainMuscle:
		adjusted = tdee + 300
	case GoalMaintain:
		// unchanged
	}

	return bmr, int(math.Round(adjusted))
}
