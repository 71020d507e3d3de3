// ABOUTME: Pure daily-goal calculators for water and calories.
// ABOUTME: Temperature is an input here; fetching it is the caller's concern.
package goals

import "github.com/hydrocal/hydrocal/internal/models"

// DefaultTempC is assumed when no temperature reading is available.
// 20°C sits below the hot-weather threshold, so it contributes no bonus.
const DefaultTempC = 20.0

// hotWeatherThresholdC is the temperature above which the water goal
// gets a hot-weather bonus.
const hotWeatherThresholdC = 25.0

// WaterGoalML returns the daily water target in milliliters:
// 30 mL per kg of body weight, 500 mL per full 30 minutes of daily
// activity, and a 750 mL bonus when the local temperature exceeds 25°C.
func WaterGoalML(p models.Profile, tempC float64) int {
	base := int(p.WeightKG * 30)
	activityBonus := p.ActivityMinutes / 30 * 500
	weatherBonus := 0
	if tempC > hotWeatherThresholdC {
		weatherBonus = 750
	}
	return base + activityBonus + weatherBonus
}

// BMR returns the Mifflin-St Jeor basal metabolic rate. The +5 offset
// is the male variant; the questionnaire collects no sex field, which is
// a known limitation inherited from the product's original formula.
func BMR(p models.Profile) float64 {
	return 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.AgeYears) + 5
}

// CalorieGoalKcal returns the daily calorie target: BMR scaled by an
// activity-band multiplier, plus 200 kcal per full 30 minutes of daily
// activity.
func CalorieGoalKcal(p models.Profile) int {
	return int(BMR(p)*activityMultiplier(p.ActivityMinutes)) + p.ActivityMinutes/30*200
}

func activityMultiplier(minutes int) float64 {
	switch {
	case minutes < 30:
		return 1.2 // sedentary
	case minutes < 60:
		return 1.375 // lightly active
	case minutes < 90:
		return 1.55 // moderately active
	case minutes < 120:
		return 1.725 // very active
	default:
		return 1.9 // extra active
	}
}
