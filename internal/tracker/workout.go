// ABOUTME: Workout keyword tables: kcal per minute and hydration need per 30 minutes.
// ABOUTME: Ordered slices, not maps — first-match substring search depends on entry order.
package tracker

import "strings"

// workoutCategory pairs a lowercase keyword with its two coefficients.
// The keyword is matched as a substring of the user's workout type.
type workoutCategory struct {
	keyword         string
	kcalPerMinute   int
	waterPer30MinML int
}

// workoutCategories preserves the product's original nine categories,
// coefficients, and order. Order matters: "бег" is checked before
// "беговые лыжи" and therefore shadows it, exactly as the original
// first-match behavior.
var workoutCategories = []workoutCategory{
	{"бег", 10, 200},
	{"беговые лыжи", 12, 250},
	{"велосипед", 8, 150},
	{"плавание", 10, 100},
	{"йога", 4, 100},
	{"тренажерный зал", 7, 200},
	{"ходьба", 5, 100},
	{"футбол", 8, 200},
	{"баскетбол", 9, 200},
}

const (
	defaultKcalPerMinute   = 7
	defaultWaterPer30MinML = 200
)

// workoutRates returns the calorie and hydration coefficients for a
// free-text workout type, falling back to the defaults when no keyword
// matches.
func workoutRates(kind string) (kcalPerMinute, waterPer30MinML int) {
	needle := strings.ToLower(kind)
	for _, c := range workoutCategories {
		if strings.Contains(needle, c.keyword) {
			return c.kcalPerMinute, c.waterPer30MinML
		}
	}
	return defaultKcalPerMinute, defaultWaterPer30MinML
}
