// ABOUTME: Ledger updater: applies water, food, and workout events to user records.
// ABOUTME: Owns onboarding completion (goal derivation) and the progress read path.
package tracker

import (
	"context"
	"math"

	"github.com/charmbracelet/log"

	"github.com/hydrocal/hydrocal/internal/food"
	"github.com/hydrocal/hydrocal/internal/goals"
	"github.com/hydrocal/hydrocal/internal/models"
	"github.com/hydrocal/hydrocal/internal/store"
	"github.com/hydrocal/hydrocal/internal/weather"
)

// Tracker applies logged events to user records. Both external sources
// are optional; a nil source means "always use the documented default".
type Tracker struct {
	store   *store.Store
	weather weather.Source
	food    food.Source
	log     *log.Logger
}

// New creates a tracker around the given store and lookup sources.
func New(st *store.Store, w weather.Source, f food.Source, logger *log.Logger) *Tracker {
	return &Tracker{store: st, weather: w, food: f, log: logger}
}

// WaterEntry reports the outcome of a water log.
type WaterEntry struct {
	AmountML    int
	TotalML     int
	GoalML      int
	RemainingML int
}

// FoodEntry reports the outcome of a food log.
type FoodEntry struct {
	Name      string
	WeightG   float64
	Kcal      float64
	TotalKcal float64
}

// WorkoutEntry reports the outcome of a workout log. WaterNeedML is the
// extra intake recommended to the user; it has already been debited
// from the water ledger when positive.
type WorkoutEntry struct {
	Kind        string
	Minutes     int
	BurnedKcal  int
	WaterNeedML int
}

// Onboarded reports whether the user has a completed record.
func (t *Tracker) Onboarded(userID int64) bool {
	return t.store.Exists(userID)
}

// CompleteOnboarding derives the user's daily goals from the finished
// profile and installs a fresh record, replacing any existing one.
// A failed temperature lookup falls back to 20°C and never errors.
func (t *Tracker) CompleteOnboarding(ctx context.Context, userID int64, p models.Profile) *models.Record {
	tempC := goals.DefaultTempC
	if t.weather != nil {
		c, err := t.weather.CurrentTempC(ctx, p.City)
		if err != nil {
			t.log.Warn("temperature lookup failed, using default",
				"city", p.City, "default_c", goals.DefaultTempC, "err", err)
		} else {
			tempC = c
		}
	}

	rec := models.NewRecord(userID, p, goals.WaterGoalML(p, tempC), goals.CalorieGoalKcal(p))
	t.store.Upsert(rec)
	t.log.Info("profile configured",
		"user", userID,
		"water_goal_ml", rec.WaterGoalML,
		"calorie_goal_kcal", rec.CalorieGoalKcal)
	return rec
}

// LogWater adds a positive amount of water to the ledger.
func (t *Tracker) LogWater(userID int64, amountML int) (WaterEntry, error) {
	if !t.store.Exists(userID) {
		return WaterEntry{}, ErrNotOnboarded
	}
	if amountML <= 0 {
		return WaterEntry{}, &ValidationError{Field: "amount", Reason: "must be a positive number of milliliters"}
	}

	var e WaterEntry
	t.store.Update(userID, func(r *models.Record) {
		r.Ledger.WaterML += amountML
		e = WaterEntry{
			AmountML:    amountML,
			TotalML:     r.Ledger.WaterML,
			GoalML:      r.WaterGoalML,
			RemainingML: max(0, r.WaterGoalML-r.Ledger.WaterML),
		}
	})
	return e, nil
}

// LogFood resolves the food name, computes calories for the eaten
// weight, and adds them to the ledger. Name resolution never fails;
// unknown foods get the documented 100 kcal/100g default.
func (t *Tracker) LogFood(ctx context.Context, userID int64, name string, weightG float64) (FoodEntry, error) {
	if !t.store.Exists(userID) {
		return FoodEntry{}, ErrNotOnboarded
	}
	if weightG <= 0 {
		return FoodEntry{}, &ValidationError{Field: "weight", Reason: "must be a positive number of grams"}
	}

	p := food.Resolve(ctx, t.food, name)
	kcal := math.Round(float64(p.KcalPer100g)*weightG/100*10) / 10

	var e FoodEntry
	t.store.Update(userID, func(r *models.Record) {
		r.Ledger.FoodKcal += kcal
		e = FoodEntry{Name: p.Name, WeightG: weightG, Kcal: kcal, TotalKcal: r.Ledger.FoodKcal}
	})
	return e, nil
}

// LogWorkout adds burned calories and debits the hydration need from
// the water ledger. The debit may push the water counter negative;
// only displayed remaining values are clamped.
func (t *Tracker) LogWorkout(userID int64, kind string, minutes int) (WorkoutEntry, error) {
	if !t.store.Exists(userID) {
		return WorkoutEntry{}, ErrNotOnboarded
	}
	if minutes <= 0 {
		return WorkoutEntry{}, &ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	}

	kcalPerMin, waterPer30 := workoutRates(kind)
	burned := kcalPerMin * minutes
	need := minutes / 30 * waterPer30

	t.store.Update(userID, func(r *models.Record) {
		r.Ledger.BurnedKcal += burned
		if need > 0 {
			r.Ledger.WaterML -= need
		}
	})
	return WorkoutEntry{Kind: kind, Minutes: minutes, BurnedKcal: burned, WaterNeedML: need}, nil
}

// Progress returns the user's current standing. Pure read.
func (t *Tracker) Progress(userID int64) (models.Progress, error) {
	rec, ok := t.store.Get(userID)
	if !ok {
		return models.Progress{}, ErrNotOnboarded
	}
	return rec.Progress(), nil
}

// UserProgress pairs a user ID with their progress snapshot.
type UserProgress struct {
	UserID   int64           `json:"user_id"`
	Progress models.Progress `json:"progress"`
}

// AllProgress returns progress for every onboarded user, ordered by ID.
func (t *Tracker) AllProgress() []UserProgress {
	records := t.store.All()
	out := make([]UserProgress, 0, len(records))
	for _, r := range records {
		out = append(out, UserProgress{UserID: r.UserID, Progress: r.Progress()})
	}
	return out
}
