// ABOUTME: User record model: onboarded profile, derived daily goals, running ledger.
// ABOUTME: Progress math lives here so every reader computes remaining values the same way.
package models

import (
	"math"
	"time"
)

// Profile holds the five attributes collected during onboarding.
// It is immutable after onboarding completes; re-running onboarding
// replaces the whole record.
type Profile struct {
	WeightKG        float64
	HeightCM        float64
	AgeYears        int
	ActivityMinutes int
	City            string
}

// Ledger holds the running daily counters.
//
// WaterML may go negative: workout hydration needs are debited from it
// and only the displayed remaining value is clamped at zero.
type Ledger struct {
	WaterML    int
	FoodKcal   float64
	BurnedKcal int
}

// Record is the per-user state: profile, goals derived once at
// onboarding completion, and the mutable ledger. Records live only in
// memory and are keyed by the chat user ID.
type Record struct {
	UserID          int64
	Profile         Profile
	WaterGoalML     int
	CalorieGoalKcal int
	Ledger          Ledger
	CreatedAt       time.Time
}

// NewRecord creates a completed record with zeroed ledger counters.
func NewRecord(userID int64, p Profile, waterGoalML, calorieGoalKcal int) *Record {
	return &Record{
		UserID:          userID,
		Profile:         p,
		WaterGoalML:     waterGoalML,
		CalorieGoalKcal: calorieGoalKcal,
		CreatedAt:       time.Now(),
	}
}

// Progress is a snapshot of today's standing against the goals.
// Remaining values are clamped at zero; the calorie balance is not.
type Progress struct {
	WaterML               int
	WaterGoalML           int
	WaterRemainingML      int
	FoodKcal              float64
	BurnedKcal            int
	CalorieGoalKcal       int
	CalorieBalanceKcal    float64
	CaloriesRemainingKcal float64
}

// Progress computes the current snapshot. Never stored; always derived.
func (r *Record) Progress() Progress {
	balance := r.Ledger.FoodKcal - float64(r.Ledger.BurnedKcal)
	return Progress{
		WaterML:               r.Ledger.WaterML,
		WaterGoalML:           r.WaterGoalML,
		WaterRemainingML:      max(0, r.WaterGoalML-r.Ledger.WaterML),
		FoodKcal:              r.Ledger.FoodKcal,
		BurnedKcal:            r.Ledger.BurnedKcal,
		CalorieGoalKcal:       r.CalorieGoalKcal,
		CalorieBalanceKcal:    balance,
		CaloriesRemainingKcal: math.Max(0, float64(r.CalorieGoalKcal)-balance),
	}
}
