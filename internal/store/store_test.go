// ABOUTME: Tests for the in-memory record store.
// ABOUTME: Covers lookup, replacement semantics, guarded updates, and ordering.
package store

import (
	"testing"

	"github.com/hydrocal/hydrocal/internal/models"
)

func TestGetUnknownUser(t *testing.T) {
	s := New()
	if s.Exists(1) {
		t.Error("Exists(1) = true for empty store")
	}
	if _, ok := s.Get(1); ok {
		t.Error("Get(1) ok for empty store")
	}
}

func TestUpsertAndGet(t *testing.T) {
	s := New()
	s.Upsert(models.NewRecord(7, models.Profile{WeightKG: 80, City: "Казань"}, 2400, 2200))

	r, ok := s.Get(7)
	if !ok {
		t.Fatal("Get(7) not found after Upsert")
	}
	if r.Profile.City != "Казань" || r.WaterGoalML != 2400 {
		t.Errorf("unexpected record: %+v", r)
	}
}

func TestUpsertReplaces(t *testing.T) {
	s := New()
	first := models.NewRecord(7, models.Profile{WeightKG: 80}, 2400, 2200)
	first.Ledger.WaterML = 500
	s.Upsert(first)

	s.Upsert(models.NewRecord(7, models.Profile{WeightKG: 75}, 2250, 2100))

	r, _ := s.Get(7)
	if r.Ledger.WaterML != 0 {
		t.Errorf("Ledger.WaterML = %d after replacement, want 0", r.Ledger.WaterML)
	}
	if r.Profile.WeightKG != 75 {
		t.Errorf("Profile.WeightKG = %v, want 75", r.Profile.WeightKG)
	}
}

func TestUpdate(t *testing.T) {
	s := New()
	s.Upsert(models.NewRecord(3, models.Profile{}, 2000, 2000))

	if !s.Update(3, func(r *models.Record) { r.Ledger.WaterML += 250 }) {
		t.Fatal("Update(3) returned false")
	}
	r, _ := s.Get(3)
	if r.Ledger.WaterML != 250 {
		t.Errorf("WaterML = %d, want 250", r.Ledger.WaterML)
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	s := New()
	called := false
	if s.Update(99, func(r *models.Record) { called = true }) {
		t.Error("Update(99) = true for unknown user")
	}
	if called {
		t.Error("fn called for unknown user")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := New()
	s.Upsert(models.NewRecord(5, models.Profile{}, 2000, 2000))

	r, _ := s.Get(5)
	r.Ledger.WaterML = 9999

	again, _ := s.Get(5)
	if again.Ledger.WaterML != 0 {
		t.Errorf("mutating a Get copy leaked into the store: %d", again.Ledger.WaterML)
	}
}

func TestAllOrdered(t *testing.T) {
	s := New()
	for _, id := range []int64{30, 10, 20} {
		s.Upsert(models.NewRecord(id, models.Profile{}, 2000, 2000))
	}

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("len(All()) = %d, want 3", len(all))
	}
	for i, want := range []int64{10, 20, 30} {
		if all[i].UserID != want {
			t.Errorf("All()[%d].UserID = %d, want %d", i, all[i].UserID, want)
		}
	}
}

func TestDelete(t *testing.T) {
	s := New()
	s.Upsert(models.NewRecord(1, models.Profile{}, 2000, 2000))
	s.Delete(1)
	if s.Exists(1) {
		t.Error("record still exists after Delete")
	}
}
