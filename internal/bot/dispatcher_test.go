// ABOUTME: Conversation-level tests driving the dispatcher end to end.
// ABOUTME: Covers onboarding, all logging commands, gating, and the food two-step flow.
package bot

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/hydrocal/hydrocal/internal/food"
	"github.com/hydrocal/hydrocal/internal/store"
	"github.com/hydrocal/hydrocal/internal/tracker"
)

type fakeFood struct {
	product food.Product
	err     error
}

func (f *fakeFood) Lookup(ctx context.Context, name string) (food.Product, error) {
	return f.product, f.err
}

func newDispatcher(fd food.Source) *Dispatcher {
	tr := tracker.New(store.New(), nil, fd, log.New(io.Discard))
	return New(tr, log.New(io.Discard))
}

func onboardUser(t *testing.T, d *Dispatcher, userID int64) {
	t.Helper()
	ctx := context.Background()
	d.Handle(ctx, userID, "/set_profile")
	for _, input := range []string{"70", "170", "30", "30", "Москва"} {
		if reply := d.Handle(ctx, userID, input); reply == "" {
			t.Fatalf("empty reply to onboarding input %q", input)
		}
	}
}

func TestStartAndHelp(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()

	if reply := d.Handle(ctx, 1, "/start"); !strings.Contains(reply, "/set_profile") {
		t.Errorf("/start reply missing command list: %q", reply)
	}
	if reply := d.Handle(ctx, 1, "/help"); !strings.Contains(reply, "/log_water") {
		t.Errorf("/help reply missing usage: %q", reply)
	}
}

func TestCommandWithBotMention(t *testing.T) {
	d := newDispatcher(nil)
	reply := d.Handle(context.Background(), 1, "/start@hydrocal_bot")
	if !strings.Contains(reply, "/set_profile") {
		t.Errorf("mention-suffixed command not recognized: %q", reply)
	}
}

func TestOnboardingConversation(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()

	if reply := d.Handle(ctx, 1, "/set_profile"); !strings.Contains(reply, "вес") {
		t.Fatalf("expected weight prompt, got %q", reply)
	}
	if reply := d.Handle(ctx, 1, "70"); !strings.Contains(reply, "рост") {
		t.Fatalf("expected height prompt, got %q", reply)
	}
	if reply := d.Handle(ctx, 1, "170"); !strings.Contains(reply, "возраст") {
		t.Fatalf("expected age prompt, got %q", reply)
	}

	// invalid age re-prompts without advancing
	if reply := d.Handle(ctx, 1, "тридцать"); !strings.Contains(reply, "возраст") {
		t.Fatalf("expected age retry, got %q", reply)
	}

	if reply := d.Handle(ctx, 1, "30"); !strings.Contains(reply, "активности") {
		t.Fatalf("expected activity prompt, got %q", reply)
	}
	if reply := d.Handle(ctx, 1, "30"); !strings.Contains(reply, "городе") {
		t.Fatalf("expected city prompt, got %q", reply)
	}

	reply := d.Handle(ctx, 1, "Москва")
	if !strings.Contains(reply, "2600 мл") {
		t.Errorf("completion reply missing water goal: %q", reply)
	}
	if !strings.Contains(reply, "2424 ккал") {
		t.Errorf("completion reply missing calorie goal: %q", reply)
	}
}

func TestGatingBeforeOnboarding(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()

	for _, cmd := range []string{"/log_water 250", "/log_food банан", "/log_workout бег 30", "/check_progress"} {
		if reply := d.Handle(ctx, 5, cmd); reply != msgNotOnboarded {
			t.Errorf("%s reply = %q, want not-onboarded message", cmd, reply)
		}
	}
}

func TestLogWater(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()
	onboardUser(t, d, 1)

	d.Handle(ctx, 1, "/log_water 250")
	reply := d.Handle(ctx, 1, "/log_water 250")
	if !strings.Contains(reply, "500 мл из 2600 мл") {
		t.Errorf("water total missing: %q", reply)
	}
	if !strings.Contains(reply, "2100 мл") {
		t.Errorf("water remaining missing: %q", reply)
	}
}

func TestLogWaterInvalid(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()
	onboardUser(t, d, 1)

	tests := []struct{ args, want string }{
		{"/log_water", msgWaterUsage},
		{"/log_water abc", msgWaterInvalid},
		{"/log_water -5", msgWaterInvalid},
		{"/log_water 0", msgWaterInvalid},
	}
	for _, tt := range tests {
		if reply := d.Handle(ctx, 1, tt.args); reply != tt.want {
			t.Errorf("%q reply = %q, want %q", tt.args, reply, tt.want)
		}
	}
}

func TestLogFoodTwoStep(t *testing.T) {
	d := newDispatcher(&fakeFood{err: errors.New("offline")})
	ctx := context.Background()
	onboardUser(t, d, 1)

	if reply := d.Handle(ctx, 1, "/log_food"); reply != msgAskFoodName {
		t.Fatalf("expected name prompt, got %q", reply)
	}
	if reply := d.Handle(ctx, 1, "банан"); !strings.Contains(reply, "грамм") {
		t.Fatalf("expected weight prompt, got %q", reply)
	}

	reply := d.Handle(ctx, 1, "150")
	if !strings.Contains(reply, "Банан") || !strings.Contains(reply, "133.5 ккал") {
		t.Errorf("food log reply = %q", reply)
	}
}

func TestLogFoodWithName(t *testing.T) {
	d := newDispatcher(&fakeFood{err: errors.New("offline")})
	ctx := context.Background()
	onboardUser(t, d, 1)

	reply := d.Handle(ctx, 1, "/log_food гречка")
	if !strings.Contains(reply, "Гречка") || !strings.Contains(reply, "грамм") {
		t.Fatalf("expected capitalized weight prompt, got %q", reply)
	}

	reply = d.Handle(ctx, 1, "100")
	if !strings.Contains(reply, "132 ккал") {
		t.Errorf("food log reply = %q", reply)
	}
}

func TestLogFoodInvalidWeight(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()
	onboardUser(t, d, 1)

	d.Handle(ctx, 1, "/log_food банан")
	if reply := d.Handle(ctx, 1, "много"); reply != msgFoodWeightInvalid {
		t.Fatalf("invalid weight reply = %q", reply)
	}
	// still in the flow: a valid weight now succeeds
	if reply := d.Handle(ctx, 1, "100"); !strings.Contains(reply, "Записано") {
		t.Errorf("valid weight after retry failed: %q", reply)
	}
}

func TestLogWorkout(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()
	onboardUser(t, d, 1)

	reply := d.Handle(ctx, 1, "/log_workout бег 45")
	if !strings.Contains(reply, "450 ккал") {
		t.Errorf("burned calories missing: %q", reply)
	}
	if !strings.Contains(reply, "200 мл") {
		t.Errorf("hydration recommendation missing: %q", reply)
	}

	// multi-word type: last token is the duration
	reply = d.Handle(ctx, 1, "/log_workout тренажерный зал 60")
	if !strings.Contains(reply, "420 ккал") {
		t.Errorf("gym workout reply = %q", reply)
	}
}

func TestLogWorkoutInvalid(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()
	onboardUser(t, d, 1)

	tests := []struct{ args, want string }{
		{"/log_workout", msgWorkoutUsage},
		{"/log_workout бег", msgWorkoutUsage},
		{"/log_workout бег тридцать", msgWorkoutInvalidDuration},
		{"/log_workout бег 0", msgWorkoutInvalidDuration},
	}
	for _, tt := range tests {
		if reply := d.Handle(ctx, 1, tt.args); reply != tt.want {
			t.Errorf("%q reply = %q, want %q", tt.args, reply, tt.want)
		}
	}
}

func TestCheckProgress(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()
	onboardUser(t, d, 1)

	d.Handle(ctx, 1, "/log_water 500")
	d.Handle(ctx, 1, "/log_workout бег 45")

	reply := d.Handle(ctx, 1, "/check_progress")
	// 500 logged - 200 hydration debit
	if !strings.Contains(reply, "Выпито: 300 мл из 2600 мл") {
		t.Errorf("water line wrong: %q", reply)
	}
	if !strings.Contains(reply, "Сожжено: 450 ккал") {
		t.Errorf("burned line wrong: %q", reply)
	}
	if !strings.Contains(reply, "Баланс: -450 ккал") {
		t.Errorf("balance line wrong: %q", reply)
	}
}

func TestSetProfileResetsConversation(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()
	onboardUser(t, d, 1)

	// start a food flow, then abandon it for re-onboarding
	d.Handle(ctx, 1, "/log_food банан")
	if reply := d.Handle(ctx, 1, "/set_profile"); !strings.Contains(reply, "вес") {
		t.Fatalf("expected weight prompt, got %q", reply)
	}
	// the next free text feeds onboarding, not the food flow
	if reply := d.Handle(ctx, 1, "80"); !strings.Contains(reply, "рост") {
		t.Errorf("expected height prompt, got %q", reply)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()
	onboardUser(t, d, 1)

	if reply := d.Handle(ctx, 2, "/check_progress"); reply != msgNotOnboarded {
		t.Errorf("user 2 saw user 1's state: %q", reply)
	}

	d.Handle(ctx, 1, "/log_water 250")
	onboardUser(t, d, 2)
	reply := d.Handle(ctx, 2, "/check_progress")
	if !strings.Contains(reply, "Выпито: 0 мл") {
		t.Errorf("user 2 progress polluted: %q", reply)
	}
}

func TestUnknownInput(t *testing.T) {
	d := newDispatcher(nil)
	ctx := context.Background()

	if reply := d.Handle(ctx, 1, "/frobnicate"); reply != msgUnknown {
		t.Errorf("unknown command reply = %q", reply)
	}
	if reply := d.Handle(ctx, 1, "привет"); reply != msgUnknown {
		t.Errorf("stray free text reply = %q", reply)
	}
	if reply := d.Handle(ctx, 1, "   "); reply != "" {
		t.Errorf("blank input reply = %q, want empty", reply)
	}
}
