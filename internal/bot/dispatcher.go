// ABOUTME: Transport-agnostic command dispatcher with per-user conversation state.
// ABOUTME: Routes slash commands and mid-conversation free text; returns one reply per message.
package bot

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/hydrocal/hydrocal/internal/onboarding"
	"github.com/hydrocal/hydrocal/internal/tracker"
)

// session is a user's transient conversation state, kept alongside
// their record. Either an onboarding flow or a food-logging exchange
// can be pending, never both.
type session struct {
	flow             *onboarding.Flow
	awaitingFoodName bool
	pendingFood      string
}

// Dispatcher turns inbound text messages into replies. It is the only
// writer of conversation state; any transport (Telegram, console, ...)
// just shuttles strings through Handle.
type Dispatcher struct {
	tracker *tracker.Tracker
	log     *log.Logger

	// One command is fully processed before the next, matching the
	// product's single-threaded handling model.
	mu       sync.Mutex
	sessions map[int64]*session
}

// New creates a dispatcher over the given tracker.
func New(tr *tracker.Tracker, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		tracker:  tr,
		log:      logger,
		sessions: make(map[int64]*session),
	}
}

var foodWeightRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Handle processes one inbound message and returns the reply text.
// An empty reply means the transport should stay silent.
func (d *Dispatcher) Handle(ctx context.Context, userID int64, text string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if strings.HasPrefix(text, "/") {
		return d.handleCommand(ctx, userID, text)
	}
	return d.handleFreeText(ctx, userID, text)
}

func (d *Dispatcher) handleCommand(ctx context.Context, userID int64, text string) string {
	cmd, args, _ := strings.Cut(text, " ")
	// strip an @botname suffix, as in "/start@hydrocal_bot"
	cmd, _, _ = strings.Cut(cmd, "@")
	args = strings.TrimSpace(args)

	switch cmd {
	case "/start":
		return welcomeText
	case "/help":
		return helpText
	case "/set_profile":
		return d.startOnboarding(userID)
	case "/log_water":
		return d.logWater(userID, args)
	case "/log_food":
		return d.startFoodLog(userID, args)
	case "/log_workout":
		return d.logWorkout(userID, args)
	case "/check_progress":
		return d.checkProgress(userID)
	default:
		d.log.Debug("unknown command", "user", userID, "command", cmd)
		return msgUnknown
	}
}

func (d *Dispatcher) startOnboarding(userID int64) string {
	flow, prompt := onboarding.Start()
	// any pending conversation is discarded
	d.sessions[userID] = &session{flow: &flow}
	d.log.Info("onboarding started", "user", userID)
	return prompt
}

func (d *Dispatcher) logWater(userID int64, args string) string {
	if !d.tracker.Onboarded(userID) {
		return msgNotOnboarded
	}
	if args == "" {
		return msgWaterUsage
	}

	amount, err := strconv.Atoi(args)
	if err != nil {
		return msgWaterInvalid
	}

	e, err := d.tracker.LogWater(userID, amount)
	if tracker.IsValidation(err) {
		return msgWaterInvalid
	}
	if err != nil {
		return msgNotOnboarded
	}
	return formatWater(e)
}

func (d *Dispatcher) startFoodLog(userID int64, args string) string {
	if !d.tracker.Onboarded(userID) {
		return msgNotOnboarded
	}

	s := d.session(userID)
	s.flow = nil

	if args != "" {
		s.awaitingFoodName = false
		s.pendingFood = args
		return capitalize(args) + " - сколько грамм вы съели?"
	}
	s.awaitingFoodName = true
	s.pendingFood = ""
	return msgAskFoodName
}

func (d *Dispatcher) logWorkout(userID int64, args string) string {
	if !d.tracker.Onboarded(userID) {
		return msgNotOnboarded
	}
	if args == "" {
		return msgWorkoutUsage
	}

	fields := strings.Fields(args)
	if len(fields) < 2 {
		return msgWorkoutUsage
	}

	kind := strings.Join(fields[:len(fields)-1], " ")
	minutes, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return msgWorkoutInvalidDuration
	}

	e, err := d.tracker.LogWorkout(userID, kind, minutes)
	if tracker.IsValidation(err) {
		return msgWorkoutInvalidDuration
	}
	if err != nil {
		return msgNotOnboarded
	}
	return formatWorkout(e)
}

func (d *Dispatcher) checkProgress(userID int64) string {
	p, err := d.tracker.Progress(userID)
	if errors.Is(err, tracker.ErrNotOnboarded) {
		return msgNotOnboarded
	}
	return formatProgress(p)
}

func (d *Dispatcher) handleFreeText(ctx context.Context, userID int64, text string) string {
	s := d.session(userID)

	switch {
	case s.flow != nil:
		return d.advanceOnboarding(ctx, userID, s, text)

	case s.awaitingFoodName:
		s.awaitingFoodName = false
		s.pendingFood = text
		return text + " - сколько грамм вы съели?"

	case s.pendingFood != "":
		return d.finishFoodLog(ctx, userID, s, text)

	default:
		return msgUnknown
	}
}

func (d *Dispatcher) advanceOnboarding(ctx context.Context, userID int64, s *session, text string) string {
	next, reply, done := s.flow.Advance(text)
	*s.flow = next
	if !done {
		return reply
	}

	rec := d.tracker.CompleteOnboarding(ctx, userID, next.Draft)
	delete(d.sessions, userID)
	return formatProfileConfigured(rec)
}

func (d *Dispatcher) finishFoodLog(ctx context.Context, userID int64, s *session, text string) string {
	if !foodWeightRe.MatchString(text) {
		return msgFoodWeightInvalid
	}
	weight, err := strconv.ParseFloat(text, 64)
	if err != nil || weight <= 0 {
		return msgFoodWeightInvalid
	}

	name := s.pendingFood
	e, err := d.tracker.LogFood(ctx, userID, name, weight)
	if err != nil {
		// record vanished mid-conversation (re-onboarding elsewhere)
		delete(d.sessions, userID)
		return msgNotOnboarded
	}

	delete(d.sessions, userID)
	return formatFood(e)
}

func (d *Dispatcher) session(userID int64) *session {
	s, ok := d.sessions[userID]
	if !ok {
		s = &session{}
		d.sessions[userID] = s
	}
	return s
}
