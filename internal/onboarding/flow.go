// ABOUTME: Linear five-question onboarding state machine for profile setup.
// ABOUTME: Transitions are pure; invalid input re-prompts without advancing or writing.
package onboarding

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hydrocal/hydrocal/internal/models"
)

// Step identifies which profile field the flow is waiting for.
type Step int

const (
	StepWeight Step = iota
	StepHeight
	StepAge
	StepActivity
	StepCity
	StepDone
)

// Flow is an in-progress onboarding conversation: the current step and
// the partially filled profile draft. The zero value is not usable;
// start with Start.
type Flow struct {
	Step  Step
	Draft models.Profile
}

var (
	decimalRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
	integerRe = regexp.MustCompile(`^\d+$`)
)

const (
	promptWeight   = "Введите ваш вес (в кг):"
	promptHeight   = "Введите ваш рост (в см):"
	promptAge      = "Введите ваш возраст:"
	promptActivity = "Сколько минут активности у вас в день?"
	promptCity     = "В каком городе вы находитесь?"

	retryWeight   = "Пожалуйста, введите корректное число для веса:"
	retryHeight   = "Пожалуйста, введите корректное число для роста:"
	retryAge      = "Пожалуйста, введите корректное целое число для возраста:"
	retryActivity = "Пожалуйста, введите корректное целое число для активности:"
)

// Start returns a fresh flow and the first prompt. Starting over
// discards any prior draft for the user.
func Start() (Flow, string) {
	return Flow{Step: StepWeight}, promptWeight
}

// Advance consumes one user message and returns the next flow state and
// the reply to send. done is true once the city was accepted, at which
// point Draft holds the complete profile and the flow is finished.
//
// On invalid input the returned flow equals the input flow: same step,
// no partial write, and the reply is a field-specific retry prompt.
func (f Flow) Advance(input string) (next Flow, reply string, done bool) {
	input = strings.TrimSpace(input)

	switch f.Step {
	case StepWeight:
		if !decimalRe.MatchString(input) {
			return f, retryWeight, false
		}
		f.Draft.WeightKG, _ = strconv.ParseFloat(input, 64)
		f.Step = StepHeight
		return f, promptHeight, false

	case StepHeight:
		if !decimalRe.MatchString(input) {
			return f, retryHeight, false
		}
		f.Draft.HeightCM, _ = strconv.ParseFloat(input, 64)
		f.Step = StepAge
		return f, promptAge, false

	case StepAge:
		if !integerRe.MatchString(input) {
			return f, retryAge, false
		}
		f.Draft.AgeYears, _ = strconv.Atoi(input)
		f.Step = StepActivity
		return f, promptActivity, false

	case StepActivity:
		if !integerRe.MatchString(input) {
			return f, retryActivity, false
		}
		f.Draft.ActivityMinutes, _ = strconv.Atoi(input)
		f.Step = StepCity
		return f, promptCity, false

	case StepCity:
		if input == "" {
			return f, promptCity, false
		}
		f.Draft.City = input
		f.Step = StepDone
		return f, "", true
	}

	return f, "", false
}
