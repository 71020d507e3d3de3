// ABOUTME: Error taxonomy for logging commands.
// ABOUTME: Validation and not-onboarded failures never mutate state; lookups never error out.
package tracker

import (
	"errors"
	"fmt"
)

// ErrNotOnboarded is returned for any logging or status operation on a
// user who has not completed onboarding.
var ErrNotOnboarded = errors.New("tracker: profile not configured")

// ValidationError marks malformed or out-of-range user input. The
// dispatcher answers with a corrective message and changes nothing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tracker: invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
