package payoff

import (
	"errors"
	"fmt"
	"math"
)

// OptionKind identifies the exercise style of a vanilla payoff.
type OptionKind string

const (
	Call OptionKind = "C"
	Put  OptionKind = "P"
)

var ErrUnknownKind = errors.New("unknown option kind")

// Valid checks the kind against the supported set. Anything outside
// {Call, Put} is a configuration defect and is never coerced to a default.
func (k OptionKind) Valid() error {
	switch k {
	case Call, Put:
		return nil
	}
	return fmt.Errorf("%w: %q (use %q for call, %q for put)", ErrUnknownKind, string(k), Call, Put)
}

// Vanilla returns the exercised value of a call or put with the given strike
// on the underlying statistic x. The payoff is floored at zero.
func Vanilla(kind OptionKind, x, strike float64) (float64, error) {
	switch kind {
	case Call:
		return math.Max(x-strike, 0.0), nil
	case Put:
		return math.Max(strike-x, 0.0), nil
	}
	return 0, kind.Valid()
}
