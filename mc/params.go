package mc

import (
	"errors"
	"fmt"

	"github.com/banachtech/exotica/payoff"
)

var (
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrNumericalDegenerate = errors.New("simulation produced non-finite prices")
)

// Contract holds the terms of a single-asset option. Values are fixed at
// construction and never mutated by the pricers.
type Contract struct {
	S0       float64
	Strike   float64
	Rate     float64
	Vol      float64
	Maturity float64
	Kind     payoff.OptionKind
}

func (c Contract) Validate() error {
	if c.S0 <= 0 {
		return fmt.Errorf("%w: spot must be positive, got %v", ErrInvalidParameter, c.S0)
	}
	if c.Strike <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidParameter, c.Strike)
	}
	if c.Vol < 0 {
		return fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidParameter, c.Vol)
	}
	if c.Maturity <= 0 {
		return fmt.Errorf("%w: maturity must be positive, got %v", ErrInvalidParameter, c.Maturity)
	}
	return c.Kind.Valid()
}

// Simulation sets the discretisation of one Monte Carlo run: the number of
// time steps per path and the number of independent paths.
type Simulation struct {
	Steps int
	Paths int
}

func (s Simulation) Validate() error {
	if s.Steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidParameter, s.Steps)
	}
	if s.Paths < 1 {
		return fmt.Errorf("%w: paths must be at least 1, got %d", ErrInvalidParameter, s.Paths)
	}
	return nil
}
