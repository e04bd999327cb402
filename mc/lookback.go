package mc

import (
	"github.com/banachtech/exotica/payoff"
	"gonum.org/v1/gonum/floats"
)

// LookbackPricer estimates the present value of a fixed-strike lookback
// option by Monte Carlo. Calls pay on the running maximum, puts on the
// running minimum; the initial fixing is part of the extremum search.
type LookbackPricer struct {
	contract Contract
	sim      Simulation
	cfg      settings
}

// NewLookbackPricer validates the contract and simulation parameters and
// fails fast on any defect, including an unknown option kind.
func NewLookbackPricer(c Contract, sim Simulation, opts ...Option) (*LookbackPricer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := sim.Validate(); err != nil {
		return nil, err
	}
	return &LookbackPricer{contract: c, sim: sim, cfg: newSettings(opts...)}, nil
}

// Price draws a fresh set of paths and returns the discounted expected
// payoff on the per-path extremum.
func (p *LookbackPricer) Price() (float64, error) {
	extremum := floats.Max
	if p.contract.Kind == payoff.Put {
		extremum = floats.Min
	}
	return p.cfg.price(p.contract, p.sim, func(path []float64) float64 {
		return extremum(path)
	})
}
