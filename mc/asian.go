package mc

import "gonum.org/v1/gonum/stat"

// AsianPricer estimates the present value of an arithmetic-average Asian
// option by Monte Carlo. The averaging window covers the monitored steps
// only; the initial fixing is excluded.
type AsianPricer struct {
	contract Contract
	sim      Simulation
	cfg      settings
}

// NewAsianPricer validates the contract and simulation parameters and fails
// fast on any defect, including an unknown option kind.
func NewAsianPricer(c Contract, sim Simulation, opts ...Option) (*AsianPricer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := sim.Validate(); err != nil {
		return nil, err
	}
	return &AsianPricer{contract: c, sim: sim, cfg: newSettings(opts...)}, nil
}

// Price draws a fresh set of paths and returns the discounted expected
// payoff on the per-path arithmetic mean. Repeated calls yield independent
// estimates of the same quantity.
func (p *AsianPricer) Price() (float64, error) {
	return p.cfg.price(p.contract, p.sim, func(path []float64) float64 {
		return stat.Mean(path[1:], nil)
	})
}
