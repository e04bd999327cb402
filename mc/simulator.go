package mc

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PathSimulator generates risk-neutral geometric Brownian motion price paths.
// It is stateless apart from the normal variate source it draws from, so one
// simulator may be reused across calls; the source must not be shared across
// goroutines without synchronisation.
type PathSimulator struct {
	norm distuv.Normal
}

// NewPathSimulator returns a simulator drawing from src. A nil src falls back
// to a time-seeded source; pass an explicit source for reproducible runs.
func NewPathSimulator(src rand.Source) *PathSimulator {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &PathSimulator{norm: distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: src}}
}

// Simulate returns a (Steps+1) x Paths matrix of simulated prices. Row 0 is
// the spot for every column; row i+1 follows the exact lognormal transition
// S[i+1] = S[i] * exp((r - sigma^2/2)dt + sigma*sqrt(dt)*z), one standard
// normal draw per column per step, so there is no discretisation bias beyond
// the GBM solution itself.
func (ps *PathSimulator) Simulate(c Contract, sim Simulation) (*mat.Dense, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := sim.Validate(); err != nil {
		return nil, err
	}
	n, m := sim.Steps, sim.Paths
	dt := c.Maturity / float64(n)
	drift := (c.Rate - 0.5*c.Vol*c.Vol) * dt
	diffuse := c.Vol * math.Sqrt(dt)

	s := mat.NewDense(n+1, m, nil)
	for j := 0; j < m; j++ {
		s.Set(0, j, c.S0)
	}
	for i := 0; i < n; i++ {
		prev := s.RawRowView(i)
		next := s.RawRowView(i + 1)
		for j := 0; j < m; j++ {
			next[j] = prev[j] * math.Exp(drift+diffuse*ps.norm.Rand())
		}
	}
	if !wellFormed(s.RawMatrix().Data) {
		return nil, fmt.Errorf("%w: vol=%v steps=%d maturity=%v", ErrNumericalDegenerate, c.Vol, n, c.Maturity)
	}
	return s, nil
}

// wellFormed rejects overflow and underflow in the exponential step. The
// exact lognormal transition never reaches zero, so a non-positive entry is
// as degenerate as a NaN or an infinity.
func wellFormed(xs []float64) bool {
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}
