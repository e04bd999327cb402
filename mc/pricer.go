package mc

import (
	"math"
	"time"

	"github.com/banachtech/exotica/payoff"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Option configures a pricer at construction.
type Option func(*settings)

type settings struct {
	src     rand.Source
	batches int
}

// WithSource injects the random source used for all draws, making repeated
// runs reproducible. Without it each Price call is seeded from the clock.
func WithSource(src rand.Source) Option {
	return func(s *settings) { s.src = src }
}

// WithBatches splits the simulation paths across n concurrent workers. Each
// batch draws from its own source, so results are independent of scheduling
// but not identical to a single-batch run.
func WithBatches(n int) Option {
	return func(s *settings) { s.batches = n }
}

func newSettings(opts ...Option) settings {
	s := settings{batches: 1}
	for _, opt := range opts {
		opt(&s)
	}
	if s.batches < 1 {
		s.batches = 1
	}
	return s
}

func (s settings) source() rand.Source {
	if s.src != nil {
		return s.src
	}
	return rand.NewSource(uint64(time.Now().UnixNano()))
}

// price runs one fresh simulation per call, reduces each path to its
// monitored statistic, applies the vanilla payoff and discounts the average.
// The path matrix is local to the call and discarded afterwards.
func (s settings) price(c Contract, sim Simulation, statistic func(path []float64) float64) (float64, error) {
	seeder := rand.New(s.source())
	counts := splitPaths(sim.Paths, s.batches)
	payoffs := make([]float64, sim.Paths)

	errCh := make(chan error, len(counts))
	offset := 0
	for _, paths := range counts {
		src := rand.NewSource(seeder.Uint64())
		go func(out []float64, paths int, src rand.Source) {
			ps := NewPathSimulator(src)
			prices, err := ps.Simulate(c, Simulation{Steps: sim.Steps, Paths: paths})
			if err != nil {
				errCh <- err
				return
			}
			col := make([]float64, sim.Steps+1)
			for j := 0; j < paths; j++ {
				mat.Col(col, j, prices)
				p, err := payoff.Vanilla(c.Kind, statistic(col), c.Strike)
				if err != nil {
					errCh <- err
					return
				}
				out[j] = p
			}
			errCh <- nil
		}(payoffs[offset:offset+paths], paths, src)
		offset += paths
	}

	for range counts {
		if err := <-errCh; err != nil {
			return math.NaN(), err
		}
	}

	discount := math.Exp(-c.Rate * c.Maturity)
	return discount * stat.Mean(payoffs, nil), nil
}

// splitPaths distributes m paths over at most batches workers, keeping every
// batch non-empty.
func splitPaths(m, batches int) []int {
	if batches > m {
		batches = m
	}
	counts := make([]int, batches)
	base, rem := m/batches, m%batches
	for i := range counts {
		counts[i] = base
		if i < rem {
			counts[i]++
		}
	}
	return counts
}
