package mc

import (
	"testing"

	"github.com/banachtech/exotica/payoff"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestSimulateShape(t *testing.T) {
	c := Contract{S0: 100, Strike: 100, Rate: 0.03, Vol: 0.2, Maturity: 1, Kind: payoff.Call}
	sim := Simulation{Steps: 12, Paths: 37}

	ps := NewPathSimulator(rand.NewSource(42))
	prices, err := ps.Simulate(c, sim)
	require.NoError(t, err)

	rows, cols := prices.Dims()
	require.Equal(t, sim.Steps+1, rows)
	require.Equal(t, sim.Paths, cols)

	for j := 0; j < cols; j++ {
		require.Equal(t, c.S0, prices.At(0, j))
	}
}

func TestSimulateStrictlyPositive(t *testing.T) {
	c := Contract{S0: 50, Strike: 50, Rate: -0.01, Vol: 0.6, Maturity: 2, Kind: payoff.Put}
	ps := NewPathSimulator(rand.NewSource(7))
	prices, err := ps.Simulate(c, Simulation{Steps: 100, Paths: 200})
	require.NoError(t, err)

	rows, cols := prices.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.Greater(t, prices.At(i, j), 0.0)
		}
	}
}

func TestSimulateZeroVol(t *testing.T) {
	c := Contract{S0: 100, Strike: 100, Rate: 0.05, Vol: 0, Maturity: 1, Kind: payoff.Call}
	ps := NewPathSimulator(rand.NewSource(1))
	prices, err := ps.Simulate(c, Simulation{Steps: 10, Paths: 5})
	require.NoError(t, err)

	// With no volatility the path grows deterministically at the risk-free rate.
	want := c.S0 * 1.051271096376024 // exp(0.05)
	rows, cols := prices.Dims()
	for j := 0; j < cols; j++ {
		require.InDelta(t, want, prices.At(rows-1, j), 1e-9)
	}
}

func TestSimulateReproducible(t *testing.T) {
	c := Contract{S0: 100, Strike: 90, Rate: 0.02, Vol: 0.25, Maturity: 0.5, Kind: payoff.Call}
	sim := Simulation{Steps: 20, Paths: 30}

	a, err := NewPathSimulator(rand.NewSource(99)).Simulate(c, sim)
	require.NoError(t, err)
	b, err := NewPathSimulator(rand.NewSource(99)).Simulate(c, sim)
	require.NoError(t, err)

	require.True(t, mat.Equal(a, b))
}

func TestSimulateInvalidParameters(t *testing.T) {
	valid := Contract{S0: 100, Strike: 100, Rate: 0.05, Vol: 0.2, Maturity: 1, Kind: payoff.Call}

	type testCases struct {
		name string
		c    Contract
		sim  Simulation
	}

	zeroSteps := valid
	negSpot := valid
	negSpot.S0 = -1
	negVol := valid
	negVol.Vol = -0.2
	zeroMaturity := valid
	zeroMaturity.Maturity = 0

	for _, test := range []testCases{
		{name: "ZERO_STEPS", c: zeroSteps, sim: Simulation{Steps: 0, Paths: 10}},
		{name: "ZERO_PATHS", c: valid, sim: Simulation{Steps: 10, Paths: 0}},
		{name: "NEGATIVE_SPOT", c: negSpot, sim: Simulation{Steps: 10, Paths: 10}},
		{name: "NEGATIVE_VOL", c: negVol, sim: Simulation{Steps: 10, Paths: 10}},
		{name: "ZERO_MATURITY", c: zeroMaturity, sim: Simulation{Steps: 10, Paths: 10}},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPathSimulator(rand.NewSource(3)).Simulate(test.c, test.sim)
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestSimulateNumericalDegenerate(t *testing.T) {
	type testCases struct {
		name string
		c    Contract
	}

	for _, test := range []testCases{
		// Underflows every path to zero within one step.
		{name: "HUGE_VOL", c: Contract{S0: 100, Strike: 100, Rate: 0.05, Vol: 1e300, Maturity: 1, Kind: payoff.Call}},
		// Overflows the drift term to +Inf within a few steps.
		{name: "HUGE_RATE", c: Contract{S0: 100, Strike: 100, Rate: 1e6, Vol: 0.2, Maturity: 1, Kind: payoff.Call}},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPathSimulator(rand.NewSource(5)).Simulate(test.c, Simulation{Steps: 4, Paths: 32})
			require.ErrorIs(t, err, ErrNumericalDegenerate)
		})
	}
}
