package mc

import (
	"fmt"
	"math"

	"github.com/banachtech/exotica/payoff"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

// BlackScholes prices a European option on a non-dividend-paying asset in
// closed form. It is the anchor the Monte Carlo estimates are checked
// against in degenerate limits.
type BlackScholes struct {
	Spot     float64
	Strike   float64
	Rate     float64
	Vol      float64
	Maturity float64
}

func (b BlackScholes) Validate() error {
	if b.Spot <= 0 {
		return fmt.Errorf("%w: spot must be positive, got %v", ErrInvalidParameter, b.Spot)
	}
	if b.Strike <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidParameter, b.Strike)
	}
	if b.Vol < 0 {
		return fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidParameter, b.Vol)
	}
	if b.Maturity < 0 {
		return fmt.Errorf("%w: maturity must be non-negative, got %v", ErrInvalidParameter, b.Maturity)
	}
	return nil
}

func (b BlackScholes) d1() float64 {
	a := b.Vol * math.Sqrt(b.Maturity)
	return (math.Log(b.Spot/b.Strike) + (b.Rate+0.5*b.Vol*b.Vol)*b.Maturity) / a
}

func (b BlackScholes) d2() float64 {
	return b.d1() - b.Vol*math.Sqrt(b.Maturity)
}

// degenerate is the zero-volatility or zero-maturity limit, where the price
// collapses to intrinsic value.
func (b BlackScholes) degenerate() bool {
	return b.Vol == 0 || b.Maturity == 0
}

// Price returns the closed-form present value for the given kind.
func (b BlackScholes) Price(kind payoff.OptionKind) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if err := kind.Valid(); err != nil {
		return 0, err
	}
	if b.degenerate() {
		return payoff.Vanilla(kind, b.Spot, b.Strike)
	}
	n := distuv.UnitNormal
	disc := math.Exp(-b.Rate * b.Maturity)
	if kind == payoff.Call {
		return b.Spot*n.CDF(b.d1()) - b.Strike*disc*n.CDF(b.d2()), nil
	}
	return b.Strike*disc*n.CDF(-b.d2()) - b.Spot*n.CDF(-b.d1()), nil
}

// Delta returns the first derivative of the price in the spot.
func (b BlackScholes) Delta(kind payoff.OptionKind) (float64, error) {
	if err := kind.Valid(); err != nil {
		return 0, err
	}
	if b.degenerate() {
		if kind == payoff.Call {
			if b.Spot > b.Strike {
				return 1.0, nil
			}
			return 0.0, nil
		}
		if b.Spot < b.Strike {
			return -1.0, nil
		}
		return 0.0, nil
	}
	if kind == payoff.Call {
		return distuv.UnitNormal.CDF(b.d1()), nil
	}
	return -distuv.UnitNormal.CDF(-b.d1()), nil
}

// Gamma is kind-independent.
func (b BlackScholes) Gamma() float64 {
	if b.degenerate() {
		return 0.0
	}
	return distuv.UnitNormal.Prob(b.d1()) / (b.Spot * b.Vol * math.Sqrt(b.Maturity))
}

// Vega is quoted per 1% move in volatility.
func (b BlackScholes) Vega() float64 {
	if b.degenerate() {
		return 0.0
	}
	return b.Spot * distuv.UnitNormal.Prob(b.d1()) * math.Sqrt(b.Maturity) / 100.0
}

// Theta is quoted per calendar day.
func (b BlackScholes) Theta(kind payoff.OptionKind) (float64, error) {
	if err := kind.Valid(); err != nil {
		return 0, err
	}
	n := distuv.UnitNormal
	disc := math.Exp(-b.Rate * b.Maturity)
	decay := -b.Spot * n.Prob(b.d1()) * b.Vol / (2.0 * math.Sqrt(b.Maturity))
	if kind == payoff.Call {
		return (decay - b.Rate*b.Strike*disc*n.CDF(b.d2())) / 365.0, nil
	}
	return (decay + b.Rate*b.Strike*disc*n.CDF(-b.d2())) / 365.0, nil
}

// Rho is quoted per 1% move in rates.
func (b BlackScholes) Rho(kind payoff.OptionKind) (float64, error) {
	if err := kind.Valid(); err != nil {
		return 0, err
	}
	disc := math.Exp(-b.Rate * b.Maturity)
	if kind == payoff.Call {
		return b.Strike * b.Maturity * disc * distuv.UnitNormal.CDF(b.d2()) / 100.0, nil
	}
	return -b.Strike * b.Maturity * disc * distuv.UnitNormal.CDF(-b.d2()) / 100.0, nil
}

// ImpliedVol recovers the volatility that reproduces the target market price.
// The squared pricing error is minimised over log-volatility, which keeps the
// iterate in the positive domain.
func (b BlackScholes) ImpliedVol(kind payoff.OptionKind, target float64) (float64, error) {
	if err := kind.Valid(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			trial := b
			trial.Vol = math.Exp(x[0])
			p, err := trial.Price(kind)
			if err != nil {
				return math.Inf(1)
			}
			return math.Pow(p-target, 2)
		},
	}
	res, err := optimize.Minimize(problem, []float64{math.Log(0.2)}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, err
	}
	return math.Exp(res.X[0]), nil
}
