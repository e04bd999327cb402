package util

import (
	"math/rand"
	"time"

	"github.com/banachtech/exotica/payoff"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// RandomPrice generates a random value between min and max
func RandomPrice(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomRate generates a random risk-free rate, negative rates included
func RandomRate() float64 {
	return RandomPrice(-0.05, 0.10)
}

// RandomVol generates a random volatility
func RandomVol() float64 {
	return RandomPrice(0.0, 0.8)
}

// RandomKind picks a call or a put with equal probability
func RandomKind() payoff.OptionKind {
	if rand.Intn(2) == 0 {
		return payoff.Call
	}
	return payoff.Put
}
