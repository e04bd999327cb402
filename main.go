package main

import (
	"fmt"
	"log"
	"os"

	"github.com/banachtech/exotica/api"
	"github.com/banachtech/exotica/mc"
	"github.com/banachtech/exotica/payoff"
	"github.com/schollz/progressbar/v3"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		server := api.NewServer()
		log.Fatal(server.Start("0.0.0.0:8080"))
	}

	c := mc.Contract{S0: 100, Strike: 100, Rate: 0.05, Vol: 0.2, Maturity: 1, Kind: payoff.Call}

	european, err := mc.BlackScholes{Spot: c.S0, Strike: c.Strike, Rate: c.Rate, Vol: c.Vol, Maturity: c.Maturity}.Price(c.Kind)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("european (closed form): %0.4f\n", european)

	runs := []int{1000, 10000, 100000}
	bar := progressbar.Default(int64(2 * len(runs)))
	type estimate struct {
		paths           int
		asian, lookback float64
	}
	var estimates []estimate

	for _, m := range runs {
		sim := mc.Simulation{Steps: 252, Paths: m}

		ap, err := mc.NewAsianPricer(c, sim, mc.WithBatches(8))
		if err != nil {
			log.Fatal(err)
		}
		asian, err := ap.Price()
		if err != nil {
			log.Fatal(err)
		}
		bar.Add(1)

		lp, err := mc.NewLookbackPricer(c, sim, mc.WithBatches(8))
		if err != nil {
			log.Fatal(err)
		}
		lookback, err := lp.Price()
		if err != nil {
			log.Fatal(err)
		}
		bar.Add(1)

		estimates = append(estimates, estimate{paths: m, asian: asian, lookback: lookback})
	}

	fmt.Println("paths\tasian\tlookback")
	for _, e := range estimates {
		fmt.Printf("%d\t%0.4f\t%0.4f\n", e.paths, e.asian, e.lookback)
	}
}
