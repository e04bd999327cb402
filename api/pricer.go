package api

import (
	"errors"
	"net/http"

	"github.com/banachtech/exotica/mc"
	"github.com/banachtech/exotica/payoff"
	"github.com/gin-gonic/gin"
)

type pricerRequest struct {
	Spot     float64 `json:"spot" binding:"required,gt=0"`
	Strike   float64 `json:"strike" binding:"required,gt=0"`
	Rate     float64 `json:"rate"`
	Vol      float64 `json:"volatility" binding:"gte=0"`
	Maturity float64 `json:"maturity" binding:"required,gt=0"`
	Steps    int     `json:"steps" binding:"required,min=1"`
	Paths    int     `json:"paths" binding:"required,min=1"`
	Kind     string  `json:"kind" binding:"required"`
}

type europeanRequest struct {
	Spot     float64 `json:"spot" binding:"required,gt=0"`
	Strike   float64 `json:"strike" binding:"required,gt=0"`
	Rate     float64 `json:"rate"`
	Vol      float64 `json:"volatility" binding:"gte=0"`
	Maturity float64 `json:"maturity" binding:"required,gt=0"`
	Kind     string  `json:"kind" binding:"required"`
}

func (r pricerRequest) contract() mc.Contract {
	return mc.Contract{
		S0:       r.Spot,
		Strike:   r.Strike,
		Rate:     r.Rate,
		Vol:      r.Vol,
		Maturity: r.Maturity,
		Kind:     payoff.OptionKind(r.Kind),
	}
}

func (r pricerRequest) simulation() mc.Simulation {
	return mc.Simulation{Steps: r.Steps, Paths: r.Paths}
}

func (server *Server) asian(c *gin.Context) {
	var req pricerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pricer, err := mc.NewAsianPricer(req.contract(), req.simulation(), mc.WithBatches(4))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	price, err := pricer.Price()
	if err != nil {
		status(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "price": price})
}

func (server *Server) lookback(c *gin.Context) {
	var req pricerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pricer, err := mc.NewLookbackPricer(req.contract(), req.simulation(), mc.WithBatches(4))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	price, err := pricer.Price()
	if err != nil {
		status(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "price": price})
}

func (server *Server) european(c *gin.Context) {
	var req europeanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	b := mc.BlackScholes{
		Spot:     req.Spot,
		Strike:   req.Strike,
		Rate:     req.Rate,
		Vol:      req.Vol,
		Maturity: req.Maturity,
	}
	kind := payoff.OptionKind(req.Kind)

	price, err := b.Price(kind)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	delta, err := b.Delta(kind)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "price": price, "delta": delta})
}

// status maps pricing failures to HTTP codes: configuration defects are the
// caller's to fix, numerical blow-ups are ours to report.
func status(c *gin.Context, err error) {
	if errors.Is(err, mc.ErrInvalidParameter) || errors.Is(err, payoff.ErrUnknownKind) {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
}
