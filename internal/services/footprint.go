package services

import (
	"errors"
	"math"

	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
)

// ErrInvalidFootprintInput is returned for negative inputs.
var ErrInvalidFootprintInput = errors.New("inputs must be non-negative numbers")

// Footprint weights and recommendation tiers
const (
	kmWeight     = 0.2
	energyWeight = 0.3
	meatWeight   = 0.5

	lowFootprint      = 50
	moderateFootprint = 120
)

// FootprintCalculator estimates an ecological footprint from weekly habits.
type FootprintCalculator struct{}

func NewFootprintCalculator() *FootprintCalculator {
	return &FootprintCalculator{}
}

// Estimate returns the footprint rounded to two decimals and a recommendation.
func (c *FootprintCalculator) Estimate(km, energy, meat float64) (*models.Footprint, error) {
	for _, v := range []float64{km, energy, meat} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrInvalidFootprintInput
		}
	}

	result := math.Round((km*kmWeight+energy*energyWeight+meat*meatWeight)*100) / 100

	var recommendation string
	switch {
	case result < lowFootprint:
		recommendation = "Your footprint is low. Keep up your sustainable habits."
	case result < moderateFootprint:
		recommendation = "Moderate footprint. Try to cut energy use and car trips."
	default:
		recommendation = "High footprint. Consider greener transport and a more plant-based diet."
	}

	return &models.Footprint{Result: result, Recommendation: recommendation}, nil
}
