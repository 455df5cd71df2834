// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inflation estimates historical prices by compounding annual
// inflation rates backward from a current year.
package inflation

import (
	"errors"
	"fmt"
)

// DefaultCurrentYear is the year prices are assumed to be quoted in when
// no other year is configured.
const DefaultCurrentYear = 2023

// ErrOutOfRange reports a target year the calculation cannot serve.
var ErrOutOfRange = errors.New("year out of range")

// Step is one year of a backward walk: the rate applied for Year and the
// price once that year's inflation has been removed.
type Step struct {
	Year  int     `json:"year" yaml:"year"`
	Rate  float64 `json:"rate" yaml:"rate"`
	Price float64 `json:"price" yaml:"price"`
}

// PastPrice returns what price, quoted in the current year, would have been
// in the target year. The price is divided by (1 + rate) once for every
// year from target up to but excluding current. Years missing from the
// table count as zero inflation. The result is not rounded.
func PastPrice(price float64, target, current int) (float64, error) {
	if err := checkRange(target, current); err != nil {
		return 0, err
	}
	p := price
	for y := target; y < current; y++ {
		r, _ := Rate(y)
		p /= 1 + r
	}
	return p, nil
}

// Schedule returns the backward walk PastPrice performs, one Step per year
// in ascending year order. Each step's price is the equivalent price in that
// year, so the first step's price equals PastPrice. An empty schedule means
// target == current.
func Schedule(price float64, target, current int) ([]Step, error) {
	if err := checkRange(target, current); err != nil {
		return nil, err
	}
	// Walk from current down to target so each step's price is the price in
	// that year, then reverse into ascending order.
	steps := make([]Step, 0, current-target)
	p := price
	for y := current - 1; y >= target; y-- {
		r, _ := Rate(y)
		p /= 1 + r
		steps = append(steps, Step{Year: y, Rate: r, Price: p})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps, nil
}

// FormatResult renders a computed price for display, rounded to cents.
func FormatResult(year int, price float64) string {
	return fmt.Sprintf("The estimated price of the item in %d is: $%.2f", year, price)
}

func checkRange(target, current int) error {
	if target > current {
		return fmt.Errorf("%w: target year cannot be in the future", ErrOutOfRange)
	}
	if first := FirstYear(); target < first {
		return fmt.Errorf("%w: data not available for years before %d", ErrOutOfRange, first)
	}
	return nil
}
