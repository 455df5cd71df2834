// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/deskkit/internal/inflation"
)

const inflationTitle = "Inflation Calculator"

// ParseNumber reads a decimal number, ignoring surrounding whitespace.
func ParseNumber(text string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, text)
	}
	return n, nil
}

// Calculate parses the calculator's two inputs and returns the result line
// for currentYear.
func Calculate(priceText, yearText string, currentYear int) (string, error) {
	price, err := ParseNumber(priceText)
	if err != nil {
		return "", fmt.Errorf("invalid price: %w", err)
	}
	return calculate(price, yearText, currentYear)
}

func calculate(price float64, yearText string, currentYear int) (string, error) {
	year, err := strconv.Atoi(strings.TrimSpace(yearText))
	if err != nil {
		return "", fmt.Errorf("invalid year: %w: %q is not a whole number", ErrInvalidInput, yearText)
	}
	past, err := inflation.PastPrice(price, year, currentYear)
	if err != nil {
		return "", err
	}
	return inflation.FormatResult(year, past), nil
}

// InflationActions returns the calculator's actions for prices quoted in
// currentYear.
func InflationActions(currentYear int) []Action {
	return []Action{
		{
			Name:  "calculate",
			Label: "Calculate",
			Handler: func(ctx context.Context, p Prompter) error {
				price, ok, err := p.AskFloat(ctx, inflationTitle, "Enter the current price of the item:")
				if errors.Is(err, ErrInvalidInput) {
					return fmt.Errorf("invalid price: %w", err)
				}
				if err != nil || !ok {
					return err
				}
				year, ok, err := p.AskString(ctx, inflationTitle, "Enter the target year to find the price for:")
				if err != nil || !ok {
					return err
				}
				msg, err := calculate(price, year, currentYear)
				if err != nil {
					return err
				}
				p.Info("Result", msg)
				return nil
			},
		},
	}
}
