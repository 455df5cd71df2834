// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deskkit/internal/inflation"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Estimate the price of an item in a past year",
	Long: `Calc divides the current price by (1 + rate) for every year from the
target year up to, but not including, the current year. Years missing
from the table count as zero inflation.`,
	Example: `  inflation-calc calc --price 100 --year 2022
  inflation-calc calc --price 19.99 --year 1990 --breakdown`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().Float64("price", 0, "current price of the item")
	calcCmd.Flags().Int("year", 0, "target year to find the price for")
	calcCmd.Flags().Int("current-year", 0, "year the price is quoted in (default from config, 2023)")
	calcCmd.Flags().Bool("breakdown", false, "print the price at every year in between")
	_ = calcCmd.MarkFlagRequired("price")
	_ = calcCmd.MarkFlagRequired("year")

	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	price, _ := cmd.Flags().GetFloat64("price")
	year, _ := cmd.Flags().GetInt("year")
	current, _ := cmd.Flags().GetInt("current-year")
	if current == 0 {
		current = cfg.Inflation.CurrentYear
	}
	breakdown, _ := cmd.Flags().GetBool("breakdown")

	log.Debug().Float64("price", price).Int("year", year).Int("current", current).Msg("calculating")
	return writeCalc(cmd.OutOrStdout(), price, year, current, breakdown)
}

func writeCalc(w io.Writer, price float64, year, current int, breakdown bool) error {
	if breakdown {
		steps, err := inflation.Schedule(price, year, current)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-6s %8s %12s\n", "Year", "Rate", "Price")
		for _, s := range steps {
			fmt.Fprintf(w, "%-6d %7.2f%% %12.2f\n", s.Year, s.Rate*100, s.Price)
		}
		fmt.Fprintf(w, "%-6d %8s %12.2f\n", current, "", price)
	}

	past, err := inflation.PastPrice(price, year, current)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, inflation.FormatResult(year, past))
	return nil
}
