// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inflation

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed rates.yaml
var ratesYAML []byte

// table is the decoded rate table. It is built once and never mutated.
type table struct {
	rates map[int]float64
	years []int
}

var (
	loadOnce sync.Once
	loaded   *table
	loadErr  error
)

// rateFile mirrors rates.yaml.
type rateFile struct {
	Rates map[int]float64 `yaml:"rates"`
}

func parseTable(data []byte) (*table, error) {
	var f rateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding rate table: %w", err)
	}
	if len(f.Rates) == 0 {
		return nil, fmt.Errorf("rate table is empty")
	}
	years := make([]int, 0, len(f.Rates))
	for y, r := range f.Rates {
		if r <= -1 {
			return nil, fmt.Errorf("rate for %d is %v: prices cannot fall by 100%% or more", y, r)
		}
		years = append(years, y)
	}
	sort.Ints(years)
	return &table{rates: f.Rates, years: years}, nil
}

// rates returns the embedded table, decoding it on first use. The embedded
// file is part of the binary, so a decode failure is a build defect.
func rates() *table {
	loadOnce.Do(func() {
		loaded, loadErr = parseTable(ratesYAML)
	})
	if loadErr != nil {
		panic(loadErr)
	}
	return loaded
}

// Rate returns the inflation rate recorded for year and whether the table
// has an entry for it.
func Rate(year int) (float64, bool) {
	r, ok := rates().rates[year]
	return r, ok
}

// Years returns the years covered by the table in ascending order.
func Years() []int {
	ys := rates().years
	out := make([]int, len(ys))
	copy(out, ys)
	return out
}

// FirstYear returns the earliest year the table supports.
func FirstYear() int {
	return rates().years[0]
}

// LastYear returns the latest year the table has a rate for.
func LastYear() int {
	ys := rates().years
	return ys[len(ys)-1]
}
