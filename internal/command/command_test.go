// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deskkit/internal/inflation"
)

func noop(ctx context.Context, p Prompter) error { return nil }

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(
		Action{Name: "b", Label: "Bee", Handler: noop},
		Action{Name: "a", Handler: noop},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, r.Names())

	a, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "a", a.Label, "label defaults to name")

	_, ok = r.Lookup("c")
	assert.False(t, ok)

	actions := r.Actions()
	actions[0].Name = "mutated"
	assert.Equal(t, []string{"b", "a"}, r.Names())
}

func TestRegistry_RegisterRejects(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{name: "duplicate", action: Action{Name: "x", Handler: noop}},
		{name: "no name", action: Action{Handler: noop}},
		{name: "no handler", action: Action{Name: "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(Action{Name: "x", Handler: noop})
			require.NoError(t, err)
			assert.Error(t, r.Register(tt.action))
		})
	}
}

func TestRegistry_Run(t *testing.T) {
	boom := errors.New("boom")
	var ran bool
	r, err := NewRegistry(
		Action{Name: "ok", Handler: func(ctx context.Context, p Prompter) error { ran = true; return nil }},
		Action{Name: "fail", Label: "Failing", Handler: func(ctx context.Context, p Prompter) error { return boom }},
	)
	require.NoError(t, err)

	p := &scripted{}
	require.NoError(t, r.Run(context.Background(), "ok", p))
	assert.True(t, ran)
	assert.Empty(t, p.errors)

	err = r.Run(context.Background(), "fail", p)
	assert.ErrorIs(t, err, boom)
	require.Len(t, p.errors, 1)
	assert.ErrorIs(t, p.errors[0], boom)

	err = r.Run(context.Background(), "missing", p)
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Len(t, p.errors, 1, "unknown actions are not reported through the prompter")
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		year    string
		want    string
		wantErr error
	}{
		{name: "example", price: "100", year: "2022", want: "The estimated price of the item in 2022 is: $92.59"},
		{name: "whitespace tolerated", price: " 100 ", year: " 2023 ", want: "The estimated price of the item in 2023 is: $100.00"},
		{name: "bad price", price: "ten", year: "2000", wantErr: ErrInvalidInput},
		{name: "bad year", price: "10", year: "1999.5", wantErr: ErrInvalidInput},
		{name: "future", price: "10", year: "2024", wantErr: inflation.ErrOutOfRange},
		{name: "too early", price: "10", year: "1900", wantErr: inflation.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.price, tt.year, inflation.DefaultCurrentYear)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func inflationRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(InflationActions(inflation.DefaultCurrentYear)...)
	require.NoError(t, err)
	return r
}

func TestInflationCalculate(t *testing.T) {
	p := &scripted{floats: []float64{100}, strs: []string{"2022"}}
	require.NoError(t, inflationRegistry(t).Run(context.Background(), "calculate", p))
	assert.Equal(t, []string{"The estimated price of the item in 2022 is: $92.59"}, p.infos)
	assert.Equal(t, []string{"AskFloat", "AskString"}, p.calls)
}

func TestInflationCalculate_ReportsErrors(t *testing.T) {
	p := &scripted{floats: []float64{100}, strs: []string{"2030"}}
	err := inflationRegistry(t).Run(context.Background(), "calculate", p)
	assert.ErrorIs(t, err, inflation.ErrOutOfRange)
	assert.Empty(t, p.infos)
	require.Len(t, p.errors, 1)
	assert.Contains(t, p.errors[0].Error(), "future")
}

func TestInflationCalculate_Cancel(t *testing.T) {
	for _, method := range []string{"AskFloat", "AskString"} {
		t.Run(method, func(t *testing.T) {
			p := &scripted{floats: []float64{100}, cancel: map[string]bool{method: true}}
			require.NoError(t, inflationRegistry(t).Run(context.Background(), "calculate", p))
			assert.Empty(t, p.infos)
			assert.Empty(t, p.errors)
		})
	}
}

func TestPrefilled(t *testing.T) {
	inner := &scripted{strs: []string{"from inner"}}
	p := Prefilled(inner, "one", "two")

	for _, want := range []string{"one", "two", "from inner"} {
		got, ok, err := p.AskString(context.Background(), "t", "q")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	p.Info("Result", "shown")
	assert.Equal(t, []string{"shown"}, inner.infos)
}

func TestPrefilled_DrivesCalculate(t *testing.T) {
	inner := &scripted{}
	require.NoError(t, inflationRegistry(t).Run(context.Background(), "calculate", Prefilled(inner, " 100 ", "2023")))
	assert.Equal(t, []string{"The estimated price of the item in 2023 is: $100.00"}, inner.infos)
	assert.Empty(t, inner.calls, "every answer came from the prefilled list")
}

func TestPrefilled_AskFloat(t *testing.T) {
	inner := &scripted{floats: []float64{7.5}}
	p := Prefilled(inner, "19.99", "ten")

	n, ok, err := p.AskFloat(context.Background(), "t", "q")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 19.99, n, 1e-9)

	_, ok, err = p.AskFloat(context.Background(), "t", "q")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, ok)

	n, ok, err = p.AskFloat(context.Background(), "t", "q")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7.5, n)
}

func TestPrefilled_BadPriceIsReported(t *testing.T) {
	inner := &scripted{}
	err := inflationRegistry(t).Run(context.Background(), "calculate", Prefilled(inner, "ten", "2000"))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "invalid price")
	require.Len(t, inner.errors, 1)
	assert.Empty(t, inner.infos)
}
