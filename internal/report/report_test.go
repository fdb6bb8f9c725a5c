package report

import (
	"bytes"
	gomath "math"
	"testing"

	"github.com/GriffinCanCode/sahasinha/internal/providers/math/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSci(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.552713678800501e-15, "3.553e-15"},
		{4.2979384495822615e-09, "4.298e-9"},
		{8.881784197001252e-16, "8.882e-16"},
		{0, "0.000e0"},
		{150, "1.500e2"},
		{1, "1.000e0"},
		{-2.5e-3, "-2.500e-3"},
		{gomath.Inf(1), "inf"},
		{gomath.Inf(-1), "-inf"},
		{gomath.NaN(), "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSci(tt.in), "in=%v", tt.in)
	}
}

func TestFormatLambda(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{3, "3"},
		{2.5, "2.5"},
		{0.001, "0.001"},
		{-1, "-1"},
		{1e6, "1000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLambda(tt.in))
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	res := series.SahaSinha(10, 60, 1e-16)

	require.NoError(t, Header(&buf, 10, res))
	assert.Equal(t, "Saha–Sinha series with λ=10\n"+
		"  π ≈ 3.14159265358979667\n"+
		"  terms used: 60\n"+
		"  |error|    : 3.553e-15\n", buf.String())
}

func TestLine(t *testing.T) {
	tests := []struct {
		lambda float64
		want   string
	}{
		{3, "λ=3    -> π≈3.141592657887732  terms=60  |err|=4.298e-9\n"},
		{5, "λ=5    -> π≈3.141592653642237  terms=60  |err|=5.244e-11\n"},
		{10, "λ=10   -> π≈3.141592653589797  terms=60  |err|=3.553e-15\n"},
		{20, "λ=20   -> π≈3.141592653589794  terms=43  |err|=8.882e-16\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, Line(&buf, tt.lambda, series.SahaSinha(tt.lambda, 60, 1e-16)))
		assert.Equal(t, tt.want, buf.String())
	}
}

func TestLineWideLambda(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Line(&buf, 12.25, series.Result{Approx: 4, Terms: 0}))
	assert.Equal(t, "λ=12.25 -> π≈4.000000000000000  terms=0  |err|=8.584e-1\n", buf.String())
}

func TestNonFiniteResults(t *testing.T) {
	var buf bytes.Buffer
	res := series.SahaSinha(-1, 60, 1e-16)

	require.NoError(t, Header(&buf, -1, res))
	require.NoError(t, Line(&buf, -1, res))
	assert.Equal(t, "Saha–Sinha series with λ=-1\n"+
		"  π ≈ inf\n"+
		"  terms used: 1\n"+
		"  |error|    : inf\n"+
		"λ=-1   -> π≈inf  terms=1  |err|=inf\n", buf.String())

	buf.Reset()
	require.NoError(t, Line(&buf, 2, series.Result{Approx: gomath.Inf(-1), Terms: 3}))
	assert.Equal(t, "λ=2    -> π≈-inf  terms=3  |err|=inf\n", buf.String())

	buf.Reset()
	require.NoError(t, Line(&buf, 2, series.Result{Approx: gomath.NaN(), Terms: 1}))
	assert.Equal(t, "λ=2    -> π≈NaN  terms=1  |err|=NaN\n", buf.String())
}
