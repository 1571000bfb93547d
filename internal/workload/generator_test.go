package workload

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	g, err := New(Params{Count: 200, MaxArrival: 20, MeanBurst: 10, BurstStdDev: 5, Seed: 42})
	require.NoError(t, err)

	w := g.Generate()
	require.Len(t, w, 200)
	require.NoError(t, w.Validate())
	assert.Equal(t, "P1", w[0].Name)
	assert.Equal(t, "P200", w[199].Name)
	for _, p := range w {
		assert.GreaterOrEqual(t, p.Arrival, 0)
		assert.LessOrEqual(t, p.Arrival, 20)
		assert.Positive(t, p.Burst)
		assert.Equal(t, p.Burst, p.Remaining)
		assert.True(t, p.Active)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	params := Params{Count: 10, MaxArrival: 20, MeanBurst: 10, BurstStdDev: 5, Seed: 7}
	a, err := New(params)
	require.NoError(t, err)
	b, err := New(params)
	require.NoError(t, err)

	assert.Equal(t, a.Generate(), b.Generate())
}

func TestGenerateZeroStdDev(t *testing.T) {
	g, err := New(Params{Count: 5, MaxArrival: 0, MeanBurst: 3, Seed: 1})
	require.NoError(t, err)
	for _, p := range g.Generate() {
		assert.Equal(t, 0, p.Arrival)
		assert.Equal(t, 3, p.Burst)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"no processes", Params{Count: 0, MeanBurst: 10}},
		{"negative window", Params{Count: 1, MaxArrival: -1, MeanBurst: 10}},
		{"mean below one", Params{Count: 1, MeanBurst: 0.5}},
		{"negative stddev", Params{Count: 1, MeanBurst: 10, BurstStdDev: -1}},
		{"too many processes", Params{Count: MaxCount + 1, MeanBurst: 10}},
		{"arrival window overflows", Params{Count: 1, MaxArrival: math.MaxInt, MeanBurst: 10}},
		{"huge mean", Params{Count: 1, MeanBurst: 1e300}},
		{"huge stddev", Params{Count: 1, MeanBurst: 10, BurstStdDev: math.Inf(1)}},
		{"nan mean", Params{Count: 1, MeanBurst: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.params)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestGenerateAtUpperBounds(t *testing.T) {
	g, err := New(Params{Count: 3, MaxArrival: MaxArrivalWindow, MeanBurst: MaxBurstParam, BurstStdDev: MaxBurstParam, Seed: 5})
	require.NoError(t, err)
	for _, p := range g.Generate() {
		assert.GreaterOrEqual(t, p.Arrival, 0)
		assert.LessOrEqual(t, p.Arrival, MaxArrivalWindow)
		assert.Positive(t, p.Burst)
	}
}
