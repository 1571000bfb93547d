package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"cpu-scheduler/internal/core"
)

var ErrInvalidParams = errors.New("invalid workload parameters")

// Params describes the synthetic workload: Count processes arriving uniformly
// in [0, MaxArrival] with bursts drawn from a normal(MeanBurst, BurstStdDev)
// distribution, truncated to an integer and resampled until positive.
type Params struct {
	Count       int
	MaxArrival  int
	MeanBurst   float64
	BurstStdDev float64

	// Seed makes generation reproducible. Zero picks a random seed.
	Seed uint64
}

// Upper bounds keep arrival draws and burst conversions within int range and
// the simulated clock far away from overflow.
const (
	MaxCount         = 100_000
	MaxArrivalWindow = 1_000_000_000
	MaxBurstParam    = 1_000_000_000
)

func (p Params) Validate() error {
	switch {
	case p.Count < 1 || p.Count > MaxCount:
		return fmt.Errorf("%w: count %d must be in [1, %d]", ErrInvalidParams, p.Count, MaxCount)
	case p.MaxArrival < 0 || p.MaxArrival > MaxArrivalWindow:
		return fmt.Errorf("%w: max arrival %d must be in [0, %d]", ErrInvalidParams, p.MaxArrival, MaxArrivalWindow)
	case !(p.MeanBurst >= 1 && p.MeanBurst <= MaxBurstParam):
		return fmt.Errorf("%w: mean burst %g must be in [1, %d]", ErrInvalidParams, p.MeanBurst, MaxBurstParam)
	case !(p.BurstStdDev >= 0 && p.BurstStdDev <= MaxBurstParam):
		return fmt.Errorf("%w: burst stddev %g must be in [0, %d]", ErrInvalidParams, p.BurstStdDev, MaxBurstParam)
	}
	return nil
}

type Generator struct {
	params Params
	rng    *rand.Rand
}

func New(params Params) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	seed := params.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		params: params,
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}, nil
}

// Generate returns a fresh workload named P1..Pn in generation order.
func (g *Generator) Generate() core.Workload {
	w := make(core.Workload, 0, g.params.Count)
	for i := 0; i < g.params.Count; i++ {
		arrival := g.rng.IntN(g.params.MaxArrival + 1)
		w = append(w, core.NewProcess(fmt.Sprintf("P%d", i+1), arrival, g.burst()))
	}
	return w
}

func (g *Generator) burst() int {
	for {
		if b := int(g.rng.NormFloat64()*g.params.BurstStdDev + g.params.MeanBurst); b > 0 {
			return b
		}
	}
}
