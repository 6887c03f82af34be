package walk

import (
	"fmt"
	"math/rand/v2"
)

// Generator produces independent 2D random walks from one fixed shape
// (step count and maximum step magnitude).
type Generator struct {
	steps      int
	maxStep    int
	stepValues []int // Valid signed magnitudes: [-maxStep..-1] and [1..maxStep]
	rand       *rand.Rand
}

// NewGenerator validates the walk shape and precomputes the valid step
// values. Zero is excluded from the step values so every step moves.
// Each generator seeds its own random source, so separately constructed
// generators produce independent walks.
func NewGenerator(steps, maxStep int) (*Generator, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStepCount, steps)
	}
	if maxStep < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStepSize, maxStep)
	}

	values := make([]int, 0, 2*maxStep)
	for v := -maxStep; v <= maxStep; v++ {
		if v == 0 {
			continue
		}
		values = append(values, v)
	}

	return &Generator{
		steps:      steps,
		maxStep:    maxStep,
		stepValues: values,
		rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// Init replaces the generator's random source. Used to install a seeded
// source for reproducible runs; generators constructed for concurrent use
// must not share one source.
func (g *Generator) Init(r *rand.Rand) {
	g.rand = r
}

// Walk generates one walk. For each step it draws an axis uniformly from
// {x, y} and a signed magnitude uniformly from the precomputed step values,
// independently; the magnitude moves the chosen axis and the other axis
// carries forward unchanged. Coordinates start at the origin, so the
// returned slices have length steps+1.
func (g *Generator) Walk() Walk {
	x := make([]int, g.steps+1)
	y := make([]int, g.steps+1)

	for i := 1; i <= g.steps; i++ {
		step := g.stepValues[g.rand.IntN(len(g.stepValues))]
		if g.rand.IntN(2) == 0 {
			x[i] = x[i-1] + step
			y[i] = y[i-1]
		} else {
			x[i] = x[i-1]
			y[i] = y[i-1] + step
		}
	}

	return Walk{X: x, Y: y}
}

// Description returns a human-readable description of the walk shape
func (g *Generator) Description() string {
	return fmt.Sprintf("2D random walks: %d steps with magnitudes 1..%d", g.steps, g.maxStep)
}
