package walk

import (
	"fmt"
	"iter"
)

// Labels reported with every progress event.
const (
	progressLabel = "generating walks"
	progressUnit  = "walk"
)

// Producer generates a fixed number of independent walks from one Generator.
// The configuration is validated once at construction; iteration itself
// cannot fail.
type Producer struct {
	gen      *Generator
	total    int
	progress ProgressFunc
}

// NewProducer builds a producer for totalWalks walks of the given shape.
// Configuration errors surface here, before any walk is generated or any
// progress is reported.
func NewProducer(totalWalks, steps, maxStep int) (*Producer, error) {
	if totalWalks < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWalkCount, totalWalks)
	}

	gen, err := NewGenerator(steps, maxStep)
	if err != nil {
		return nil, err
	}

	return &Producer{gen: gen, total: totalWalks}, nil
}

// OnProgress installs fn as the progress sink. fn is called once per
// produced walk and has no effect on the walks themselves.
func (p *Producer) OnProgress(fn ProgressFunc) {
	p.progress = fn
}

// Generator returns the producer's walk generator, e.g. to install a seeded
// random source before iterating.
func (p *Producer) Generator() *Generator {
	return p.gen
}

// Walks returns a lazy sequence of exactly total walks, generated one at a
// time as the consumer pulls them. Each ranging of the sequence is a fresh
// session over the same generator. Stopping early is always safe; the
// sequence supports a single consumer at a time.
func (p *Producer) Walks() iter.Seq[Walk] {
	return func(yield func(Walk) bool) {
		for i := 0; i < p.total; i++ {
			w := p.gen.Walk()
			if p.progress != nil {
				p.progress(i+1, p.total, progressLabel, progressUnit)
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Produce builds a producer and returns its walk sequence in one call.
func Produce(totalWalks, steps, maxStep int) (iter.Seq[Walk], error) {
	p, err := NewProducer(totalWalks, steps, maxStep)
	if err != nil {
		return nil, err
	}
	return p.Walks(), nil
}
