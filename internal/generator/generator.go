// Package generator draws random temperature records.
//
// Each record picks a place uniformly from the configured list and a
// temperature uniformly from the configured inclusive range, rounded to one
// decimal digit with halves rounded away from zero. Records are handed to a
// ports.RecordWriter one at a time, so memory use does not grow with the row
// count. The output size does: a billion rows is roughly 14 GB of text, and
// callers are expected to check the destination has room.
package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
	"github.com/solodynamo/1-billion-row-challenge/internal/ports"
)

// ProgressInterval is how many records pass between Progress calls.
const ProgressInterval = 1 << 16

// seedStream is mixed into the second PCG word so seed 0 is still usable.
const seedStream = 0x9e3779b97f4a7c15

// Generator produces records from a fixed place list and range. It is not
// safe for concurrent use.
type Generator struct {
	places   []string
	min, max float64
	lo, hi   measurement.Tenths
	rng      *rand.Rand
	progress ProgressFunc
}

// New validates opts and returns a Generator.
func New(opts Options) (*Generator, error) {
	lo, hi, err := opts.bounds()
	if err != nil {
		return nil, err
	}
	var src *rand.PCG
	if opts.Seed != nil {
		src = rand.NewPCG(*opts.Seed, *opts.Seed^seedStream)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{
		places:   append([]string(nil), opts.Places...),
		min:      opts.Min,
		max:      opts.Max,
		lo:       lo,
		hi:       hi,
		rng:      rand.New(src),
		progress: opts.Progress,
	}, nil
}

// Next draws one record.
func (g *Generator) Next() measurement.Record {
	place := g.places[g.rng.IntN(len(g.places))]
	v := g.min + g.rng.Float64()*(g.max-g.min)
	t := measurement.RoundTenths(v)
	// Bounds off the tenths grid can round outside the range.
	t = max(g.lo, min(g.hi, t))
	return measurement.Record{Place: place, Temperature: t}
}

// Generate writes rows records to w. It does not close w. On error the
// records already written stay in w.
func (g *Generator) Generate(w ports.RecordWriter, rows int64) error {
	if rows < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRowCount, rows)
	}
	for i := int64(1); i <= rows; i++ {
		if err := w.WriteRecord(g.Next()); err != nil {
			return fmt.Errorf("write record %d of %d: %w", i, rows, err)
		}
		if g.progress != nil && i%ProgressInterval == 0 {
			g.progress(i)
		}
	}
	if g.progress != nil {
		g.progress(rows)
	}
	return nil
}
