// Package stats computes per-place min, max, mean and count over a file of
// temperature records, the query the generated files exist to benchmark.
//
// A file is cut into sections that end on line boundaries and every section
// is aggregated by its own goroutine before the partial results are merged.
package stats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/dolthub/swiss"
	"golang.org/x/sync/errgroup"

	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
)

const (
	readBufferSize = 1 << 19
	maxLineSize    = 1 << 20
)

// Summary aggregates every reading of one place.
type Summary struct {
	Place    string
	Min, Max measurement.Tenths
	Sum      int64
	Count    int64
}

// Mean rounds half away from zero, like the generator.
func (s Summary) Mean() measurement.Tenths {
	if s.Count == 0 {
		return 0
	}
	return measurement.Tenths(math.Round(float64(s.Sum) / float64(s.Count)))
}

func (s *Summary) add(t measurement.Tenths) {
	if s.Count == 0 || t < s.Min {
		s.Min = t
	}
	if s.Count == 0 || t > s.Max {
		s.Max = t
	}
	s.Sum += int64(t)
	s.Count++
}

func (s *Summary) merge(o *Summary) {
	if o.Count == 0 {
		return
	}
	if s.Count == 0 || o.Min < s.Min {
		s.Min = o.Min
	}
	if s.Count == 0 || o.Max > s.Max {
		s.Max = o.Max
	}
	s.Sum += o.Sum
	s.Count += o.Count
}

type table struct {
	m *swiss.Map[string, *Summary]
}

func newTable() *table {
	return &table{m: swiss.NewMap[string, *Summary](64)}
}

func (t *table) get(place string) *Summary {
	s, ok := t.m.Get(place)
	if !ok {
		s = &Summary{Place: place}
		t.m.Put(place, s)
	}
	return s
}

// scan aggregates r; base is r's offset in the file, used in errors.
func (t *table) scan(r io.Reader, base int64) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, readBufferSize), maxLineSize)
	off := base
	for sc.Scan() {
		line := sc.Text()
		rec, err := measurement.ParseLine(line)
		if err != nil {
			return fmt.Errorf("offset %d: %w", off, err)
		}
		t.get(rec.Place).add(rec.Temperature)
		off += int64(len(line)) + 1
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("offset %d: %w", off, err)
	}
	return nil
}

func (t *table) merge(o *table) {
	o.m.Iter(func(place string, s *Summary) bool {
		t.get(place).merge(s)
		return false
	})
}

func (t *table) sorted() []Summary {
	out := make([]Summary, 0, t.m.Count())
	t.m.Iter(func(_ string, s *Summary) bool {
		out = append(out, *s)
		return false
	})
	slices.SortFunc(out, func(a, b Summary) int { return strings.Compare(a.Place, b.Place) })
	return out
}

// Reader aggregates r sequentially.
func Reader(r io.Reader) ([]Summary, error) {
	t := newTable()
	if err := t.scan(r, 0); err != nil {
		return nil, err
	}
	return t.sorted(), nil
}

// File aggregates the file at path with up to workers goroutines; workers <= 0
// uses one per CPU. Summaries are sorted by place.
func File(path string, workers int) ([]Summary, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	secs, err := splitSections(f, fi.Size(), workers)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", path, err)
	}

	tables := make([]*table, len(secs))
	var g errgroup.Group
	for i, s := range secs {
		g.Go(func() error {
			t := newTable()
			if err := t.scan(io.NewSectionReader(f, s.begin, s.end-s.begin), s.begin); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := newTable()
	for _, t := range tables {
		merged.merge(t)
	}
	return merged.sorted(), nil
}

type section struct {
	begin, end int64
}

// splitSections cuts [0, size) into at most n sections, each ending just
// after a newline or at size.
func splitSections(r io.ReaderAt, size int64, n int) ([]section, error) {
	var out []section
	begin := int64(0)
	for i := 1; i < n; i++ {
		target := size * int64(i) / int64(n)
		if target <= begin {
			continue
		}
		end, err := lineEnd(r, target-1, size)
		if err != nil {
			return nil, err
		}
		if end >= size {
			break
		}
		out = append(out, section{begin: begin, end: end})
		begin = end
	}
	if begin < size {
		out = append(out, section{begin: begin, end: size})
	}
	return out, nil
}

// lineEnd returns the offset just past the first newline at or after off, or
// size when there is none.
func lineEnd(r io.ReaderAt, off, size int64) (int64, error) {
	buf := make([]byte, 4096)
	for off < size {
		n, err := r.ReadAt(buf, off)
		if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
			return off + int64(i) + 1, nil
		}
		off += int64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	return size, nil
}

// Format selects how WriteFormat renders a summary.
type Format int

const (
	// Plain prints Hamburg;-3.4;20.1;9.6;3 with exactly one decimal.
	Plain Format = iota
	// Quoted prints "Hamburg";-3.4;20.1;9.6;3 with the place quoted and a
	// trailing ".0" dropped, so 10.0 becomes 10. Values go through float32,
	// the way most 1brc solutions report them.
	Quoted
)

// Write prints one "place;min;max;mean;count" line per summary.
func Write(w io.Writer, sums []Summary) error {
	return WriteFormat(w, sums, Plain)
}

// WriteFormat is Write with a choice of Format.
func WriteFormat(w io.Writer, sums []Summary, f Format) error {
	bw := bufio.NewWriter(w)
	var line []byte
	for _, s := range sums {
		switch f {
		case Plain:
			line = appendPlain(line[:0], s)
		case Quoted:
			line = appendQuoted(line[:0], s)
		default:
			return fmt.Errorf("unknown stats format %d", f)
		}
		line = append(line, measurement.Separator)
		line = strconv.AppendInt(line, s.Count, 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func appendPlain(b []byte, s Summary) []byte {
	b = append(b, s.Place...)
	for _, t := range []measurement.Tenths{s.Min, s.Max, s.Mean()} {
		b = append(b, measurement.Separator)
		b = t.AppendText(b)
	}
	return b
}

func appendQuoted(b []byte, s Summary) []byte {
	b = strconv.AppendQuote(b, s.Place)
	var mean float32
	if s.Count > 0 {
		mean = float32(float64(s.Sum) / 10 / float64(s.Count))
	}
	for _, v := range []float32{float32(s.Min.Float64()), float32(s.Max.Float64()), mean} {
		b = append(b, measurement.Separator)
		b = strconv.AppendFloat(b, float64(v), 'f', 1, 32)
		if bytes.HasSuffix(b, []byte(".0")) {
			b = b[:len(b)-2]
		}
	}
	return b
}
