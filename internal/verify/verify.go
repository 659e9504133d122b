// Package verify checks that a text file holds well-formed temperature
// records: one "place;temperature\n" line per record, every place from the
// expected list and every temperature inside the expected range with exactly
// one fractional digit.
package verify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
)

var (
	ErrUnknownPlace     = errors.New("place not in the expected list")
	ErrOutOfRange       = errors.New("temperature outside the expected range")
	ErrMissingNewline   = errors.New("last line is not terminated by a newline")
	ErrRowCountMismatch = errors.New("row count mismatch")
	ErrInvalidRange     = errors.New("expected range must be finite and below 1e17 in magnitude")
)

// AnyRowCount disables the row count check.
const AnyRowCount = -1

// Expectations describe a valid file. Empty Places accepts any place name;
// Rows must be set to AnyRowCount to skip the count check.
type Expectations struct {
	Places   []string
	Min, Max float64
	Rows     int64
}

// Report summarizes a file that passed verification.
type Report struct {
	Lines    int64
	PerPlace map[string]int64
}

// LineError points at the first offending line.
type LineError struct {
	Line int64
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// File verifies the file at path.
func File(path string, exp Expectations) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()
	return Reader(f, exp)
}

// Reader verifies everything readable from r.
func Reader(r io.Reader, exp Expectations) (Report, error) {
	if !measurement.InLimit(exp.Min) || !measurement.InLimit(exp.Max) {
		return Report{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, exp.Min, exp.Max)
	}
	lo, hi := measurement.CeilTenths(exp.Min), measurement.FloorTenths(exp.Max)
	var allowed map[string]struct{}
	if len(exp.Places) > 0 {
		allowed = make(map[string]struct{}, len(exp.Places))
		for _, p := range exp.Places {
			allowed[p] = struct{}{}
		}
	}

	rep := Report{PerPlace: map[string]int64{}}
	br := bufio.NewReaderSize(r, 1<<16)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return rep, err
		}
		if line == "" {
			break
		}
		rep.Lines++
		if !strings.HasSuffix(line, "\n") {
			return rep, &LineError{Line: rep.Lines, Text: line, Err: ErrMissingNewline}
		}
		text := line[:len(line)-1]
		rec, perr := measurement.ParseLine(text)
		switch {
		case perr != nil:
			return rep, &LineError{Line: rep.Lines, Text: text, Err: perr}
		case allowed != nil && !hasPlace(allowed, rec.Place):
			return rep, &LineError{Line: rep.Lines, Text: text, Err: ErrUnknownPlace}
		case rec.Temperature < lo || rec.Temperature > hi:
			return rep, &LineError{Line: rep.Lines, Text: text, Err: ErrOutOfRange}
		}
		rep.PerPlace[rec.Place]++
	}

	if exp.Rows != AnyRowCount && rep.Lines != exp.Rows {
		return rep, fmt.Errorf("%w: got %d lines, want %d", ErrRowCountMismatch, rep.Lines, exp.Rows)
	}
	return rep, nil
}

func hasPlace(allowed map[string]struct{}, place string) bool {
	_, ok := allowed[place]
	return ok
}
