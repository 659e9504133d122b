package csv

import (
	"encoding/csv"
	"fmt"

	adapterutils "github.com/solodynamo/1-billion-row-challenge/internal/adapters/utils"
	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
	"github.com/solodynamo/1-billion-row-challenge/internal/ports"
)

// Header is the first row of every CSV file.
var Header = []string{"place", "temperature"}

// CsvSink writes records as "place,temperature" rows under a header.
type CsvSink struct{}

// New returns the CSV record sink.
func New() ports.RecordSink {
	return &CsvSink{}
}

// Open creates a comma separated file with a header row. Place names that
// contain commas or quotes are quoted.
func (s *CsvSink) Open(path string) (ports.RecordWriter, error) {
	f, err := adapterutils.CreateBuffered(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	return &csvWriter{w: w, f: f, row: make([]string, 2)}, nil
}

type csvWriter struct {
	w   *csv.Writer
	f   *adapterutils.BufferedFile
	row []string
}

func (c *csvWriter) WriteRecord(rec measurement.Record) error {
	c.row[0], c.row[1] = rec.Place, rec.Temperature.String()
	return c.w.Write(c.row)
}

func (c *csvWriter) Close() error {
	c.w.Flush()
	err := c.w.Error()
	if cerr := c.f.Close(); err == nil {
		err = cerr
	}
	return err
}
