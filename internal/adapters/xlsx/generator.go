package xlsx

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
	"github.com/solodynamo/1-billion-row-challenge/internal/ports"
)

const (
	SheetName = "Sheet1"
	// MaxRecords is what fits in one sheet below the header row.
	MaxRecords = excelize.TotalRows - 1
)

// ErrTooManyRows is returned once a sheet is full.
var ErrTooManyRows = errors.New("xlsx sheet row limit reached")

// XlsxSink streams records into a single-sheet workbook.
type XlsxSink struct{}

// New returns the XLSX record sink.
func New() ports.RecordSink {
	return &XlsxSink{}
}

// Open truncates path straight away so an unwritable destination fails
// before any record is generated. The workbook itself is saved on Close;
// rows are streamed to excelize's temporary storage until then.
func (s *XlsxSink) Open(path string) (ports.RecordWriter, error) {
	probe, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := probe.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file %s: %w", path, err)
	}

	f := excelize.NewFile()
	w, err := newXlsxWriter(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

type xlsxWriter struct {
	f       *excelize.File
	sw      *excelize.StreamWriter
	path    string
	row     int
	styleID int
	values  []interface{}
}

func newXlsxWriter(f *excelize.File, path string) (*xlsxWriter, error) {
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create xlsx stream writer: %w", err)
	}
	oneDecimal := "0.0"
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &oneDecimal})
	if err != nil {
		return nil, fmt.Errorf("failed to create temperature style: %w", err)
	}
	headerID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := sw.SetColWidth(1, 1, 20); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	header := []interface{}{
		excelize.Cell{StyleID: headerID, Value: "place"},
		excelize.Cell{StyleID: headerID, Value: "temperature"},
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("failed to write xlsx header: %w", err)
	}
	return &xlsxWriter{
		f:       f,
		sw:      sw,
		path:    path,
		row:     1,
		styleID: styleID,
		values:  make([]interface{}, 2),
	}, nil
}

func (x *xlsxWriter) WriteRecord(rec measurement.Record) error {
	if x.row >= excelize.TotalRows {
		return fmt.Errorf("%w: %d records", ErrTooManyRows, MaxRecords)
	}
	x.row++
	cell, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		return err
	}
	x.values[0] = rec.Place
	x.values[1] = excelize.Cell{StyleID: x.styleID, Value: rec.Temperature.Float64()}
	return x.sw.SetRow(cell, x.values)
}

// Close writes the workbook to disk and removes excelize's temporary files.
func (x *xlsxWriter) Close() error {
	err := x.sw.Flush()
	if err == nil {
		err = x.f.SaveAs(x.path)
	}
	if cerr := x.f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to save xlsx %s: %w", x.path, err)
	}
	return nil
}
