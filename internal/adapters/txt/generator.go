package txt

import (
	"bufio"
	"io"

	adapterutils "github.com/solodynamo/1-billion-row-challenge/internal/adapters/utils"
	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
	"github.com/solodynamo/1-billion-row-challenge/internal/ports"
)

// TxtSink writes records as "place;temperature\n" lines.
type TxtSink struct{}

// New returns the plain text record sink.
func New() ports.RecordSink {
	return &TxtSink{}
}

// Open creates or truncates path.
func (s *TxtSink) Open(path string) (ports.RecordWriter, error) {
	f, err := adapterutils.CreateBuffered(path)
	if err != nil {
		return nil, err
	}
	return &Writer{w: f.Writer, c: f, line: make([]byte, 0, 64)}, nil
}

// Writer emits one line per record.
type Writer struct {
	w    *bufio.Writer
	c    io.Closer
	line []byte
}

// NewWriter writes lines to w through a buffer. Close flushes the buffer and
// closes w when it is an io.Closer.
func NewWriter(w io.Writer) *Writer {
	c, _ := w.(io.Closer)
	return &Writer{w: bufio.NewWriterSize(w, adapterutils.WriteBufferSize), c: c, line: make([]byte, 0, 64)}
}

func (w *Writer) WriteRecord(rec measurement.Record) error {
	w.line = rec.AppendLine(w.line[:0])
	_, err := w.w.Write(w.line)
	return err
}

func (w *Writer) Close() error {
	err := w.w.Flush()
	if w.c != nil {
		if cerr := w.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
