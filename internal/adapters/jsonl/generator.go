package jsonl

import (
	"encoding/json"

	adapterutils "github.com/solodynamo/1-billion-row-challenge/internal/adapters/utils"
	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
	"github.com/solodynamo/1-billion-row-challenge/internal/ports"
)

// line is one JSON object per record. The temperature is a json.Number so it
// keeps its single fractional digit, 10.0 included.
type line struct {
	Place       string      `json:"place"`
	Temperature json.Number `json:"temperature"`
}

// JsonlSink writes one JSON object per line.
type JsonlSink struct{}

// New returns the JSON Lines record sink.
func New() ports.RecordSink {
	return &JsonlSink{}
}

// Open creates or truncates path.
func (s *JsonlSink) Open(path string) (ports.RecordWriter, error) {
	f, err := adapterutils.CreateBuffered(path)
	if err != nil {
		return nil, err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	return &jsonlWriter{enc: enc, f: f}, nil
}

type jsonlWriter struct {
	enc *json.Encoder
	f   *adapterutils.BufferedFile
}

// WriteRecord encodes rec followed by a newline.
func (j *jsonlWriter) WriteRecord(rec measurement.Record) error {
	return j.enc.Encode(line{Place: rec.Place, Temperature: json.Number(rec.Temperature.String())})
}

func (j *jsonlWriter) Close() error {
	return j.f.Close()
}
