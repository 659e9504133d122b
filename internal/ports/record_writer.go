package ports

import "github.com/solodynamo/1-billion-row-challenge/internal/measurement"

// RecordWriter is the port for anything that accepts generated records.
type RecordWriter interface {
	// WriteRecord writes one record. Implementations may buffer.
	WriteRecord(rec measurement.Record) error
	// Close flushes buffered records and releases the destination.
	Close() error
}
