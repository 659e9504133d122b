package txt

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
	"github.com/solodynamo/1-billion-row-challenge/internal/ports"
)

func records(n int) []measurement.Record {
	recs := make([]measurement.Record, n)
	for i := range recs {
		recs[i] = measurement.Record{Place: fmt.Sprintf("P%d", i%3), Temperature: measurement.Tenths(i - 5)}
	}
	return recs
}

func TestTxtSink_Open(t *testing.T) {
	sink := New()

	// Ensure it implements the interface
	var _ ports.RecordSink = sink

	tempDir := t.TempDir()

	testCases := []struct {
		name string
		rows int
	}{
		{"ZeroRows", 0},
		{"OneRow", 1},
		{"SmallCount", 10},
		{"PastBuffer", 10_000}, // Several buffer flushes
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outPath := filepath.Join(tempDir, fmt.Sprintf("test_%s.txt", tc.name))

			w, err := sink.Open(outPath)
			require.NoError(t, err)
			var want strings.Builder
			for _, rec := range records(tc.rows) {
				require.NoError(t, w.WriteRecord(rec))
				want.WriteString(rec.String() + "\n")
			}
			require.NoError(t, w.Close())

			got, err := os.ReadFile(outPath)
			require.NoError(t, err)
			assert.Equal(t, want.String(), string(got))
		})
	}

	t.Run("Truncates", func(t *testing.T) {
		outPath := filepath.Join(tempDir, "existing.txt")
		require.NoError(t, os.WriteFile(outPath, []byte("old content that is longer\n"), 0o644))

		w, err := sink.Open(outPath)
		require.NoError(t, err)
		require.NoError(t, w.WriteRecord(measurement.Record{Place: "X", Temperature: 100}))
		require.NoError(t, w.Close())

		got, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "X;10.0\n", string(got))
	})

	// --- Test Error Case: Invalid Path ---
	t.Run("InvalidPath", func(t *testing.T) {
		// Use the temp directory itself as the output path, which should fail os.Create
		_, err := sink.Open(tempDir)
		assert.Error(t, err)
	})
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestNewWriter_Stream(t *testing.T) {
	dst := &closeRecorder{}
	w := NewWriter(dst)
	require.NoError(t, w.WriteRecord(measurement.Record{Place: "Hamburg", Temperature: -5}))
	require.NoError(t, w.WriteRecord(measurement.Record{Place: "Roseau", Temperature: 0}))

	assert.Empty(t, dst.String(), "records stay buffered until Close")
	require.NoError(t, w.Close())
	assert.Equal(t, "Hamburg;-0.5\nRoseau;0.0\n", dst.String())
	assert.True(t, dst.closed)
}

type failingWriter struct{ err error }

func (f failingWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestNewWriter_SurfacesWriteErrors(t *testing.T) {
	diskFull := errors.New("no space left on device")
	w := NewWriter(failingWriter{diskFull})
	require.NoError(t, w.WriteRecord(measurement.Record{Place: "A", Temperature: 1}))
	assert.ErrorIs(t, w.Close(), diskFull)
}
