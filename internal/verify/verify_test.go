package verify

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solodynamo/1-billion-row-challenge/internal/measurement"
)

func defaults(rows int64) Expectations {
	return Expectations{Places: []string{"A", "B"}, Min: -1, Max: 1, Rows: rows}
}

func TestReader(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		exp       Expectations
		wantErr   error
		wantLine  int64
		wantLines int64
	}{
		{name: "Empty", input: "", exp: defaults(0)},
		{name: "Valid", input: "A;0.5\nB;-1.0\nA;1.0\n", exp: defaults(3), wantLines: 3},
		{name: "AnyCount", input: "A;0.0\n", exp: defaults(AnyRowCount), wantLines: 1},
		{name: "AnyPlace", input: "Z;0.0\n", exp: Expectations{Min: 0, Max: 0, Rows: 1}, wantLines: 1},
		{name: "CountMismatch", input: "A;0.0\n", exp: defaults(2), wantErr: ErrRowCountMismatch},
		{name: "UnknownPlace", input: "A;0.0\nC;0.0\n", exp: defaults(2), wantErr: ErrUnknownPlace, wantLine: 2},
		{name: "AboveRange", input: "A;1.1\n", exp: defaults(1), wantErr: ErrOutOfRange, wantLine: 1},
		{name: "BelowRange", input: "A;-1.1\n", exp: defaults(1), wantErr: ErrOutOfRange, wantLine: 1},
		{name: "TwoDecimals", input: "A;0.25\n", exp: defaults(1), wantErr: measurement.ErrInvalidTemperature, wantLine: 1},
		{name: "NoDecimal", input: "A;1\n", exp: defaults(1), wantErr: measurement.ErrInvalidTemperature, wantLine: 1},
		{name: "NoSeparator", input: "A 0.0\n", exp: defaults(1), wantErr: measurement.ErrMalformedLine, wantLine: 1},
		{name: "CRLF", input: "A;0.0\r\n", exp: defaults(1), wantErr: measurement.ErrInvalidTemperature, wantLine: 1},
		{name: "HugeRange", input: "A;0.0\n", exp: Expectations{Min: -1e18, Max: 1e18, Rows: 1}, wantErr: ErrInvalidRange},
		{name: "NaNRange", input: "A;0.0\n", exp: Expectations{Min: math.NaN(), Max: 1, Rows: 1}, wantErr: ErrInvalidRange},
		{name: "WideRange", input: "A;-9999999999999999.9\nA;9999999999999999.9\n", exp: Expectations{Min: -1e16, Max: 1e16, Rows: 2}, wantLines: 2},
		{name: "MissingNewline", input: "A;0.0\nB;0.0", exp: defaults(2), wantErr: ErrMissingNewline, wantLine: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := Reader(strings.NewReader(tc.input), tc.exp)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.wantLines, rep.Lines)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantLine > 0 {
				var lineErr *LineError
				require.True(t, errors.As(err, &lineErr), "error %v is not a *LineError", err)
				assert.Equal(t, tc.wantLine, lineErr.Line)
			}
		})
	}
}

func TestReader_PerPlace(t *testing.T) {
	rep, err := Reader(strings.NewReader("A;0.0\nB;0.1\nA;0.2\n"), defaults(3))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 2, "B": 1}, rep.PerPlace)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("X;10.0\nX;10.0\nX;10.0\n"), 0o644))

	rep, err := File(path, Expectations{Places: []string{"X"}, Min: 10, Max: 10, Rows: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), rep.Lines)

	_, err = File(filepath.Join(t.TempDir(), "missing.txt"), defaults(AnyRowCount))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
