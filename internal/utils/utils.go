package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// countSuffixes are decimal multipliers. B stands for billion, so "1B" is the
// classic one billion rows; G is accepted as an alias.
var countSuffixes = map[string]int64{
	"K": 1_000,
	"M": 1_000_000,
	"B": 1_000_000_000,
	"G": 1_000_000_000,
}

// ParseCount parses strings like "500", "10K", "5m", "1B" or "1_000_000" into
// a non-negative row count.
func ParseCount(countStr string) (int64, error) {
	countStr = strings.ToUpper(strings.TrimSpace(countStr))
	if countStr == "" {
		return 0, errors.New("row count is empty")
	}
	numPart, suffix := countStr, ""
	if last := countStr[len(countStr)-1]; last < '0' || last > '9' {
		numPart, suffix = countStr[:len(countStr)-1], countStr[len(countStr)-1:]
	}
	if numPart == "" || numPart[0] == '_' || strings.HasSuffix(numPart, "_") {
		return 0, fmt.Errorf("invalid row count %q", countStr)
	}
	for _, r := range numPart {
		if (r < '0' || r > '9') && r != '_' {
			return 0, fmt.Errorf("invalid row count %q", countStr)
		}
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(numPart, "_", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid row count number: %w", err)
	}
	if suffix == "" {
		return n, nil
	}
	mult, ok := countSuffixes[suffix]
	if !ok {
		return 0, fmt.Errorf("unknown row count suffix '%s'", suffix)
	}
	if n > math.MaxInt64/mult {
		return 0, fmt.Errorf("row count %q overflows", countStr)
	}
	return n * mult, nil
}

// FormatCount renders n with '_' thousands separators, e.g. 1_000_000.
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return b.String()
}
