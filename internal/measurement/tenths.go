package measurement

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidTemperature is returned when a temperature field is not of the
// form -?digits.digit.
var ErrInvalidTemperature = errors.New("invalid temperature")

// tolerance absorbs binary float noise when a bound like 0.3 is scaled by ten.
const tolerance = 1e-9

// maxIntDigits keeps the integer part plus one fractional digit inside int64.
const maxIntDigits = 17

// Limit bounds the magnitude, in degrees, of values converted to Tenths.
// Anything at or beyond it would not fit the 17 integer digits ParseTenths
// accepts.
const Limit = 1e17

// Tenths is a temperature in tenths of a degree, so 12.3 is stored as 123.
type Tenths int64

// InLimit reports whether v is a finite value strictly inside ±Limit. The
// rounding helpers below are only defined for such values.
func InLimit(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) < Limit
}

// RoundTenths rounds v to one decimal digit, halves away from zero.
func RoundTenths(v float64) Tenths {
	return Tenths(math.Round(v * 10))
}

// CeilTenths returns the smallest Tenths value that is >= v.
func CeilTenths(v float64) Tenths {
	scaled := v * 10
	if r := math.Round(scaled); math.Abs(scaled-r) < tolerance {
		return Tenths(r)
	}
	return Tenths(math.Ceil(scaled))
}

// FloorTenths returns the largest Tenths value that is <= v.
func FloorTenths(v float64) Tenths {
	scaled := v * 10
	if r := math.Round(scaled); math.Abs(scaled-r) < tolerance {
		return Tenths(r)
	}
	return Tenths(math.Floor(scaled))
}

// Float64 returns t in degrees.
func (t Tenths) Float64() float64 {
	return float64(t) / 10
}

// AppendText appends t with exactly one fractional digit.
func (t Tenths) AppendText(b []byte) []byte {
	v := int64(t)
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	b = strconv.AppendInt(b, v/10, 10)
	b = append(b, '.')
	return append(b, byte('0'+v%10))
}

func (t Tenths) String() string {
	var buf [24]byte
	return string(t.AppendText(buf[:0]))
}

// ParseTenths parses s as written by AppendText.
func ParseTenths(s string) (Tenths, error) {
	i := 0
	neg := false
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}
	start := i
	var v int64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if i-start >= maxIntDigits {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidTemperature, s)
		}
		v = v*10 + int64(s[i]-'0')
		i++
	}
	if i == start || len(s)-i != 2 || s[i] != '.' || s[i+1] < '0' || s[i+1] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTemperature, s)
	}
	v = v*10 + int64(s[i+1]-'0')
	if neg {
		v = -v
	}
	return Tenths(v), nil
}
