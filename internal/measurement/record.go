// Package measurement holds the record written to every output line: a place
// name paired with a temperature reading.
package measurement

import (
	"errors"
	"fmt"
	"strings"
)

// Separator splits the place from the temperature on a line.
const Separator = ';'

// ErrMalformedLine is returned when a line has no separator or no place.
var ErrMalformedLine = errors.New("malformed line")

// Record is one (place, temperature) pair.
type Record struct {
	Place       string
	Temperature Tenths
}

// AppendLine appends "place;temperature\n" to b.
func (r Record) AppendLine(b []byte) []byte {
	b = append(b, r.Place...)
	b = append(b, Separator)
	b = r.Temperature.AppendText(b)
	return append(b, '\n')
}

func (r Record) String() string {
	return r.Place + string(Separator) + r.Temperature.String()
}

// ParseLine parses a line without its trailing newline. The split happens at
// the last separator, since temperatures never contain one.
func ParseLine(line string) (Record, error) {
	i := strings.LastIndexByte(line, Separator)
	if i <= 0 {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	t, err := ParseTenths(line[i+1:])
	if err != nil {
		return Record{}, err
	}
	return Record{Place: line[:i], Temperature: t}, nil
}
