package utils

import (
	"fmt"
	"testing"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		// Valid cases
		{"0", 0, false},
		{"500", 500, false},
		{" 500 ", 500, false},
		{"10k", 10_000, false},
		{"10K", 10_000, false},
		{"4m", 4_000_000, false},
		{"4M", 4_000_000, false},
		{"1b", 1_000_000_000, false},
		{"1B", 1_000_000_000, false},
		{"1G", 1_000_000_000, false},
		{"1_000_000", 1_000_000, false},
		{"0K", 0, false},

		// Invalid cases
		{"", 0, true},                     // Empty string
		{"-100", 0, true},                 // Negative number
		{"10P", 0, true},                  // Unknown suffix
		{"K", 0, true},                    // No number
		{"10.5K", 0, true},                // Non-integer number part
		{"abc", 0, true},                  // Non-numeric
		{"10 M", 0, true},                 // Space before suffix
		{"10KB", 0, true},                 // Byte sizes are not row counts
		{"_100", 0, true},                 // Leading separator
		{"100_", 0, true},                 // Trailing separator
		{"99999999999999999999", 0, true}, // Overflows int64
		{"9999999999999B", 0, true},       // Overflows after multiplying
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Input_%s", tc.input), func(t *testing.T) {
			got, err := ParseCount(tc.input)

			if (err != nil) != tc.wantErr {
				t.Errorf("ParseCount(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
				return
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("ParseCount(%q) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := map[int64]string{
		0:             "0",
		999:           "999",
		1000:          "1_000",
		1_000_000_000: "1_000_000_000",
		-12345:        "-12_345",
	}
	for in, want := range tests {
		if got := FormatCount(in); got != want {
			t.Errorf("FormatCount(%d) = %q, want %q", in, got, want)
		}
	}
}
