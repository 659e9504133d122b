package utils

import (
	"github.com/solodynamo/1-billion-row-challenge/internal/ports"
	"github.com/solodynamo/1-billion-row-challenge/internal/utils"
)

// UtilCountParser adapts the utils.ParseCount function to the ports.CountParser interface.
type UtilCountParser struct{}

// NewUtilCountParser creates a new count parser adapter.
func NewUtilCountParser() ports.CountParser {
	return &UtilCountParser{}
}

// Parse uses the utility function to parse the row count string.
func (p *UtilCountParser) Parse(spec string) (int64, error) {
	return utils.ParseCount(spec)
}
