package factory

import (
	"fmt"
	"maps"
	"slices"

	"github.com/solodynamo/1-billion-row-challenge/internal/adapters/csv"
	"github.com/solodynamo/1-billion-row-challenge/internal/adapters/jsonl"
	"github.com/solodynamo/1-billion-row-challenge/internal/adapters/txt"
	"github.com/solodynamo/1-billion-row-challenge/internal/adapters/xlsx"
	"github.com/solodynamo/1-billion-row-challenge/internal/ports"
)

// StaticSinkFactory provides concrete implementations for RecordSinks.
type StaticSinkFactory struct {
	sinks map[ports.FileType]ports.RecordSink
}

// NewStaticSinkFactory creates a new factory with every built-in sink.
func NewStaticSinkFactory() *StaticSinkFactory {
	return NewSinkFactory(map[ports.FileType]ports.RecordSink{
		ports.FileTypeTXT:   txt.New(),
		ports.FileTypeCSV:   csv.New(),
		ports.FileTypeJSONL: jsonl.New(),
		ports.FileTypeXLSX:  xlsx.New(),
	})
}

// NewSinkFactory creates a factory over the given sinks.
func NewSinkFactory(sinks map[ports.FileType]ports.RecordSink) *StaticSinkFactory {
	return &StaticSinkFactory{sinks: maps.Clone(sinks)}
}

// For returns the appropriate RecordSink for the given FileType.
func (f *StaticSinkFactory) For(t ports.FileType) (ports.RecordSink, error) {
	sink, ok := f.sinks[t]
	if !ok {
		return nil, fmt.Errorf("unsupported file type: '%s'", t)
	}
	return sink, nil
}

// RegisteredTypes lists the supported types in sorted order.
func (f *StaticSinkFactory) RegisteredTypes() []ports.FileType {
	return slices.Sorted(maps.Keys(f.sinks))
}
