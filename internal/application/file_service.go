package application

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/solodynamo/1-billion-row-challenge/internal/generator"
	"github.com/solodynamo/1-billion-row-challenge/internal/ports"
)

// GeneratorService orchestrates record generation by parsing row counts,
// selecting the sink for the output format, and driving the generator.
type GeneratorService struct {
	factory ports.SinkFactory
	parser  ports.CountParser
	log     zerolog.Logger
}

// NewGeneratorService constructs a GeneratorService with the given factory and parser.
func NewGeneratorService(factory ports.SinkFactory, parser ports.CountParser, log zerolog.Logger) *GeneratorService {
	return &GeneratorService{factory: factory, parser: parser, log: log}
}

// CreateFile generates rowSpec records (e.g. "1000", "10M", "1B") at outPath.
func (s *GeneratorService) CreateFile(outPath, rowSpec string, opts generator.Options) error {
	rows, err := s.parser.Parse(rowSpec)
	if err != nil {
		return fmt.Errorf("invalid row count '%s': %w", rowSpec, err)
	}
	return s.Generate(outPath, rows, opts)
}

// Generate writes rows records to outPath, creating or truncating it. The
// format follows the extension; text is the default. Options and row count
// are validated before the file is touched. On a write failure the partial
// file is left in place.
//
// The file grows linearly with rows (about 14 bytes per text line), so a
// billion rows needs roughly 14 GB of free space.
func (s *GeneratorService) Generate(outPath string, rows int64, opts generator.Options) (err error) {
	// 1. Validate before creating anything
	if rows < 0 {
		return fmt.Errorf("%w: %d", generator.ErrNegativeRowCount, rows)
	}
	gen, err := generator.New(opts)
	if err != nil {
		return err
	}

	// 2. Determine file type from extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(outPath), "."))
	fileType, err := mapExtensionToFileType(ext)
	if err != nil {
		return err
	}

	// 3. Retrieve the sink for this type
	sink, err := s.factory.For(fileType)
	if err != nil {
		return fmt.Errorf("no sink for type '%s': %w", fileType, err)
	}

	// 4. Open, generate, close
	log := s.log.With().Str("output", outPath).Str("type", string(fileType)).Int64("rows", rows).Logger()
	log.Info().Msg("Generating records")
	start := time.Now()

	w, err := sink.Open(outPath)
	if err != nil {
		log.Error().Err(err).Msg("Cannot open output")
		return fmt.Errorf("failed to open %s: %w", outPath, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", outPath, cerr))
		}
		if err != nil {
			log.Error().Err(err).Msg("Generation failed, output left partially written")
			return
		}
		log.Info().Dur("elapsed", time.Since(start)).Msg("Generated records")
	}()

	if err := gen.Generate(w, rows); err != nil {
		return fmt.Errorf("failed to generate %s: %w", outPath, err)
	}
	return nil
}

// mapExtensionToFileType maps file extensions to FileType constants. Paths
// without an extension get the text format.
func mapExtensionToFileType(ext string) (ports.FileType, error) {
	switch ext {
	case "", "txt", "text", "dat", "log":
		return ports.FileTypeTXT, nil
	case "csv":
		return ports.FileTypeCSV, nil
	case "jsonl", "ndjson":
		return ports.FileTypeJSONL, nil
	case "xlsx":
		return ports.FileTypeXLSX, nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}
}
