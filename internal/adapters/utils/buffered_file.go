package utils

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// WriteBufferSize is the buffer placed in front of every output file.
const WriteBufferSize = 64 * 1024

// BufferedFile is an output file behind a bufio.Writer.
type BufferedFile struct {
	*bufio.Writer
	f *os.File
}

// CreateBuffered creates or truncates path for writing.
func CreateBuffered(path string) (*BufferedFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	return &BufferedFile{Writer: bufio.NewWriterSize(f, WriteBufferSize), f: f}, nil
}

// Close flushes the buffer, syncs and closes the file. The file is closed
// even when flushing fails; the first error wins.
func (b *BufferedFile) Close() error {
	err := b.Flush()
	if err == nil {
		err = b.f.Sync()
	}
	if cerr := b.f.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) && err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to finish file %s: %w", b.f.Name(), err)
	}
	return nil
}
