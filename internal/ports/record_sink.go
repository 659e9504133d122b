package ports

// RecordSink opens a RecordWriter on a file path.
type RecordSink interface {
	// Open creates or truncates the file at path.
	Open(path string) (RecordWriter, error)
}
