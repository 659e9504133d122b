package ports

// FileType is the identifier for each output format.
type FileType string

const (
	FileTypeTXT   FileType = "txt"
	FileTypeCSV   FileType = "csv"
	FileTypeJSONL FileType = "jsonl"
	FileTypeXLSX  FileType = "xlsx"
)
