package ports

// CountParser parses human-readable row counts (like "10M") into a number.
type CountParser interface {
	Parse(spec string) (int64, error)
}
