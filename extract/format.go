package extract

import (
	"io"
	"path"
	"slices"
	"strings"
)

// Format scans a tabular stream and calls emit with the first-column cell
// of every row, in source order.
type Format interface {
	Name() string
	Scan(r io.Reader, emit func(Cell)) error
}

// FormatFactory builds a Format from extractor config.
type FormatFactory func(cfg Config) Format

var formats = make(map[string]FormatFactory)

// RegisterFormat registers a format for a lower-case file extension
// including the dot (".csv").
func RegisterFormat(ext string, f FormatFactory) {
	formats[strings.ToLower(ext)] = f
}

// Extensions returns the registered extensions, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(formats))
	for ext := range formats {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// formatFor returns the factory for locator's extension.
func formatFor(locator string) (FormatFactory, string, bool) {
	p := locator
	if i := strings.IndexAny(p, "?#"); i >= 0 && strings.Contains(p, "://") {
		p = p[:i]
	}
	ext := strings.ToLower(path.Ext(p))
	f, ok := formats[ext]
	return f, ext, ok
}
