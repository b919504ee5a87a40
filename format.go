package holdings

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a physical file format for portfolios and reports.
type Format int

const (
	// Parquet is the columnar binary format, the default for portfolio exports.
	Parquet Format = iota
	// CSV is delimited text, the default for reports.
	CSV
	// JSONL holds one JSON object per line.
	JSONL
)

// Extension returns the file extension of the format, dot included.
func (f Format) Extension() string {
	switch f {
	case CSV:
		return ".csv"
	case JSONL:
		return ".jsonl"
	default:
		return ".parquet"
	}
}

func (f Format) String() string { return strings.TrimPrefix(f.Extension(), ".") }

// ResolveFormat returns the format of 'path' given by its extension. A path
// without extension gets the extension of 'def' appended.
func ResolveFormat(path string, def Format) (string, Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "":
		return path + def.Extension(), def, nil
	case ".parquet":
		return path, Parquet, nil
	case ".csv":
		return path, CSV, nil
	case ".jsonl":
		return path, JSONL, nil
	}
	return path, def, fmt.Errorf("%q: %w %q (use .parquet, .csv or .jsonl)", path, ErrUnsupportedFormat, ext)
}
