package ingest

import (
	"path/filepath"
	"strings"
)

// AllowedExt reports whether ext names a registrable file. Only PDFs enter
// the pipeline; images are scanned to PDF upstream.
func AllowedExt(ext string) bool {
	return strings.ToLower(strings.TrimPrefix(ext, ".")) == "pdf"
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
