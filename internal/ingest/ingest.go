package ingest

import (
	"context"
)

// FileResult is the per-file registration outcome. A multi-page PDF
// produces one document per page, all listed in DocumentIDs.
type FileResult struct {
	SourcePath   string
	DocumentIDs  []int
	Deduplicated bool
	HashHex      string
	Paginas      int
	Err          string
}

// DirStats summarizes a directory registration pass.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Registrar is the behavior the commands depend on.
type Registrar interface {
	// RegisterPath registers a single PDF.
	RegisterPath(ctx context.Context, path string) (FileResult, error)
	// RegisterDirectory registers all matching files under root.
	RegisterDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error)
}
