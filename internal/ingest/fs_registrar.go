package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/facturascan/pipeline/internal/common"
	"github.com/facturascan/pipeline/internal/repository"
)

// Byte density per page above which a PDF is treated as a scan. Native
// (digitally produced) invoices compress far below this; page-sized images
// do not.
const umbralBytesEscaneado = 120 * 1024

// FSRegistrar registers PDFs from the local filesystem: hash, page split,
// kind heuristic, then one documento row per page.
type FSRegistrar struct {
	DocsRepo repository.DocumentRepository
	Paths    common.PathsConfig
	Logger   *slog.Logger
}

func NewFSRegistrar(docs repository.DocumentRepository, paths common.PathsConfig, logger *slog.Logger) *FSRegistrar {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSRegistrar{DocsRepo: docs, Paths: paths, Logger: logger}
}

func (r *FSRegistrar) RegisterPath(ctx context.Context, path string) (FileResult, error) {
	out := FileResult{SourcePath: path}

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}
	if !AllowedExt(filepath.Ext(abs)) {
		return out, fmt.Errorf("unsupported or missing extension: %q", filepath.Ext(abs))
	}

	sum, size, err := hashFile(abs)
	if err != nil {
		return out, r.moveToErrors(abs, fmt.Errorf("hash: %w", err))
	}
	out.HashHex = hex.EncodeToString(sum)

	// Optimize normalizes malformed producers before page counting; a PDF
	// pdfcpu cannot repair goes straight to the error area.
	optimized := filepath.Join(os.TempDir(), fmt.Sprintf("facturascan_%s.pdf", out.HashHex[:16]))
	defer func() { _ = os.Remove(optimized) }()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.OptimizeFile(abs, optimized, conf); err != nil {
		return out, r.moveToErrors(abs, fmt.Errorf("optimize: %w", err))
	}
	paginas, err := api.PageCountFile(optimized)
	if err != nil {
		return out, r.moveToErrors(abs, fmt.Errorf("page count: %w", err))
	}
	out.Paginas = paginas

	tipo, ppi, calidad := classify(size, paginas)

	if paginas <= 1 {
		doc, dup, err := r.DocsRepo.Register(ctx, repository.RegisterParams{
			NombreArchivo:     filepath.Base(abs),
			HashArchivo:       out.HashHex,
			TamanoBytes:       size,
			NumeroPaginas:     1,
			TipoDocumento:     tipo,
			ResolucionPPI:     ppi,
			CalidadEstimativa: calidad,
		})
		if err != nil {
			return out, r.moveToErrors(abs, err)
		}
		if filepath.Dir(abs) != filepath.Clean(r.Paths.ParaProcesar) {
			if err := moveFile(abs, filepath.Join(r.Paths.ParaProcesar, filepath.Base(abs))); err != nil {
				r.Logger.Warn("register.move_failed", "path", abs, "err", err)
			}
		}
		out.DocumentIDs = append(out.DocumentIDs, doc.ID)
		out.Deduplicated = dup
		return out, nil
	}

	// One documento per page. The split original moves to the parents area
	// so delivery never ships a multi-page file.
	splitDir, err := os.MkdirTemp("", "facturascan_split_")
	if err != nil {
		return out, err
	}
	defer func() { _ = os.RemoveAll(splitDir) }()
	if err := api.SplitFile(optimized, splitDir, 1, nil); err != nil {
		return out, r.moveToErrors(abs, fmt.Errorf("split: %w", err))
	}

	base := strings.TrimSuffix(filepath.Base(optimized), ".pdf")
	parentName := filepath.Base(abs)
	for i := 1; i <= paginas; i++ {
		pagePath := filepath.Join(splitDir, fmt.Sprintf("%s_%d.pdf", base, i))
		pageName := fmt.Sprintf("%s_pagina_%d.pdf", strings.TrimSuffix(parentName, ".pdf"), i)
		pageSum, pageSize, err := hashFile(pagePath)
		if err != nil {
			return out, r.moveToErrors(abs, fmt.Errorf("hash page %d: %w", i, err))
		}
		destino := filepath.Join(r.Paths.ParaProcesar, pageName)
		if err := moveFile(pagePath, destino); err != nil {
			return out, r.moveToErrors(abs, fmt.Errorf("place page %d: %w", i, err))
		}
		doc, dup, err := r.DocsRepo.Register(ctx, repository.RegisterParams{
			NombreArchivo:     pageName,
			ArchivoPadre:      parentName,
			HashArchivo:       hex.EncodeToString(pageSum),
			TamanoBytes:       pageSize,
			NumeroPaginas:     1,
			TipoDocumento:     tipo,
			ResolucionPPI:     ppi,
			CalidadEstimativa: calidad,
		})
		if err != nil {
			return out, r.moveToErrors(abs, err)
		}
		out.DocumentIDs = append(out.DocumentIDs, doc.ID)
		out.Deduplicated = out.Deduplicated || dup
	}

	if err := moveFile(abs, filepath.Join(r.Paths.ArchivosPadres, parentName)); err != nil {
		r.Logger.Warn("register.parent.move_failed", "path", abs, "err", err)
	}
	return out, nil
}

// RegisterDirectory walks root, skips hidden entries if requested, and
// registers every PDF found. Per-file failures land in the stats, never
// abort the walk.
func (r *FSRegistrar) RegisterDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		res, err := r.RegisterPath(ctx, path)
		if err != nil {
			res.Err = err.Error()
			results = append(results, res)
			stats.Failed++
			return nil
		}
		results = append(results, res)
		stats.Succeeded++
		if res.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

// moveToErrors relocates a failed artifact into the error area next to a
// sidecar .log note explaining the failure, then returns cause.
func (r *FSRegistrar) moveToErrors(path string, cause error) error {
	if err := os.MkdirAll(r.Paths.Errores, 0o755); err != nil {
		r.Logger.Error("register.errores.mkdir_failed", "err", err)
		return cause
	}
	destino := filepath.Join(r.Paths.Errores, filepath.Base(path))
	if err := moveFile(path, destino); err != nil {
		r.Logger.Error("register.errores.move_failed", "path", path, "err", err)
		return cause
	}
	nota := fmt.Sprintf("%s  %s\n%v\n", time.Now().Format(time.RFC3339), filepath.Base(path), cause)
	if err := os.WriteFile(destino+".log", []byte(nota), 0o644); err != nil {
		r.Logger.Error("register.errores.nota_failed", "path", destino, "err", err)
	}
	r.Logger.Warn("register.errores.moved", "path", path, "destino", destino, "err", cause)
	return cause
}

func classify(size int64, paginas int) (tipo string, ppi float64, calidad int) {
	if paginas < 1 {
		paginas = 1
	}
	porPagina := size / int64(paginas)
	if porPagina < umbralBytesEscaneado {
		return "nativo", 0, 5
	}
	// Scan density maps to the usual office-scanner settings.
	switch {
	case porPagina > 1<<20:
		return "escaneado", 300, 4
	case porPagina > 512*1024:
		return "escaneado", 200, 3
	default:
		return "escaneado", 150, 2
	}
}

func hashFile(path string) ([]byte, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return nil, 0, err
	}
	return h.Sum(nil), n, nil
}

// moveFile renames, falling back to copy+remove across filesystems.
func moveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
