package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/internal/repository"
)

// Deliverer hands a finished workbook to the downstream consumer. The
// default implementation writes into a local directory; remote transports
// plug in behind the same interface.
type Deliverer interface {
	Deliver(ctx context.Context, nombre string, contenido []byte) (destino string, err error)
}

// DirDeliverer drops workbooks into a flat output directory.
type DirDeliverer struct {
	Dir string
}

func (d DirDeliverer) Deliver(_ context.Context, nombre string, contenido []byte) (string, error) {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", err
	}
	destino := filepath.Join(d.Dir, nombre)
	if err := os.WriteFile(destino, contenido, 0o644); err != nil {
		return "", err
	}
	return destino, nil
}

// Service produces one XLSX workbook per consolidated document and hands it
// to the Deliverer.
type Service struct {
	docsRepo repository.DocumentRepository
	consRepo repository.ConsolidadoRepository
	sink     Deliverer
	logger   *slog.Logger

	// OrigenDir/ProcesadosDir relocate the source PDF after a successful
	// delivery. Both empty disables the move.
	OrigenDir     string
	ProcesadosDir string
}

func NewService(docs repository.DocumentRepository, cons repository.ConsolidadoRepository, sink Deliverer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docsRepo: docs, consRepo: cons, sink: sink, logger: logger}
}

// WorkbookXLSX renders the consolidated fields of one document as XLSX bytes.
func (s *Service) WorkbookXLSX(ctx context.Context, documentoID int) ([]byte, int, error) {
	start := time.Now()

	doc, err := s.docsRepo.GetByID(ctx, documentoID)
	if err != nil {
		return nil, 0, fmt.Errorf("get document: %w", err)
	}
	rows, err := s.consRepo.ListByDocumento(ctx, documentoID)
	if err != nil {
		return nil, 0, fmt.Errorf("query consolidated: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Campos"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Documento", "Archivo", "Campo", "Valor", "Metodo"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	fila := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, fila)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, doc.ID)
		write(2, doc.NombreArchivo)
		write(3, r.Campo)
		write(4, r.Valor)
		write(5, r.Metodo)
		fila++
	}

	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 24)
	_ = f.SetColWidth(sheet, "D", "D", 40)
	_ = f.SetColWidth(sheet, "E", "E", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"documento_id", documentoID,
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(rows), nil
}

// Deliver renders and ships the workbook of one consolidated document, then
// advances it to estado entregado. Documents without consolidated rows are
// skipped with a warning instead of shipping an empty workbook.
func (s *Service) Deliver(ctx context.Context, documentoID int) (bool, error) {
	contenido, n, err := s.WorkbookXLSX(ctx, documentoID)
	if err != nil {
		return false, err
	}
	if n == 0 {
		s.logger.Warn("deliver.skip.vacio", "documento_id", documentoID)
		return false, nil
	}

	doc, err := s.docsRepo.GetByID(ctx, documentoID)
	if err != nil {
		return false, err
	}
	nombre := fmt.Sprintf("documento_%d_%s.xlsx", doc.ID, trimExt(doc.NombreArchivo))
	destino, err := s.sink.Deliver(ctx, nombre, contenido)
	if err != nil {
		return false, fmt.Errorf("deliver %s: %w", nombre, err)
	}

	claimed, err := s.docsRepo.Transition(ctx, documentoID, constants.EstadoConsolidado, constants.EstadoEntregado)
	if err != nil {
		return false, err
	}
	if !claimed {
		s.logger.Warn("deliver.claim.lost", "documento_id", documentoID)
		return false, nil
	}
	s.archivePDF(doc.NombreArchivo)
	s.logger.Info("deliver.ok", "documento_id", documentoID, "destino", destino)
	return true, nil
}

// archivePDF moves the delivered document's PDF out of the working area.
// Failures only warn: the row already advanced and a stray file is cheaper
// than a stuck document.
func (s *Service) archivePDF(nombre string) {
	if s.OrigenDir == "" || s.ProcesadosDir == "" {
		return
	}
	src := filepath.Join(s.OrigenDir, nombre)
	if _, err := os.Stat(src); err != nil {
		return
	}
	if err := os.MkdirAll(s.ProcesadosDir, 0o755); err != nil {
		s.logger.Warn("deliver.archive.mkdir_failed", "err", err)
		return
	}
	if err := os.Rename(src, filepath.Join(s.ProcesadosDir, nombre)); err != nil {
		s.logger.Warn("deliver.archive.move_failed", "archivo", nombre, "err", err)
	}
}

// DeliverAll ships every document sitting in estado consolidado.
func (s *Service) DeliverAll(ctx context.Context) (int, error) {
	docs, err := s.docsRepo.ListByEstado(ctx, constants.EstadoConsolidado)
	if err != nil {
		return 0, err
	}
	entregados := 0
	for _, d := range docs {
		ok, err := s.Deliver(ctx, d.ID)
		if err != nil {
			s.logger.Error("deliver.documento.failed", "documento_id", d.ID, "err", err)
			continue
		}
		if ok {
			entregados++
		}
	}
	return entregados, nil
}

func trimExt(nombre string) string {
	base := filepath.Base(nombre)
	return base[:len(base)-len(filepath.Ext(base))]
}
