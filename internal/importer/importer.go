package importer

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/internal/extract"
	"github.com/facturascan/pipeline/internal/repository"
)

// Record is one extractor candidate as shipped in the JSONL batches.
type Record struct {
	DocumentoID   int    `json:"documento_id"`
	Metodo        string `json:"metodo"`
	Campo         string `json:"campo"`
	Valor         string `json:"valor"`
	ArchivoOrigen string `json:"archivo_origen"`
}

type Stats struct {
	Lineas     int
	Invalidas  int
	Insertadas int
	Documentos int
}

// Service ingests extractor candidate batches and advances each touched
// document from texto_ok to campos_ok.
type Service struct {
	DocsRepo   repository.DocumentRepository
	CamposRepo repository.CampoRepository
	TextosRepo repository.TextoRepository
	Logger     *slog.Logger
}

func NewService(docs repository.DocumentRepository, campos repository.CampoRepository, textos repository.TextoRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{DocsRepo: docs, CamposRepo: campos, TextosRepo: textos, Logger: logger}
}

// ImportJSONL reads one candidate batch. Every line is validated against the
// record schema; invalid lines are counted and skipped so a single bad line
// cannot sink the batch. Rows are grouped per (documento, metodo) and
// inserted at the document's current generation.
//
// With reprocesar set, the live candidate rows of every touched document are
// superseded first and the batch lands at the next generation, so a forced
// re-extraction never mixes with stale rows.
func (s *Service) ImportJSONL(ctx context.Context, path string, reprocesar bool) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open batch: %w", err)
	}
	defer func() { _ = f.Close() }()

	schema, err := CompileSchema(BuildCandidateJSONSchema())
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	type grupo struct {
		documentoID   int
		metodo        string
		archivoOrigen string
		campos        []extract.RawField
	}
	grupos := map[string]*grupo{}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		st.Lineas++
		if err := ValidateLine(schema, []byte(line)); err != nil {
			st.Invalidas++
			s.Logger.Warn("import.linea.invalida", "linea", st.Lineas, "err", err)
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			st.Invalidas++
			continue
		}
		key := fmt.Sprintf("%d/%s", rec.DocumentoID, rec.Metodo)
		g, ok := grupos[key]
		if !ok {
			g = &grupo{documentoID: rec.DocumentoID, metodo: rec.Metodo, archivoOrigen: rec.ArchivoOrigen}
			grupos[key] = g
		}
		g.campos = append(g.campos, extract.RawField{Campo: rec.Campo, Valor: rec.Valor})
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("read batch: %w", err)
	}

	keys := make([]string, 0, len(grupos))
	for k := range grupos {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tocados := map[int]struct{}{}
	generaciones := map[int]int{}
	for _, k := range keys {
		g := grupos[k]
		gen, ok := generaciones[g.documentoID]
		if !ok {
			var err error
			if reprocesar {
				gen, err = s.CamposRepo.Supersede(ctx, g.documentoID)
			} else {
				gen, err = s.CamposRepo.GeneracionActual(ctx, g.documentoID)
			}
			if err != nil {
				return st, err
			}
			generaciones[g.documentoID] = gen
		}
		if err := s.CamposRepo.BulkInsert(ctx, g.documentoID, g.metodo, g.archivoOrigen, gen, g.campos); err != nil {
			return st, err
		}
		st.Insertadas += len(g.campos)
		tocados[g.documentoID] = struct{}{}
	}

	for id := range tocados {
		claimed, err := s.DocsRepo.Transition(ctx, id, constants.EstadoTextoOK, constants.EstadoCamposOK)
		if err != nil {
			return st, err
		}
		if !claimed {
			// Already past texto_ok: a later engine's batch for a document
			// whose first batch landed earlier. The rows still count.
			s.Logger.Debug("import.claim.skip", "documento_id", id)
		}
		if err := s.markTextosParsed(ctx, id); err != nil {
			return st, err
		}
	}
	st.Documentos = len(tocados)
	s.Logger.Info("import.ok",
		"lineas", st.Lineas, "invalidas", st.Invalidas,
		"insertadas", st.Insertadas, "documentos", st.Documentos)
	return st, nil
}

// TextRecord is one full-text extraction as shipped in the text batches.
type TextRecord struct {
	DocumentoID int    `json:"documento_id"`
	Metodo      string `json:"metodo"`
	Texto       string `json:"texto"`
}

// BuildTextJSONSchema returns the schema every imported text record must
// satisfy.
func BuildTextJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"documento_id": map[string]any{"type": "integer", "minimum": 1},
			"metodo":       map[string]any{"type": "string", "minLength": 1},
			"texto":        map[string]any{"type": "string"},
		},
		"required": []string{"documento_id", "metodo"},
	}
}

// ImportTextosJSONL reads one full-text batch, upserting per (documento,
// metodo) and advancing each touched document from registrado to texto_ok.
func (s *Service) ImportTextosJSONL(ctx context.Context, path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open batch: %w", err)
	}
	defer func() { _ = f.Close() }()

	schema, err := CompileSchema(BuildTextJSONSchema())
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	tocados := map[int]struct{}{}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		st.Lineas++
		if err := ValidateLine(schema, []byte(line)); err != nil {
			st.Invalidas++
			s.Logger.Warn("import.texto.invalido", "linea", st.Lineas, "err", err)
			continue
		}
		var rec TextRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			st.Invalidas++
			continue
		}
		if err := s.TextosRepo.Upsert(ctx, rec.DocumentoID, rec.Metodo, rec.Texto); err != nil {
			return st, err
		}
		st.Insertadas++
		tocados[rec.DocumentoID] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("read batch: %w", err)
	}

	for id := range tocados {
		claimed, err := s.DocsRepo.Transition(ctx, id, constants.EstadoRegistrado, constants.EstadoTextoOK)
		if err != nil {
			return st, err
		}
		if !claimed {
			s.Logger.Debug("import.texto.claim.skip", "documento_id", id)
		}
	}
	st.Documentos = len(tocados)
	s.Logger.Info("import.textos.ok",
		"lineas", st.Lineas, "invalidas", st.Invalidas,
		"insertadas", st.Insertadas, "documentos", st.Documentos)
	return st, nil
}

// markTextosParsed flags the full-text rows of a document once candidate
// fields derived from them have landed.
func (s *Service) markTextosParsed(ctx context.Context, documentoID int) error {
	textos, err := s.TextosRepo.ListByDocumento(ctx, documentoID)
	if err != nil {
		return err
	}
	ids := make([]int, 0, len(textos))
	for _, t := range textos {
		ids = append(ids, t.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	return s.TextosRepo.MarkParsed(ctx, ids)
}
