// Package extract defines the contracts of the external collaborators that
// feed the pipeline. The OCR engines and the regex field extractors run out
// of process; this core only consumes their output.
package extract

import "context"

// TextProducer is one OCR engine: document file -> full text.
type TextProducer interface {
	// Metodo is the stable engine identifier stored with every row it produces.
	Metodo() string
	ExtractText(ctx context.Context, path string) (string, error)
}

// FieldExtractor turns one engine's full text into raw candidate values.
// Values are unvalidated strings; scoring happens downstream.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, metodo, texto string) ([]RawField, error)
}

// RawField is one candidate value as produced by an extractor.
type RawField struct {
	Campo string
	Valor string
}
