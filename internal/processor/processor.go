// Package processor wires the metadata stages together and hands each
// note to the note-creation sink.
package processor

import (
	"fmt"
	"os"

	"github.com/sgx-labs/notegate/internal/config"
	"github.com/sgx-labs/notegate/internal/fileprops"
	"github.com/sgx-labs/notegate/internal/frontmatter"
	"github.com/sgx-labs/notegate/internal/metadata"
	"github.com/sgx-labs/notegate/internal/spotlight"
)

// Sink receives the finished metadata record and content for one note.
// The note-creation service behind it is not this package's concern.
type Sink interface {
	CreateNote(rec metadata.Record, content string) error
}

// Processor runs every metadata stage over one note. Stateless: nothing
// is retained between Run calls.
type Processor struct {
	fileProps *metadata.Aggregator
	spotlight *metadata.Aggregator
	legacy    *frontmatter.LegacyProcessor
	yaml      frontmatter.YAMLProcessor
	sink      Sink
}

// New builds a Processor from the configured key tables and the injected
// capabilities. The substituter is used only by the legacy stage.
func New(cfg *config.Config, sub frontmatter.Substituter, q spotlight.Querier, sink Sink) (*Processor, error) {
	if sub == nil {
		return nil, fmt.Errorf("processor: substituter is required")
	}
	if sink == nil {
		return nil, fmt.Errorf("processor: sink is required")
	}

	fp, err := fileprops.NewProcessor(cfg.Keys.File)
	if err != nil {
		return nil, fmt.Errorf("file properties: %w", err)
	}
	sp, err := spotlight.NewProcessor(cfg.Keys.Spotlight, q)
	if err != nil {
		return nil, fmt.Errorf("spotlight properties: %w", err)
	}

	return &Processor{
		fileProps: fp,
		spotlight: sp,
		legacy:    frontmatter.NewLegacyProcessor(sub),
		sink:      sink,
	}, nil
}

// Run processes one note and hands the result to the sink. The file is
// opened once and closed on every exit path; the stages share the handle
// and each seeks back to the start before reading.
func (p *Processor) Run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open note: %w", err)
	}
	defer f.Close()

	fileRec, err := p.fileProps.Process(f)
	if err != nil {
		return fmt.Errorf("file properties: %w", err)
	}

	spotRec, err := p.spotlight.Process(f)
	if err != nil {
		return fmt.Errorf("spotlight properties: %w", err)
	}

	// legacyContent is the rewritten document when sigil lines were
	// found, otherwise the original text.
	legacyRec, legacyContent, _, err := p.legacy.Process(f)
	if err != nil {
		return err
	}

	yamlRec, body, found := p.yaml.Process(f)

	// Later stages win key collisions: frontmatter metadata is the most
	// user-specific, so it overrides the OS index, which overrides the
	// filesystem.
	rec := combine(fileRec, spotRec, legacyRec, yamlRec)

	content := legacyContent
	if found {
		content = body
	}

	if err := p.sink.CreateNote(rec, content); err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// combine overlays the records in order, later ones winning collisions.
// Keys whose merged value came back as an empty sequence are dropped so
// the final record never carries placeholder entries.
func combine(recs ...metadata.Record) metadata.Record {
	out := make(metadata.Record)
	for _, rec := range recs {
		for key, val := range rec {
			if val == nil {
				continue
			}
			if seq, ok := val.([]any); ok && len(seq) == 0 {
				continue
			}
			out[key] = val
		}
	}
	return out
}
