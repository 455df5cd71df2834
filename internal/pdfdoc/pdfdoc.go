// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc implements the PDF editor's document operations: merge,
// split, text stamping, and text block extraction and revision. Document
// work is delegated to pdfcpu; every operation loads its inputs, writes its
// outputs, and releases everything before returning.
package pdfdoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"

	"github.com/pdiddy/deskkit/pkg/types"
)

var (
	// ErrNoInputs is returned when an operation is given no input documents.
	ErrNoInputs = errors.New("no input documents")

	// ErrPageOutOfRange is returned for a page number outside 1..page count.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrNoText is returned when the text to stamp is empty or blank.
	ErrNoText = errors.New("no text to add")
)

func init() {
	// Keep pdfcpu from creating its own config directory under the user's
	// home on first use.
	api.DisableConfigDir()
}

// Editor runs document operations with one set of PDF settings.
type Editor struct {
	cfg types.PDFConfig
	log zerolog.Logger
}

// New returns an Editor. Zero values in cfg fall back to the defaults from
// types.DefaultConfig.
func New(cfg types.PDFConfig, log zerolog.Logger) *Editor {
	def := types.DefaultConfig().PDF
	if cfg.FontName == "" {
		cfg.FontName = def.FontName
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.EdgeOffset < 0 {
		cfg.EdgeOffset = def.EdgeOffset
	}
	if cfg.SplitPrefix == "" {
		cfg.SplitPrefix = def.SplitPrefix
	}
	return &Editor{
		cfg: cfg,
		log: log.With().Str("component", "pdfdoc").Logger(),
	}
}

// Config returns the effective settings.
func (e *Editor) Config() types.PDFConfig {
	return e.cfg
}

// newConfiguration returns a fresh pdfcpu configuration. pdfcpu records the
// running command in the configuration, so each call gets its own.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount returns the number of pages in the PDF at path.
func (e *Editor) PageCount(path string) (int, error) {
	data, err := readPDF(path)
	if err != nil {
		return 0, err
	}
	return pageCount(data)
}

func pageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), newConfiguration())
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return n, nil
}

// readPDF loads a whole document into memory.
func readPDF(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", path, err)
	}
	return data, nil
}

// writeAtomic writes data to path through a temporary file in the same
// directory so readers never observe a partially written document.
func writeAtomic(path string, data []byte) error {
	return writeAtomicFunc(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// writeAtomicFunc is writeAtomic for producers that stream their output.
func writeAtomicFunc(path string, produce func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".deskkit-*.pdf")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if err := produce(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("moving output into place at %s: %w", path, err)
	}
	return nil
}

func checkPage(page, count int) error {
	if page < 1 || page > count {
		return fmt.Errorf("%w: page %d, document has %d page(s)", ErrPageOutOfRange, page, count)
	}
	return nil
}

func canceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
