// Package pdfwriter serializes recognized text into timestamped PDF files.
package pdfwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/unidoc/unipdf/v3/common"
	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"

	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/logger"
)

// init quiets unidoc's own logging; failures surface through error returns
func init() {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelError))
}

const (
	// DefaultOutputDir is where PDF artifacts land when no directory is given.
	DefaultOutputDir = "output"

	// timestampLayout produces human-sortable, second-granularity filenames.
	timestampLayout = "20060102_150405"

	fontSize   = 12
	lineHeight = 1.2
)

// WriteError reports a PDF that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write PDF %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Artifact describes a PDF produced by the Writer. It is written once and
// never mutated afterwards.
type Artifact struct {
	// Path is the location of the written file.
	Path string

	// CreatedAt is the write-time timestamp the filename was derived from.
	CreatedAt time.Time
}

// Validate checks that the written file parses as a PDF.
func (a *Artifact) Validate() error {
	conf := pdfcpumodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfcpumodel.ValidationRelaxed

	if err := api.ValidateFile(a.Path, conf); err != nil {
		return fmt.Errorf("PDF validation failed: %w", err)
	}
	return nil
}

// Writer persists recognized text as PDF documents
type Writer struct {
	logger *logger.Logger
}

// Config holds configuration for the writer
type Config struct {
	Logger *logger.Logger
}

// New creates a new writer instance
func New(cfg *Config) *Writer {
	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}
	return &Writer{logger: log}
}

// Write lays out text as a flowed letter-format document in a fixed 12pt
// font and saves it under outputDir as converted_<timestamp>.pdf. The
// directory, including intermediates, is created when absent; an empty
// outputDir means DefaultOutputDir. Content that overflows the page
// continues on additional pages.
//
// Filenames collide only when two writes land within the same second, an
// accepted limitation of timestamp naming.
func (w *Writer) Write(text, outputDir string) (*Artifact, error) {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, &WriteError{Path: outputDir, Err: err}
	}

	now := time.Now()
	path := filepath.Join(outputDir, fmt.Sprintf("converted_%s.pdf", now.Format(timestampLayout)))

	font, err := model.NewStandard14Font(model.HelveticaName)
	if err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}

	c := creator.New()
	c.SetPageSize(creator.PageSizeLetter)
	c.NewPage()

	p := c.NewParagraph(text)
	p.SetFont(font)
	p.SetFontSize(fontSize)
	p.SetLineHeight(lineHeight)
	p.SetEnableWrap(true)

	// The creator starts new pages itself when the paragraph overflows.
	if err := c.Draw(p); err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}

	if err := c.WriteToFile(path); err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}

	w.logger.WithFields("path", path, "chars", len(text)).Info("Wrote PDF")

	return &Artifact{Path: path, CreatedAt: now}, nil
}
