// Package pipeline orchestrates the image-to-text conversion stages.
package pipeline

import (
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/fileaccess"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/logger"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/ocr"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/pdfwriter"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/preprocess"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/similarity"
)

// Processor converts document images to text and optionally persists the
// result as a PDF. Stages run strictly sequentially and block the caller;
// each call is independent, with no state retained between invocations. The
// recognition engine is fixed at construction.
type Processor struct {
	logger       *logger.Logger
	preprocessor *preprocess.Preprocessor
	extractor    *ocr.Extractor
	writer       *pdfwriter.Writer
}

// Config holds configuration for the processor
type Config struct {
	Logger *logger.Logger

	// Engine performs the actual text recognition.
	Engine ocr.Engine
}

// New creates a new processor around the configured engine
func New(cfg *Config) *Processor {
	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}

	return &Processor{
		logger:       log,
		preprocessor: preprocess.New(&preprocess.Config{Logger: log}),
		extractor:    ocr.NewExtractor(cfg.Engine, log),
		writer:       pdfwriter.New(&pdfwriter.Config{Logger: log}),
	}
}

// ProcessImage validates the path, preprocesses the image, and runs
// recognition, returning the extracted text. Failures from each stage are
// surfaced unchanged: *fileaccess.AccessError, *preprocess.ImageError, or
// *ocr.RecognitionError. No stage retries, and no partial result is returned.
func (p *Processor) ProcessImage(path string) (string, error) {
	log := p.logger.WithImage(path)
	log.Info("Processing image")

	if err := fileaccess.Validate(path); err != nil {
		log.WithError(err).Debug("File access check failed")
		return "", err
	}

	img, err := p.preprocessor.Preprocess(path)
	if err != nil {
		log.WithError(err).Debug("Preprocessing failed")
		return "", err
	}

	text, err := p.extractor.Extract(img)
	if err != nil {
		log.WithError(err).Debug("Recognition failed")
		return "", err
	}

	return text, nil
}

// SaveToPDF writes text to a timestamped PDF under outputDir (empty =
// the default output directory).
func (p *Processor) SaveToPDF(text, outputDir string) (*pdfwriter.Artifact, error) {
	return p.writer.Write(text, outputDir)
}

// Similarity reports how closely candidate matches reference, as a
// percentage in [0, 100] rounded to two decimals.
func (p *Processor) Similarity(reference, candidate string) float64 {
	return similarity.Percent(reference, candidate)
}
