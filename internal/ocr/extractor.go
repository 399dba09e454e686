package ocr

import (
	"image"
	"time"

	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/logger"
)

// Extractor runs an Engine and normalizes its failures.
type Extractor struct {
	engine Engine
	logger *logger.Logger
}

// NewExtractor creates an extractor around the given engine.
func NewExtractor(engine Engine, log *logger.Logger) *Extractor {
	if log == nil {
		log = logger.Get()
	}
	return &Extractor{
		engine: engine,
		logger: log,
	}
}

// Extract performs recognition on img and returns the recognized text. Any
// engine failure, whatever its cause, is reported as a *RecognitionError
// carrying the underlying message.
func (x *Extractor) Extract(img image.Image) (string, error) {
	start := time.Now()

	text, err := x.engine.Recognize(img)
	if err != nil {
		return "", &RecognitionError{Engine: x.engine.Name(), Err: err}
	}

	x.logger.WithFields(
		"engine", x.engine.Name(),
		"chars", len(text),
		"duration", time.Since(start),
	).Info("Recognition completed")

	return text, nil
}
