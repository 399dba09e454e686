// Package ocr extracts text from preprocessed document images.
//
// Recognition is delegated to an Engine, a capability boundary behind which
// the actual recognition implementation lives. The engine location is fixed
// at construction; every engine failure is re-signaled as *RecognitionError
// so callers never depend on an engine's native error shape.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/logger"
)

// Supported values for Config.Engine.
const (
	// EngineTesseract uses the linked Tesseract library.
	EngineTesseract = "tesseract"

	// EngineCommand invokes a tesseract executable at a configured path.
	EngineCommand = "command"

	// EngineRemote sends images to a vision service at a configured address.
	EngineRemote = "remote"
)

// Engine performs text recognition on a single image.
type Engine interface {
	// Name identifies the engine implementation.
	Name() string

	// Recognize extracts text from img.
	Recognize(img image.Image) (string, error)
}

// Config holds engine selection and location. It is supplied once at process
// startup; engines hold no mutable state afterwards.
type Config struct {
	Logger *logger.Logger

	// Engine selects the implementation: tesseract (default), command, or remote.
	Engine string

	// Languages are Tesseract language codes (default: ["eng"]).
	Languages []string

	// ExecutablePath is the tesseract binary location for the command engine.
	ExecutablePath string

	// Endpoint is the recognition service address for the remote engine.
	Endpoint string

	// Model is the vision model name for the remote engine.
	Model string
}

// NewEngine creates the recognition engine selected by cfg.
func NewEngine(cfg *Config) (Engine, error) {
	switch cfg.Engine {
	case "", EngineTesseract:
		return NewTesseract(cfg.Languages), nil

	case EngineCommand:
		if cfg.ExecutablePath == "" {
			return nil, fmt.Errorf("an executable path is required for the command engine")
		}
		return NewCommand(cfg.ExecutablePath, cfg.Languages), nil

	case EngineRemote:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("an endpoint is required for the remote engine")
		}
		return NewRemote(cfg.Endpoint, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unsupported engine: %s (supported: tesseract, command, remote)", cfg.Engine)
	}
}

// RecognitionError wraps any failure raised by an Engine.
type RecognitionError struct {
	Engine string
	Err    error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognition failed (%s engine): %v", e.Engine, e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }

// encodePNG serializes an image for engines that consume encoded bytes.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
