package ocr

import (
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract recognizes text through the linked Tesseract library. A fresh
// client is created per call; the engine itself holds no state between
// invocations.
type Tesseract struct {
	languages []string
}

// NewTesseract creates a Tesseract engine for the given language codes
// (default: eng).
func NewTesseract(languages []string) *Tesseract {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &Tesseract{languages: languages}
}

// Name identifies the engine implementation.
func (t *Tesseract) Name() string { return EngineTesseract }

// Recognize extracts text from img.
func (t *Tesseract) Recognize(img image.Image) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("failed to set OCR language: %w", err)
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image data: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to recognize text: %w", err)
	}

	return text, nil
}
