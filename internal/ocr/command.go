package ocr

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strings"
)

// Command recognizes text by invoking a tesseract executable at a fixed,
// externally configured location. The preprocessed image is written to a
// temporary file and the recognized text read from stdout.
type Command struct {
	path      string
	languages []string
}

// NewCommand creates a command engine for the tesseract binary at path.
func NewCommand(path string, languages []string) *Command {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &Command{
		path:      path,
		languages: languages,
	}
}

// Name identifies the engine implementation.
func (c *Command) Name() string { return EngineCommand }

// Recognize extracts text from img.
func (c *Command) Recognize(img image.Image) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "recognize-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp image: %w", err)
	}

	cmd := exec.Command(c.path, tmpPath, "stdout", "-l", strings.Join(c.languages, "+"))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("tesseract invocation failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("tesseract invocation failed: %w", err)
	}

	return stdout.String(), nil
}
