package pipeline

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/fileaccess"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/ocr"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/preprocess"
)

// fixedEngine is a stand-in recognition engine returning canned text.
type fixedEngine struct {
	text string
	err  error
	seen image.Image
}

func (f *fixedEngine) Name() string { return "fixed" }

func (f *fixedEngine) Recognize(img image.Image) (string, error) {
	f.seen = img
	return f.text, f.err
}

func writeScan(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "scan.png")
	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			c := color.RGBA{R: 250, G: 250, B: 245, A: 255}
			if x > 15 && x < 45 && y > 10 && y < 30 {
				c = color.RGBA{R: 10, G: 10, B: 10, A: 255}
			}
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create scan: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode scan: %v", err)
	}
	return path
}

func TestProcessImage_Success(t *testing.T) {
	engine := &fixedEngine{text: "HELLO WORLD"}
	proc := New(&Config{Engine: engine})

	path := writeScan(t, t.TempDir())
	text, err := proc.ProcessImage(path)
	if err != nil {
		t.Fatalf("ProcessImage() error = %v", err)
	}

	if text != "HELLO WORLD" {
		t.Errorf("ProcessImage() = %q, want %q", text, "HELLO WORLD")
	}

	// The engine must receive the preprocessed binary image, not raw pixels.
	gray, ok := engine.seen.(*image.Gray)
	if !ok {
		t.Fatalf("engine received %T, want *image.Gray", engine.seen)
	}
	values := make(map[uint8]bool)
	bounds := gray.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			values[gray.GrayAt(x, y).Y] = true
		}
	}
	if len(values) != 2 {
		t.Errorf("engine input has %d distinct intensities, want 2", len(values))
	}
}

func TestProcessImage_MissingFile(t *testing.T) {
	proc := New(&Config{Engine: &fixedEngine{}})

	_, err := proc.ProcessImage(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("ProcessImage() should fail for a missing file")
	}

	var accessErr *fileaccess.AccessError
	if !errors.As(err, &accessErr) {
		t.Errorf("error should be *fileaccess.AccessError, got %T", err)
	}
}

func TestProcessImage_CorruptImage(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "image.png")
	if err := os.WriteFile(path, []byte("0123456789"), 0644); err != nil {
		t.Fatalf("failed to create corrupt file: %v", err)
	}

	proc := New(&Config{Engine: &fixedEngine{}})
	_, err := proc.ProcessImage(path)

	var imgErr *preprocess.ImageError
	if !errors.As(err, &imgErr) {
		t.Errorf("error should be *preprocess.ImageError, got %T (%v)", err, err)
	}
}

func TestProcessImage_EngineFailure(t *testing.T) {
	proc := New(&Config{Engine: &fixedEngine{err: errors.New("engine exploded")}})

	path := writeScan(t, t.TempDir())
	_, err := proc.ProcessImage(path)
	if err == nil {
		t.Fatal("ProcessImage() should fail when the engine fails")
	}

	var recErr *ocr.RecognitionError
	if !errors.As(err, &recErr) {
		t.Errorf("error should be *ocr.RecognitionError, got %T", err)
	}
}

func TestSaveToPDF(t *testing.T) {
	proc := New(&Config{Engine: &fixedEngine{}})

	artifact, err := proc.SaveToPDF("recognized text", t.TempDir())
	if err != nil {
		t.Fatalf("SaveToPDF() error = %v", err)
	}

	if _, err := os.Stat(artifact.Path); err != nil {
		t.Errorf("artifact should exist: %v", err)
	}
}

func TestSimilarity(t *testing.T) {
	proc := New(&Config{Engine: &fixedEngine{}})

	if got := proc.Similarity("HELLO WORLD", "HELLO WORLD"); got != 100.0 {
		t.Errorf("Similarity() = %v, want 100.00", got)
	}

	if got := proc.Similarity("abc", "xyz"); got != 0.0 {
		t.Errorf("Similarity() = %v, want 0.00", got)
	}
}
