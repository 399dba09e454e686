// Package preprocess prepares scanned document images for text recognition.
//
// The pipeline is deterministic: decode, luminance conversion, a
// dilate-then-erode closing pass to suppress thin stroke noise, then global
// binarization with an automatically selected threshold.
package preprocess

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"

	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/logger"
)

const (
	// fallbackThreshold is the fixed midpoint cutoff used when the intensity
	// histogram is degenerate and automatic selection cannot split it.
	fallbackThreshold = 128

	// defaultClosingRadius is the structuring-element radius for the
	// dilate/erode pass. Radius 0 is a 1x1 element, which leaves pixels
	// untouched but keeps the ordering of the stage fixed; a larger radius
	// can be configured for noisier scans.
	defaultClosingRadius = 0
)

// ImageError reports a file that could not be decoded into an image.
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }

// Preprocessor converts raw image files into binary images suitable for OCR
type Preprocessor struct {
	logger *logger.Logger
	radius int
}

// Config holds configuration for the preprocessor
type Config struct {
	Logger *logger.Logger

	// ClosingRadius overrides the structuring-element radius (0 = 1x1 element)
	ClosingRadius int
}

// New creates a new preprocessor
func New(cfg *Config) *Preprocessor {
	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}

	radius := cfg.ClosingRadius
	if radius < 0 {
		radius = defaultClosingRadius
	}

	return &Preprocessor{
		logger: log,
		radius: radius,
	}
}

// Preprocess decodes the image at path and produces a two-level grayscale
// image ready for recognition. The image format is inferred from file
// content; PNG and JPEG are supported at minimum. Dark foreground pixels are
// 0 and the background is 255, the polarity Tesseract expects.
//
// The path is assumed to have passed access validation; a file that exists
// but cannot be decoded (corrupt, truncated, or an unsupported format) fails
// with *ImageError.
func (p *Preprocessor) Preprocess(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	src, err := imaging.Decode(f)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}

	gray := toGray(imaging.Grayscale(src))
	closed := erode(dilate(gray, p.radius), p.radius)

	threshold, auto := otsuThreshold(closed)
	binary := binarize(closed, threshold)

	bounds := binary.Bounds()
	p.logger.WithFields(
		"path", path,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"threshold", threshold,
		"auto_threshold", auto,
	).Debug("Preprocessed image")

	return binary, nil
}

// toGray extracts the single luminance channel from an already-grayscaled
// NRGBA image. The red channel suffices since all channels are equal.
func toGray(src *image.NRGBA) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := src.PixOffset(x, y)
			dst.SetGray(x, y, color.Gray{Y: src.Pix[i]})
		}
	}
	return dst
}

// dilate applies a grayscale dilation (maximum filter) with a square
// structuring element of side 2*radius+1. Radius 0 is the identity.
func dilate(src *image.Gray, radius int) *image.Gray {
	return rankFilter(src, radius, func(a, b uint8) bool { return a > b })
}

// erode applies a grayscale erosion (minimum filter) with a square
// structuring element of side 2*radius+1. Radius 0 is the identity.
func erode(src *image.Gray, radius int) *image.Gray {
	return rankFilter(src, radius, func(a, b uint8) bool { return a < b })
}

func rankFilter(src *image.Gray, radius int, better func(a, b uint8) bool) *image.Gray {
	if radius <= 0 {
		return src
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			best := src.GrayAt(x, y).Y
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < bounds.Min.X || nx >= bounds.Max.X || ny < bounds.Min.Y || ny >= bounds.Max.Y {
						continue
					}
					if v := src.GrayAt(nx, ny).Y; better(v, best) {
						best = v
					}
				}
			}
			dst.SetGray(x, y, color.Gray{Y: best})
		}
	}
	return dst
}

// otsuThreshold selects the cutoff that maximizes between-class intensity
// variance over the image histogram. The second return reports whether
// automatic selection succeeded; on a degenerate histogram (a single
// intensity) the fixed midpoint is returned instead.
func otsuThreshold(img *image.Gray) (uint8, bool) {
	var hist [256]int
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[img.GrayAt(x, y).Y]++
		}
	}

	var sumAll float64
	for v, count := range hist {
		sumAll += float64(v) * float64(count)
	}

	var (
		sumBg        float64
		weightBg     int
		bestVariance float64
		best         int
	)
	for v := 0; v < 256; v++ {
		weightBg += hist[v]
		if weightBg == 0 {
			continue
		}
		weightFg := total - weightBg
		if weightFg == 0 {
			break
		}

		sumBg += float64(v) * float64(hist[v])
		meanBg := sumBg / float64(weightBg)
		meanFg := (sumAll - sumBg) / float64(weightFg)

		variance := float64(weightBg) * float64(weightFg) * (meanBg - meanFg) * (meanBg - meanFg)
		if variance > bestVariance {
			bestVariance = variance
			best = v
		}
	}

	if bestVariance == 0 {
		return fallbackThreshold, false
	}
	return uint8(best), true
}

// binarize maps every pixel above threshold to 255 and the rest to 0.
func binarize(src *image.Gray, threshold uint8) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if src.GrayAt(x, y).Y > threshold {
				dst.SetGray(x, y, color.Gray{Y: 255})
			} else {
				dst.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return dst
}
