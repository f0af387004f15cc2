// Package export writes and reads CPU-reference noise frames as image files.
package export

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/richinsley/staticnoise/noise"
	"github.com/richinsley/staticnoise/probe"
)

// SaveSnapshot renders a width x height frame at time t and writes it as PNG.
func SaveSnapshot(path string, width, height int, t float32) error {
	if err := imgio.Save(path, noise.Frame(width, height, t), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}

// LoadGray opens any image bild can decode and converts it to grayscale.
func LoadGray(path string) (*image.Gray, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return probe.ToGray(img), nil
}
