package main

import (
	"fmt"
	"os"

	"github.com/propeller-tools/go-propeller/image"
)

// readImage loads an image file into the model. The library itself does no
// file I/O; the CLI is the boundary where bytes meet storage.
func readImage(path string) (*image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return image.New(data, path), nil
}

// writeImage persists the image buffer back to storage.
func writeImage(img *image.Image, path string) error {
	if err := os.WriteFile(path, img.Data(), 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}
