// Package surface loads the picture the ripples are drawn over.
package surface

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Decoders register themselves with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Patterns lists the file name patterns Load understands, for file dialogs.
var Patterns = []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp"}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("unsupported image type: %s", filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Supported reports whether path has an image extension Load accepts.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, p := range Patterns {
		if "*"+ext == p {
			return true
		}
	}
	return false
}

// Fit returns the scale and offset that draw an image of size (iw, ih)
// centered in (w, h), covering it completely.
func Fit(iw, ih, w, h int) (scale, dx, dy float64) {
	if iw <= 0 || ih <= 0 {
		return 1, 0, 0
	}
	sx := float64(w) / float64(iw)
	sy := float64(h) / float64(ih)
	scale = max(sx, sy)
	dx = (float64(w) - float64(iw)*scale) / 2
	dy = (float64(h) - float64(ih)*scale) / 2
	return scale, dx, dy
}
