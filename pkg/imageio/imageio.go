// Package imageio encodes rendered frames as portable pixmaps or PNG.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for an output format that has no encoder
var ErrUnknownFormat = errors.New("imageio: unknown image format")

// Supported output formats
const (
	FormatPPM       = "ppm"        // Plain text P3 pixmap
	FormatPPMBinary = "ppm-binary" // Raw P6 pixmap
	FormatPNG       = "png"
)

// Formats lists the supported output formats
func Formats() []string {
	return []string{FormatPPM, FormatPPMBinary, FormatPNG}
}

// WritePPM writes img as a plain P3 pixmap: a "P3\n<w> <h>\n255\n" header
// followed by one "r g b" line per pixel in raster order
func WritePPM(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WritePPMBinary writes img as a raw P6 pixmap
func WritePPMBinary(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	row := make([]byte, 3*bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for i, x := 0, bounds.Min.X; x < bounds.Max.X; i, x = i+3, x+1 {
			c := img.RGBAAt(x, y)
			row[i], row[i+1], row[i+2] = c.R, c.G, c.B
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePNG writes img as a PNG
func WritePNG(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}

// Encode writes img in the named format
func Encode(w io.Writer, img *image.RGBA, format string) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPPMBinary:
		return WritePPMBinary(w, img)
	case FormatPNG:
		return WritePNG(w, img)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// FormatFromPath infers the output format from a file extension
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format from extension %q", ErrUnknownFormat, ext)
	}
}

// ContentType returns the MIME type of a format
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatPPM, FormatPPMBinary:
		return "image/x-portable-pixmap"
	default:
		return "application/octet-stream"
	}
}
