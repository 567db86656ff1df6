package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testImage returns a 3x2 image with distinct pixels
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(2, 0, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(0, 1, color.RGBA{1, 2, 3, 255})
	img.SetRGBA(1, 1, color.RGBA{128, 128, 128, 255})
	img.SetRGBA(2, 1, color.RGBA{255, 255, 255, 255})
	return img
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testImage()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n3 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"1 2 3\n" +
		"128 128 128\n" +
		"255 255 255\n"
	if buf.String() != expected {
		t.Errorf("Unexpected P3 output:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestWritePPMBinary(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPMBinary(&buf, testImage()); err != nil {
		t.Fatalf("WritePPMBinary failed: %v", err)
	}

	header := "P6\n3 2\n255\n"
	expected := append([]byte(header),
		255, 0, 0, 0, 255, 0, 0, 0, 255,
		1, 2, 3, 128, 128, 128, 255, 255, 255,
	)
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("Unexpected P6 output: %v", buf.Bytes())
	}
}

func TestWritePPM_SubImage(t *testing.T) {
	sub := testImage().SubImage(image.Rect(1, 1, 3, 2)).(*image.RGBA)

	var buf bytes.Buffer
	if err := WritePPM(&buf, sub); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	expected := "P3\n2 1\n255\n128 128 128\n255 255 255\n"
	if buf.String() != expected {
		t.Errorf("Unexpected P3 output for sub-image:\n%s", buf.String())
	}
}

func TestWritePNG(t *testing.T) {
	img := testImage()
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
	r, g, b, _ := decoded.At(0, 1).RGBA()
	if r>>8 != 1 || g>>8 != 2 || b>>8 != 3 {
		t.Errorf("Expected pixel (1,2,3), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		format  string
		prefix  string
		wantErr bool
	}{
		{FormatPPM, "P3\n", false},
		{FormatPPMBinary, "P6\n", false},
		{FormatPNG, "\x89PNG", false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := Encode(&buf, testImage(), tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte(tt.prefix)) {
				t.Errorf("Expected output to start with %q", tt.prefix)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
		wantErr  bool
	}{
		{"image.ppm", FormatPPM, false},
		{"out/render.PNG", FormatPNG, false},
		{"render.png", FormatPNG, false},
		{"render.jpg", "", true},
		{"render", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil || format != tt.expected {
				t.Errorf("Expected %q, got %q (err %v)", tt.expected, format, err)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	if ContentType(FormatPNG) != "image/png" {
		t.Errorf("Unexpected PNG content type %q", ContentType(FormatPNG))
	}
	if ContentType(FormatPPM) != "image/x-portable-pixmap" || ContentType(FormatPPMBinary) != "image/x-portable-pixmap" {
		t.Error("Expected pixmap content type for PPM formats")
	}
}
