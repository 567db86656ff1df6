package renderer

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Create a 2x2 image
	// Top-left: Red (1, 0, 0) -> Lum = 0.2126
	// Top-right: Green (0, 1, 0) -> Lum = 0.7152
	// Bottom-left: Blue (0, 0, 1) -> Lum = 0.0722
	// Bottom-right: Black (0, 0, 0) -> Lum = 0.0

	// Expected average: (0.2126 + 0.7152 + 0.0722 + 0.0) / 4 = 1.0 / 4 = 0.25

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	// 1x1 White pixel -> Lum = 1.0
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestRenderStats_AddRow(t *testing.T) {
	stats := newRenderStats(10, 3, 4, 2)
	stats.addRow(RowResult{Row: 0, WorkerID: 1, Samples: 40, Duration: time.Millisecond})
	stats.addRow(RowResult{Row: 1, WorkerID: 0, Samples: 40, Duration: 2 * time.Millisecond})
	stats.addRow(RowResult{Row: 2, WorkerID: 1, Samples: 40, Duration: time.Millisecond})

	if stats.TotalSamples != 120 {
		t.Errorf("Expected 120 samples, got %d", stats.TotalSamples)
	}
	if stats.Workers[1].Rows != 2 || stats.Workers[1].Samples != 80 {
		t.Errorf("Unexpected stats for worker 1: %+v", stats.Workers[1])
	}
	if stats.Workers[1].RenderTime != 2*time.Millisecond {
		t.Errorf("Expected 2ms for worker 1, got %s", stats.Workers[1].RenderTime)
	}
	if stats.Workers[0].ID != 0 || stats.Workers[1].ID != 1 {
		t.Error("Expected worker IDs to match their index")
	}
}

func TestRenderStats_Table(t *testing.T) {
	stats := newRenderStats(10, 4, 2, 2)
	stats.addRow(RowResult{Row: 0, WorkerID: 0, Samples: 20})
	stats.addRow(RowResult{Row: 1, WorkerID: 0, Samples: 20})
	stats.addRow(RowResult{Row: 2, WorkerID: 0, Samples: 20})
	stats.addRow(RowResult{Row: 3, WorkerID: 1, Samples: 20})
	stats.RenderTime = 1500 * time.Millisecond

	table := stats.Table()
	for _, want := range []string{"Worker", "Rows", "% of frame", "Render time", "75.0 %", "25.0 %", "TOTAL", "80", "1.5s"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, table)
		}
	}
}
