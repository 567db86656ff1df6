package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width
	Height          int           // Image height
	SamplesPerPixel int           // Samples taken per pixel
	TotalSamples    int           // Total number of samples taken
	RenderTime      time.Duration // Wall time of the whole frame
	Workers         []WorkerStats // Per-worker breakdown, indexed by worker ID
}

// WorkerStats tracks the share of the frame one worker rendered
type WorkerStats struct {
	ID         int
	Rows       int
	Samples    int
	RenderTime time.Duration // Time spent inside RenderRow
}

// newRenderStats prepares an empty stats record for a frame
func newRenderStats(width, height, samplesPerPixel, numWorkers int) RenderStats {
	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		Workers:         make([]WorkerStats, numWorkers),
	}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}
	return stats
}

// addRow folds a finished row into the stats
func (s *RenderStats) addRow(result RowResult) {
	worker := &s.Workers[result.WorkerID]
	worker.Rows++
	worker.Samples += result.Samples
	worker.RenderTime += result.Duration
	s.TotalSamples += result.Samples
}

// TotalPixels returns the number of pixels in the frame
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// Table builds a tabular representation of the per-worker statistics
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Samples", "Render time"})
	for _, worker := range s.Workers {
		percent := 0.0
		if s.Height > 0 {
			percent = 100 * float64(worker.Rows) / float64(s.Height)
		}
		table.Append([]string{
			fmt.Sprintf("%d", worker.ID),
			fmt.Sprintf("%d", worker.Rows),
			fmt.Sprintf("%02.1f %%", percent),
			fmt.Sprintf("%d", worker.Samples),
			worker.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", fmt.Sprintf("%d", s.Height), "TOTAL", fmt.Sprintf("%d", s.TotalSamples), s.RenderTime.String()})

	table.Render()
	return buf.String()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image,
// with channels mapped to [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += core.NewVec3(float64(c.R), float64(c.G), float64(c.B)).Multiply(1.0 / 255).Luminance()
		}
	}
	return total / float64(pixels)
}
