package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/imageio"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// Image data written to "-" goes here.
var stdout io.Writer = os.Stdout

// Render a still frame of a built-in scene.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.New(ctx.String("scene"), ctx.Int64("seed"), geometry.CameraConfig{
		Width:         ctx.Int("width"),
		DisableJitter: ctx.Bool("no-jitter"),
	})
	if err != nil {
		return err
	}
	sc.SamplingConfig = scene.MergeSamplingConfig(sc.SamplingConfig, scene.SamplingConfig{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Gamma:           ctx.Float64("gamma"),
		Workers:         ctx.Int("workers"),
	})

	out := ctx.String("out")
	format, err := outputFormat(out, ctx.String("format"))
	if err != nil {
		return err
	}

	r, err := renderer.NewRaytracer(sc, logger)
	if err != nil {
		return err
	}

	img, stats := r.Render()
	logger.Noticef("frame statistics\n%s", stats.Table())

	if out == "" || out == "-" {
		return imageio.Encode(stdout, img, format)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err = imageio.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Noticef("wrote %s image to %s", format, out)
	return nil
}

// outputFormat resolves the image format. An explicit format wins; otherwise
// it is inferred from the file name and stdout defaults to text PPM.
func outputFormat(out, format string) (string, error) {
	if format != "" {
		for _, supported := range imageio.Formats() {
			if format == supported {
				return format, nil
			}
		}
		return "", fmt.Errorf("%w: %q", imageio.ErrUnknownFormat, format)
	}
	if out == "" || out == "-" {
		return imageio.FormatPPM, nil
	}
	return imageio.FormatFromPath(out)
}
