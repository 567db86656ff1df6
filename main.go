package main

import (
	"os"

	"github.com/df07/go-weekend-pathtracer/cmd"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-weekend-pathtracer"
	app.Usage = "render sphere scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Render a single frame of a built-in scene. Flags left at zero keep the
scene's own defaults.

The image is written to the file given by --out, or to stdout as a text
PPM when --out is "-". Progress and statistics are logged to stderr.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "basic",
					Usage: "name of the scene to render (see list-scenes)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "-",
					Usage: `image filename for the rendered frame or "-" for stdout`,
				},
				cli.StringFlag{
					Name:  "format, f",
					Usage: "output format: ppm, ppm-binary or png (default: inferred from --out)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width; the height follows the scene aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum number of ray bounces",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (default: number of CPUs)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for sampling and random scene layouts",
				},
				cli.BoolFlag{
					Name:  "no-jitter",
					Usage: "sample pixel centers only",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Usage: "output gamma; 1 disables gamma correction (default: 2)",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the render API over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
			},
			Action: cmd.Serve,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("pathtracer").Errorf("error: %s", err.Error())
		os.Exit(1)
	}
}
