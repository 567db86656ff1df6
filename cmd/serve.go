package cmd

import (
	"github.com/df07/go-weekend-pathtracer/web/server"
	"github.com/urfave/cli"
)

// Serve the render API over HTTP.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	return server.NewServer(ctx.Int("port"), logger).Start()
}
