package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-weekend-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes with their default render settings.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Description", "Width", "Samples", "Max depth"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{
			info.Name,
			info.Description,
			fmt.Sprintf("%d", info.Width),
			fmt.Sprintf("%d", info.Samples),
			fmt.Sprintf("%d", info.MaxDepth),
		})
	}
	table.Render()

	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
