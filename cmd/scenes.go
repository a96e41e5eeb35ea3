package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/sajis997/path-tracer/pkg/scene"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Primitives", "Resolution", "SPP", "Depth", "Description"})
	for _, name := range scene.Names() {
		sc, err := scene.New(name, ctx.Int64("seed"))
		if err != nil {
			return err
		}
		cfg := sc.SamplingConfig
		table.Append([]string{
			name,
			fmt.Sprintf("%d", sc.GetPrimitiveCount()),
			fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
			fmt.Sprintf("%d", cfg.SamplesPerPixel),
			fmt.Sprintf("%d", cfg.MaxDepth),
			scene.Describe(name),
		})
	}

	table.Render()
	logger.Noticef("built-in scenes\n%s", buf.String())
	return nil
}
