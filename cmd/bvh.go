package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/sajis997/path-tracer/pkg/geometry"
	"github.com/sajis997/path-tracer/pkg/scene"
	"github.com/urfave/cli"
)

// Build the BVH of a scene and display its statistics.
func InspectBVH(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.New(ctx.String("scene"), ctx.Int64("seed"))
	if err != nil {
		return err
	}
	opts, err := bvhOptions(ctx)
	if err != nil {
		return err
	}

	bvh, err := geometry.NewBVH(sc.Primitives, opts)
	if err != nil {
		return err
	}

	displayBVHStats(sc.Name, opts, bvh.Stats())
	return nil
}

func displayBVHStats(name string, opts geometry.BVHOptions, stats geometry.BVHStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"Split method", opts.SplitMethod.String()},
		{"Max primitives per leaf", fmt.Sprintf("%d", opts.MaxPrimitivesPerNode)},
		{"Primitives", fmt.Sprintf("%d", stats.Primitives)},
		{"Skipped primitives", fmt.Sprintf("%d", stats.Skipped)},
		{"Nodes", fmt.Sprintf("%d", stats.Nodes)},
		{"Interior nodes", fmt.Sprintf("%d", stats.Interiors)},
		{"Leaves", fmt.Sprintf("%d", stats.Leaves)},
		{"Max depth", fmt.Sprintf("%d", stats.MaxDepth)},
		{"Max leaf size", fmt.Sprintf("%d", stats.MaxLeafSize)},
		{"Avg leaf size", fmt.Sprintf("%.2f", stats.AvgLeafSize)},
	})
	table.SetFooter([]string{"Build time", stats.BuildTime.String()})

	table.Render()
	logger.Noticef("bvh statistics for scene %q\n%s", name, buf.String())
}
