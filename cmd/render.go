package cmd

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sajis997/path-tracer/pkg/geometry"
	"github.com/sajis997/path-tracer/pkg/output"
	"github.com/sajis997/path-tracer/pkg/renderer"
	"github.com/sajis997/path-tracer/pkg/scene"
	"github.com/urfave/cli"
)

// Render a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	opts := renderOptions(ctx, sc)
	if err := opts.Validate(); err != nil {
		return err
	}

	// Resolve sinks before rendering so that bad output settings fail fast
	sink, err := buildSinks(ctx, sc.Name)
	if err != nil {
		return err
	}

	world, err := sc.World()
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(world, sc.Camera(opts.Width, opts.Height), opts)
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q (%d primitives) at %dx%d with %d spp",
		sc.Name, sc.GetPrimitiveCount(), opts.Width, opts.Height, opts.SamplesPerPixel)

	fb, stats, err := rt.Render()
	if err != nil {
		return err
	}

	if err := sink.Write(context.Background(), fb.Width(), fb.Height(), fb.Bytes()); err != nil {
		return err
	}

	displayFrameStats(stats)
	return nil
}

// loadScene builds the scene named by the scene flag and its accelerator.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	sc, err := scene.New(ctx.String("scene"), ctx.Int64("seed"))
	if err != nil {
		return nil, err
	}

	kind, err := scene.ParseAccelerator(ctx.String("accel"))
	if err != nil {
		return nil, err
	}
	bvhOpts, err := bvhOptions(ctx)
	if err != nil {
		return nil, err
	}

	if err := sc.Preprocess(kind, bvhOpts); err != nil {
		return nil, err
	}
	return sc, nil
}

func bvhOptions(ctx *cli.Context) (geometry.BVHOptions, error) {
	split, err := geometry.ParseSplitMethod(ctx.String("split"))
	if err != nil {
		return geometry.BVHOptions{}, err
	}
	return geometry.BVHOptions{
		MaxPrimitivesPerNode: ctx.Int("leaf-size"),
		SplitMethod:          split,
	}, nil
}

// renderOptions starts from the scene's recommended sampling config and applies
// any flags the user set. Setting only one frame dimension keeps the scene aspect.
func renderOptions(ctx *cli.Context, sc *scene.Scene) renderer.Options {
	cfg := sc.SamplingConfig
	opts := renderer.DefaultOptions()
	opts.Width, opts.Height = cfg.Width, cfg.Height
	opts.SamplesPerPixel = cfg.SamplesPerPixel
	opts.MaxDepth = cfg.MaxDepth

	switch {
	case ctx.IsSet("width") && ctx.IsSet("height"):
		opts.Width, opts.Height = ctx.Int("width"), ctx.Int("height")
	case ctx.IsSet("width"):
		opts.Width = ctx.Int("width")
		opts.Height = max(1, opts.Width*cfg.Height/cfg.Width)
	case ctx.IsSet("height"):
		opts.Height = ctx.Int("height")
		opts.Width = max(1, opts.Height*cfg.Width/cfg.Height)
	}

	if ctx.IsSet("spp") {
		opts.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		opts.MaxDepth = ctx.Int("depth")
	}
	opts.TileSize = ctx.Int("tile-size")
	opts.NumWorkers = ctx.Int("workers")
	opts.Seed = ctx.Int64("seed")

	var lastPercent int
	opts.OnTileDone = func(done, total int) {
		percent := done * 100 / total
		if percent/10 != lastPercent/10 || done == total {
			logger.Infof("progress: %d%% (%d/%d tiles)", percent, done, total)
		}
		lastPercent = percent
	}
	return opts
}

// buildSinks assembles the file, thumbnail and S3 outputs requested on the command line.
func buildSinks(ctx *cli.Context, sceneName string) (output.MultiSink, error) {
	out := ctx.String("out")
	if out == "" {
		out = sceneName + ".png"
	}

	file, err := output.NewFileSink(out)
	if err != nil {
		return nil, err
	}
	sinks := output.MultiSink{file}

	if thumb := ctx.String("thumbnail"); thumb != "" {
		sink, err := output.NewThumbnailSink(thumb, ctx.Uint("thumbnail-size"))
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}

	if ctx.Bool("upload") {
		cfg := output.S3Config{
			Bucket:    ctx.String("s3-bucket"),
			Region:    ctx.String("s3-region"),
			Endpoint:  ctx.String("s3-endpoint"),
			AccessKey: ctx.String("s3-access-key"),
			SecretKey: ctx.String("s3-secret-key"),
			Prefix:    strings.Trim(ctx.String("s3-prefix"), "/"),
		}
		sink, err := output.NewS3Sink(cfg, filepath.Base(out))
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}

	return sinks, nil
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Samples", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.WorkerID),
			fmt.Sprintf("%d", stat.Tiles),
			fmt.Sprintf("%d", stat.Pixels),
			fmt.Sprintf("%d", stat.Samples),
			stat.Duration.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		stats.RenderTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics (%.0f samples/s, %.0f%% utilization)\n%s",
		stats.SamplesPerSecond(), stats.Utilization()*100, buf.String())
	if stats.SkippedPixels > 0 {
		logger.Warningf("%d pixels could not be written", stats.SkippedPixels)
	}
}
