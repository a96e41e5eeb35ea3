package main

import (
	"fmt"
	"os"

	"github.com/sajis997/path-tracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// sceneFlags are shared by every command that builds a scene.
func sceneFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "scene, s",
			Value:  "random",
			Usage:  "built-in scene to use (see the scenes command)",
			EnvVar: "PATHTRACER_SCENE",
		},
		cli.Int64Flag{
			Name:   "seed",
			Value:  42,
			Usage:  "seed for scene generation and per-tile sampling",
			EnvVar: "PATHTRACER_SEED",
		},
		cli.StringFlag{
			Name:   "split",
			Value:  "middle",
			Usage:  "bvh split method",
			EnvVar: "PATHTRACER_BVH_SPLIT",
		},
		cli.IntFlag{
			Name:   "leaf-size",
			Value:  4,
			Usage:  "maximum primitives per bvh leaf",
			EnvVar: "PATHTRACER_BVH_LEAF_SIZE",
		},
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes using Monte-Carlo path tracing"
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
		cli.StringFlag{
			Name:  "env-file",
			Value: ".env",
			Usage: "file with PATHTRACER_* environment settings",
		},
	}
	app.Before = cmd.LoadEnv
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Build the selected scene, construct its acceleration structure and render it
tile by tile on all available cores.

Width, height, samples per pixel and depth default to the values recommended by
the scene. The frame is written to --out and optionally to a thumbnail and an
S3 bucket.`,
			Flags: append(sceneFlags(),
				cli.IntFlag{
					Name:   "width",
					Usage:  "frame width",
					EnvVar: "PATHTRACER_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Usage:  "frame height",
					EnvVar: "PATHTRACER_HEIGHT",
				},
				cli.IntFlag{
					Name:   "spp",
					Usage:  "samples per pixel",
					EnvVar: "PATHTRACER_SPP",
				},
				cli.IntFlag{
					Name:   "depth",
					Usage:  "maximum ray segments per sample",
					EnvVar: "PATHTRACER_DEPTH",
				},
				cli.IntFlag{
					Name:   "tile-size",
					Value:  32,
					Usage:  "edge length of render tiles",
					EnvVar: "PATHTRACER_TILE_SIZE",
				},
				cli.IntFlag{
					Name:   "workers",
					Usage:  "render goroutines (0 = logical cpu count)",
					EnvVar: "PATHTRACER_WORKERS",
				},
				cli.StringFlag{
					Name:   "accel",
					Value:  "bvh",
					Usage:  "acceleration structure: bvh or list",
					EnvVar: "PATHTRACER_ACCEL",
				},
				cli.StringFlag{
					Name:   "out, o",
					Usage:  "image filename for the rendered frame (default <scene>.png)",
					EnvVar: "PATHTRACER_OUT",
				},
				cli.StringFlag{
					Name:   "thumbnail",
					Usage:  "also write a downscaled copy to this file",
					EnvVar: "PATHTRACER_THUMBNAIL",
				},
				cli.UintFlag{
					Name:   "thumbnail-size",
					Value:  256,
					Usage:  "maximum thumbnail edge length",
					EnvVar: "PATHTRACER_THUMBNAIL_SIZE",
				},
				cli.BoolFlag{
					Name:   "upload",
					Usage:  "upload the frame to S3",
					EnvVar: "PATHTRACER_UPLOAD",
				},
				cli.StringFlag{
					Name:   "s3-bucket",
					EnvVar: "PATHTRACER_S3_BUCKET",
				},
				cli.StringFlag{
					Name:   "s3-region",
					Value:  "us-east-1",
					EnvVar: "PATHTRACER_S3_REGION",
				},
				cli.StringFlag{
					Name:   "s3-endpoint",
					EnvVar: "PATHTRACER_S3_ENDPOINT",
				},
				cli.StringFlag{
					Name:   "s3-access-key",
					EnvVar: "PATHTRACER_S3_ACCESS_KEY",
				},
				cli.StringFlag{
					Name:   "s3-secret-key",
					EnvVar: "PATHTRACER_S3_SECRET_KEY",
				},
				cli.StringFlag{
					Name:   "s3-prefix",
					EnvVar: "PATHTRACER_S3_PREFIX",
				},
			),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scenes with random content",
				},
			},
			Action: cmd.ListScenes,
		},
		{
			Name:   "bvh",
			Usage:  "build the bvh of a scene and display its statistics",
			Flags:  sceneFlags(),
			Action: cmd.InspectBVH,
		},
		{
			Name:   "system",
			Usage:  "display cpu and memory resources",
			Action: cmd.SystemInfo,
		},
	}

	return app
}
