package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/sajis997/path-tracer/pkg/renderer"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/urfave/cli"
)

// Display the host resources the renderer sizes itself against.
func SystemInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})

	if infos, err := cpu.Info(); err != nil {
		logger.Warningf("unable to query cpu info: %v", err)
	} else if len(infos) > 0 {
		table.Append([]string{"CPU", infos[0].ModelName})
	}
	table.Append([]string{"Default workers", fmt.Sprintf("%d", renderer.DefaultWorkerCount())})

	if vm, err := mem.VirtualMemory(); err != nil {
		logger.Warningf("unable to query memory: %v", err)
	} else {
		table.Append([]string{"Total memory", fmt.Sprintf("%d MiB", vm.Total>>20)})
		table.Append([]string{"Available memory", fmt.Sprintf("%d MiB", vm.Available>>20)})
		// Each framebuffer pixel takes three bytes
		table.Append([]string{"Max framebuffer pixels", fmt.Sprintf("%d", vm.Available/renderer.BytesPerPixel)})
	}

	table.Render()
	logger.Noticef("system resources\n%s", buf.String())
	return nil
}
