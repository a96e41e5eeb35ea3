package renderer

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// availableMemory reports free system memory in bytes. Replaced in tests.
var availableMemory = func() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}

// DefaultWorkerCount returns the number of logical CPUs
func DefaultWorkerCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return runtime.NumCPU()
	}
	return count
}

// CheckFramebufferMemory fails when a width x height framebuffer would not fit
// into available memory. A failed probe is logged and does not block rendering.
func CheckFramebufferMemory(width, height int) error {
	required := uint64(width) * uint64(height) * BytesPerPixel

	available, err := availableMemory()
	if err != nil {
		logger.Warningf("unable to query available memory: %v", err)
		return nil
	}
	if required > available {
		return fmt.Errorf("%w: need %d bytes, %d available", ErrInsufficientMemory, required, available)
	}
	return nil
}
