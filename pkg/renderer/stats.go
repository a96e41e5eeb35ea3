package renderer

import "time"

// TileStats describes the work done for one tile
type TileStats struct {
	Pixels        int           // Pixels written
	Samples       int           // Camera rays traced
	SkippedPixels int           // Pixels whose write failed
	Duration      time.Duration // Wall time spent on the tile
}

// WorkerStats accumulates the tiles handled by one worker
type WorkerStats struct {
	WorkerID      int
	Tiles         int
	Pixels        int
	Samples       int
	SkippedPixels int
	Duration      time.Duration // Sum of tile render times
}

func (ws *WorkerStats) add(tile TileStats) {
	ws.Tiles++
	ws.Pixels += tile.Pixels
	ws.Samples += tile.Samples
	ws.SkippedPixels += tile.SkippedPixels
	ws.Duration += tile.Duration
}

// RenderStats contains statistics about a finished frame
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Tiles           int
	Workers         []WorkerStats
	TotalPixels     int
	TotalSamples    int
	SkippedPixels   int
	RenderTime      time.Duration
}

// SamplesPerSecond returns the camera-ray throughput of the frame
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

// Utilization returns the fraction of worker time spent rendering
func (s RenderStats) Utilization() float64 {
	if s.RenderTime <= 0 || len(s.Workers) == 0 {
		return 0
	}
	var busy time.Duration
	for _, w := range s.Workers {
		busy += w.Duration
	}
	return busy.Seconds() / (s.RenderTime.Seconds() * float64(len(s.Workers)))
}
