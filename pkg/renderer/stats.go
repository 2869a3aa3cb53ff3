package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Rows         int           // Number of rows rendered
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	Workers      int           // Number of row workers used
	Duration     time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the camera-ray throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
