package renderer

import "time"

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken per pixel
	Rows            int           // Row tasks completed
	Workers         int           // Workers in the pool
	Duration        time.Duration // Wall time from dispatch to the last row
}

// SamplesPerSecond returns the sampling throughput of the frame
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
