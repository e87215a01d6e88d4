package renderer

import (
	"github.com/df07/go-cpu-pathtracer/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Bounce depth at which a path returns black
	NumWorkers      int     // Worker goroutines; 0 uses runtime.NumCPU()
	Seed            *int64  // Base seed; row r is sampled with Seed+r. nil keeps the default
	TMin            float64 // Self-intersection bias for scattered rays
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		NumWorkers:      0,
		Seed:            SeedValue(42),
		TMin:            integrator.DefaultTMin,
	}
}

// MergeConfig returns base with every non-zero field of override applied
func MergeConfig(base, override Config) Config {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != nil {
		result.Seed = SeedValue(*override.Seed)
	}
	if override.TMin != 0 {
		result.TMin = override.TMin
	}
	return result
}

// SeedValue returns a pointer to seed for Config.Seed. Zero is a valid seed.
func SeedValue(seed int64) *int64 {
	return &seed
}
