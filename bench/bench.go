// Package bench measures encoder time and allocation over fixture values.
package bench

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/viant/phpjson"
)

// ErrIterations is returned when a benchmark is asked to run zero or fewer iterations.
var ErrIterations = errors.New("iterations must be positive")

// Encoder serializes a value to JSON text.
type Encoder func(value phpjson.Value) string

// Named pairs an encoder with its report label.
type Named struct {
	Name   string
	Encode Encoder
}

// Result holds per-call averages.
type Result struct {
	Name        string  `json:"name"`
	TimeMs      float64 `json:"time_ms"`
	MemoryBytes float64 `json:"memory_bytes"`
	OutputBytes int     `json:"output_bytes"`
}

// Benchmark runs encode once to warm up, then iterations times, and reports
// the mean wall time in milliseconds and the mean allocated bytes per call.
func Benchmark(name string, encode Encoder, data phpjson.Value, iterations int) (Result, error) {
	if iterations <= 0 {
		return Result{}, fmt.Errorf("%s: %w: %d", name, ErrIterations, iterations)
	}
	output := encode(data)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	for i := 0; i < iterations; i++ {
		output = encode(data)
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	n := float64(iterations)
	return Result{
		Name:        name,
		TimeMs:      round(float64(elapsed)/float64(time.Millisecond)/n, 3),
		MemoryBytes: round(float64(after.TotalAlloc-before.TotalAlloc)/n, 2),
		OutputBytes: len(output),
	}, nil
}

func round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
