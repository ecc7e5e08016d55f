package bench

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/viant/phpjson/encoding/legacy"
	"github.com/viant/phpjson/encoding/modern"
	"github.com/viant/phpjson/fixture"
)

// CaseResult holds all encoder results for one fixture case.
type CaseResult struct {
	Case    string   `json:"case"`
	Results []Result `json:"results"`
}

// Encoders returns the legacy encoder followed by one modern encoder per backend.
func Encoders(backends []modern.Backend) []Named {
	result := []Named{{Name: "Legacy Implementation", Encode: legacy.Encode}}
	for _, backend := range backends {
		name := "Modern Implementation"
		if len(backends) > 1 {
			name = fmt.Sprintf("Modern Implementation (%s)", backend)
		}
		result = append(result, Named{Name: name, Encode: modern.Encoder(modern.WithBackend(backend))})
	}
	return result
}

// RunContext benchmarks every configured case against every encoder.
// Cancellation is checked between benchmarks.
func RunContext(ctx context.Context, cfg Config, logger log.Logger) ([]CaseResult, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cases, err := fixture.Cases(cfg.Seed, cfg.Cases...)
	if err != nil {
		return nil, err
	}
	encoders := Encoders(cfg.Backends)

	results := make([]CaseResult, 0, len(cases))
	for _, aCase := range cases {
		if cfg.Strict {
			if _, err := legacy.EncodeStrict(aCase.Value); err != nil {
				return results, fmt.Errorf("case %s: %w", aCase.Name, err)
			}
		}
		caseResult := CaseResult{Case: aCase.Name}
		for _, encoder := range encoders {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			level.Debug(logger).Log("msg", "starting benchmark", "case", aCase.Name, "encoder", encoder.Name, "iterations", cfg.Iterations)
			result, err := Benchmark(encoder.Name, encoder.Encode, aCase.Value, cfg.Iterations)
			if err != nil {
				return results, err
			}
			level.Info(logger).Log("msg", "completed benchmark", "case", aCase.Name, "encoder", encoder.Name, "time_ms", result.TimeMs, "memory_bytes", result.MemoryBytes)
			caseResult.Results = append(caseResult.Results, result)
		}
		results = append(results, caseResult)
	}
	return results, nil
}
