package bench

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/phpjson"
	"github.com/viant/phpjson/encoding/modern"
)

func TestBenchmark(t *testing.T) {
	var testCases = []struct {
		description string
		iterations  int
		expectErr   bool
	}{
		{description: "single iteration", iterations: 1},
		{description: "many iterations", iterations: 50},
		{description: "zero iterations", iterations: 0, expectErr: true},
		{description: "negative iterations", iterations: -3, expectErr: true},
	}

	value := phpjson.Sequence(phpjson.Int(1), phpjson.Text("a"))
	for _, testCase := range testCases {
		calls := 0
		encode := func(v phpjson.Value) string {
			calls++
			return "[1,\"a\"]"
		}
		result, err := Benchmark("probe", encode, value, testCase.iterations)
		if testCase.expectErr {
			assert.True(t, errors.Is(err, ErrIterations), testCase.description)
			assert.EqualValues(t, 0, calls, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.iterations+1, calls, testCase.description)
		assert.EqualValues(t, "probe", result.Name, testCase.description)
		assert.EqualValues(t, 7, result.OutputBytes, testCase.description)
		assert.True(t, result.TimeMs >= 0, testCase.description)
		assert.True(t, result.MemoryBytes >= 0, testCase.description)
	}
}

func TestRound(t *testing.T) {
	assert.EqualValues(t, 1.235, round(1.23456, 3))
	assert.EqualValues(t, 1.23, round(1.2349, 2))
	assert.EqualValues(t, 0, round(0.0004, 3))
}

func TestEncoders(t *testing.T) {
	single := Encoders([]modern.Backend{modern.BackendJsoniter})
	require.Len(t, single, 2)
	assert.EqualValues(t, "Legacy Implementation", single[0].Name)
	assert.EqualValues(t, "Modern Implementation", single[1].Name)

	all := Encoders(modern.Backends())
	require.Len(t, all, 1+len(modern.Backends()))
	assert.EqualValues(t, "Modern Implementation (gojay)", all[2].Name)

	value := phpjson.Array(phpjson.Field("a", phpjson.Int(1)))
	for _, encoder := range all {
		assert.EqualValues(t, `{"a":1}`, encoder.Encode(value), encoder.Name)
	}
}

func TestRunContext(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 2
	cfg.Backends = modern.Backends()
	cfg.Strict = true

	results, err := RunContext(context.Background(), cfg, log.NewNopLogger())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.EqualValues(t, "ecommerce", results[0].Case)
	require.Len(t, results[0].Results, 1+len(cfg.Backends))
	size := results[0].Results[0].OutputBytes
	for _, result := range results[0].Results {
		assert.EqualValues(t, size, result.OutputBytes, result.Name)
	}
}

func TestRunContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := DefaultConfig()
	cfg.Iterations = 1
	_, err := RunContext(ctx, cfg, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunContext_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cases = []string{"missing"}
	_, err := RunContext(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	var testCases = []struct {
		description string
		content     string
		expect      Config
		expectErr   bool
	}{
		{
			description: "overrides",
			content:     "iterations: 10\nseed: 9\nbackends: [gojay, sonic]\n",
			expect: Config{
				Iterations: 10,
				Seed:       9,
				Backends:   []modern.Backend{modern.BackendGojay, modern.BackendSonic},
				Cases:      []string{"ecommerce"},
			},
		},
		{
			description: "defaults kept",
			content:     "strict: true\n",
			expect: Config{
				Iterations: 1000,
				Seed:       1,
				Backends:   []modern.Backend{modern.BackendJsoniter},
				Cases:      []string{"ecommerce"},
				Strict:     true,
			},
		},
		{description: "unknown backend", content: "backends: [simdjson]\n", expectErr: true},
		{description: "bad iterations", content: "iterations: 0\n", expectErr: true},
		{description: "malformed", content: "iterations: [\n", expectErr: true},
	}

	dir := t.TempDir()
	for i, testCase := range testCases {
		path := filepath.Join(dir, strings.ReplaceAll(testCase.description, " ", "_")+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(testCase.content), 0o644), i)
		actual, err := LoadConfig(path)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.EqualValues(t, DefaultConfig(), cfg)

	_, err = LoadConfig(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	color.NoColor = true
	results := []Result{
		{Name: "Legacy Implementation", TimeMs: 0.1234, MemoryBytes: 2048},
		{Name: "Modern Implementation", TimeMs: 0.05, MemoryBytes: 512.5},
	}
	buf := &bytes.Buffer{}
	require.NoError(t, Report(buf, "ecommerce", results))
	expect := "\nTesting ecommerce data structure:\n" +
		"Legacy Implementation:\n  Time: 0.123 ms\n  Memory: 2048.00 bytes (2.0 kB)\n" +
		"Modern Implementation:\n  Time: 0.050 ms\n  Memory: 512.50 bytes (512 B)\n"
	assert.EqualValues(t, expect, buf.String())
}

func TestReportJSON(t *testing.T) {
	results := []CaseResult{{
		Case:    "ecommerce",
		Results: []Result{{Name: "Legacy Implementation", TimeMs: 0.5, MemoryBytes: 100, OutputBytes: 42}},
	}}
	buf := &bytes.Buffer{}
	require.NoError(t, ReportJSON(context.Background(), buf, results))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	var actual []CaseResult
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &actual))
	assert.EqualValues(t, results, actual)
	assert.Contains(t, buf.String(), `"time_ms":0.5`)
}
