package bench

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/viant/phpjson"
	"github.com/viant/phpjson/encoding/modern"
)

// Report writes results as text, one block per encoder.
func Report(w io.Writer, caseName string, results []Result) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprintf(w, "\nTesting %s data structure:\n", caseName); err != nil {
		return err
	}
	for _, result := range results {
		_, err := fmt.Fprintf(w, "%s:\n  Time: %.3f ms\n  Memory: %.2f bytes (%s)\n",
			result.Name,
			result.TimeMs,
			result.MemoryBytes,
			humanize.Bytes(uint64(result.MemoryBytes)),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReportAll writes every case with Report.
func ReportAll(w io.Writer, results []CaseResult) error {
	for _, caseResult := range results {
		if err := Report(w, caseResult.Case, caseResult.Results); err != nil {
			return err
		}
	}
	return nil
}

// ReportJSON writes results as a single JSON document followed by a newline.
func ReportJSON(ctx context.Context, w io.Writer, results []CaseResult, opts ...modern.Option) error {
	data, err := modern.EncodeContext(ctx, phpjson.FromAny(results), opts...)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
