package modern

import (
	"testing"

	"github.com/viant/phpjson/encoding/legacy"
)

func BenchmarkCompare_Encode_Sample_Legacy(b *testing.B) {
	in := sampleValue()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = legacy.Encode(in)
	}
}

func benchmarkBackend(b *testing.B, backend Backend) {
	in := sampleValue()
	opt := WithBackend(backend)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if out := Encode(in, opt); out == "" {
			b.Fatal("empty output")
		}
	}
}

func BenchmarkCompare_Encode_Sample_Jsoniter(b *testing.B) { benchmarkBackend(b, BackendJsoniter) }
func BenchmarkCompare_Encode_Sample_Gojay(b *testing.B)    { benchmarkBackend(b, BackendGojay) }
func BenchmarkCompare_Encode_Sample_Sonic(b *testing.B)    { benchmarkBackend(b, BackendSonic) }
func BenchmarkCompare_Encode_Sample_Goccy(b *testing.B)    { benchmarkBackend(b, BackendGoccy) }
func BenchmarkCompare_Encode_Sample_Stdlib(b *testing.B)   { benchmarkBackend(b, BackendStdlib) }
