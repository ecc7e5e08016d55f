package modern

import (
	"context"

	"github.com/viant/phpjson"
)

// EncodeContext encodes value with the configured backend and flags.
func EncodeContext(ctx context.Context, value phpjson.Value, opts ...Option) ([]byte, error) {
	cfg := resolveOptions(ctx, opts)
	if err := cfg.Ctx.Err(); err != nil {
		return nil, err
	}
	enc, err := encoderFor(cfg.Backend)
	if err != nil {
		return nil, err
	}
	clean, err := sanitize(value, cfg.Flags)
	if err != nil {
		return nil, err
	}
	out, err := enc.encode(clean)
	if err != nil {
		return nil, err
	}
	if !cfg.Flags.Has(UnescapedUnicode) {
		out = escapeUnicode(out)
	}
	return out, nil
}

// Encode returns the JSON text of value, or "" when encoding fails.
func Encode(value phpjson.Value, opts ...Option) string {
	out, err := EncodeContext(context.Background(), value, opts...)
	if err != nil {
		return ""
	}
	return string(out)
}

// Encoder returns an Encode function bound to opts.
func Encoder(opts ...Option) func(phpjson.Value) string {
	return func(value phpjson.Value) string {
		return Encode(value, opts...)
	}
}
