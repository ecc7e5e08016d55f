package modern

import (
	"fmt"
	"strings"

	"github.com/viant/phpjson"
)

type encoder interface {
	encode(value phpjson.Value) ([]byte, error)
}

var encoders = map[Backend]encoder{
	BackendJsoniter: newJsoniterEncoder(),
	BackendGojay:    gojayEncoder{},
	BackendSonic:    sonicEncoder{},
	BackendGoccy:    goccyEncoder{},
	BackendStdlib:   stdlibEncoder{},
}

// Backends returns all supported backends, default first.
func Backends() []Backend {
	return []Backend{BackendJsoniter, BackendGojay, BackendSonic, BackendGoccy, BackendStdlib}
}

// ParseBackend resolves a backend by case-insensitive name.
func ParseBackend(name string) (Backend, error) {
	backend := Backend(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := encoders[backend]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return backend, nil
}

func encoderFor(backend Backend) (encoder, error) {
	enc, ok := encoders[backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	return enc, nil
}
