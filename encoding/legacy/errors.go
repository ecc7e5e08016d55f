package legacy

import (
	"errors"
	"fmt"

	"github.com/viant/phpjson"
)

// ErrUnrepresentable is matched by every *UnrepresentableError.
var ErrUnrepresentable = errors.New("unrepresentable value")

// UnrepresentableError reports the first value the strict encoder could not represent.
type UnrepresentableError struct {
	Path string
	Kind phpjson.Kind
}

func (e *UnrepresentableError) Error() string {
	return fmt.Sprintf("%v at %s: %s", ErrUnrepresentable, e.Path, e.Kind)
}

func (e *UnrepresentableError) Unwrap() error { return ErrUnrepresentable }
