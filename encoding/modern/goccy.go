package modern

import (
	gojson "github.com/goccy/go-json"
	"github.com/viant/phpjson"
)

type goccyEncoder struct{}

func goccyMarshal(v interface{}) ([]byte, error) {
	return gojson.MarshalWithOption(v, gojson.DisableHTMLEscape())
}

func (goccyEncoder) encode(value phpjson.Value) ([]byte, error) {
	return goccyMarshal(root(value, goccyMarshal))
}
