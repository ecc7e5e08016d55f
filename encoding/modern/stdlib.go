package modern

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/viant/phpjson"
)

var stdlibBuffers = sync.Pool{New: func() interface{} { return bytes.NewBuffer(make([]byte, 0, 256)) }}

type stdlibEncoder struct{}

func stdlibMarshal(v interface{}) ([]byte, error) {
	buf := stdlibBuffers.Get().(*bytes.Buffer)
	defer stdlibBuffers.Put(buf)
	buf.Reset()
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return append([]byte(nil), bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})...), nil
}

func (stdlibEncoder) encode(value phpjson.Value) ([]byte, error) {
	return stdlibMarshal(root(value, stdlibMarshal))
}
