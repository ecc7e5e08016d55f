package modern

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/viant/phpjson"
)

type jsoniterEncoder struct {
	api jsoniter.API
}

func newJsoniterEncoder() jsoniterEncoder {
	return jsoniterEncoder{api: jsoniter.Config{EscapeHTML: false}.Froze()}
}

func (e jsoniterEncoder) encode(value phpjson.Value) ([]byte, error) {
	stream := e.api.BorrowStream(nil)
	defer e.api.ReturnStream(stream)
	writeJsoniter(stream, value)
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func writeJsoniter(stream *jsoniter.Stream, value phpjson.Value) {
	switch value.Kind() {
	case phpjson.KindNull:
		stream.WriteNil()
	case phpjson.KindBool:
		stream.WriteBool(value.Bool())
	case phpjson.KindInt:
		stream.WriteInt64(value.Int())
	case phpjson.KindFloat:
		stream.WriteFloat64(value.Float())
	case phpjson.KindText:
		stream.WriteString(value.Text())
	case phpjson.KindSequence:
		stream.WriteArrayStart()
		for i, item := range value.Items() {
			if i > 0 {
				stream.WriteMore()
			}
			writeJsoniter(stream, item)
		}
		stream.WriteArrayEnd()
	case phpjson.KindRecord, phpjson.KindArray:
		entries := value.Entries()
		if value.IsList() {
			stream.WriteArrayStart()
			for i := range entries {
				if i > 0 {
					stream.WriteMore()
				}
				writeJsoniter(stream, entries[i].Value)
			}
			stream.WriteArrayEnd()
			return
		}
		stream.WriteObjectStart()
		for i := range entries {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(entries[i].Key.String())
			writeJsoniter(stream, entries[i].Value)
		}
		stream.WriteObjectEnd()
	}
}
