package modern

import (
	"github.com/francoispqt/gojay"
	"github.com/viant/phpjson"
)

type gojayEncoder struct{}

func (gojayEncoder) encode(value phpjson.Value) ([]byte, error) {
	switch value.Kind() {
	case phpjson.KindNull:
		return []byte("null"), nil
	case phpjson.KindBool:
		return gojay.Marshal(value.Bool())
	case phpjson.KindInt:
		return gojay.Marshal(value.Int())
	case phpjson.KindFloat:
		return gojay.Marshal(value.Float())
	case phpjson.KindText:
		return gojay.Marshal(value.Text())
	case phpjson.KindSequence:
		return gojay.MarshalJSONArray(gojayItems(value.Items()))
	}
	if value.IsList() {
		return gojay.MarshalJSONArray(gojayListEntries(value.Entries()))
	}
	return gojay.MarshalJSONObject(gojayObject(value.Entries()))
}

type gojayItems []phpjson.Value

func (a gojayItems) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a {
		addGojay(enc, item)
	}
}

func (a gojayItems) IsNil() bool { return false }

type gojayListEntries []phpjson.Entry

func (a gojayListEntries) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range a {
		addGojay(enc, a[i].Value)
	}
}

func (a gojayListEntries) IsNil() bool { return false }

type gojayObject []phpjson.Entry

func (o gojayObject) MarshalJSONObject(enc *gojay.Encoder) {
	for i := range o {
		addGojayKey(enc, o[i].Key.String(), o[i].Value)
	}
}

func (o gojayObject) IsNil() bool { return false }

func addGojay(enc *gojay.Encoder, value phpjson.Value) {
	switch value.Kind() {
	case phpjson.KindNull:
		enc.Null()
	case phpjson.KindBool:
		enc.Bool(value.Bool())
	case phpjson.KindInt:
		enc.Int64(value.Int())
	case phpjson.KindFloat:
		enc.Float64(value.Float())
	case phpjson.KindText:
		enc.String(value.Text())
	case phpjson.KindSequence:
		enc.Array(gojayItems(value.Items()))
	case phpjson.KindRecord, phpjson.KindArray:
		if value.IsList() {
			enc.Array(gojayListEntries(value.Entries()))
			return
		}
		enc.Object(gojayObject(value.Entries()))
	}
}

func addGojayKey(enc *gojay.Encoder, key string, value phpjson.Value) {
	switch value.Kind() {
	case phpjson.KindNull:
		enc.NullKey(key)
	case phpjson.KindBool:
		enc.BoolKey(key, value.Bool())
	case phpjson.KindInt:
		enc.Int64Key(key, value.Int())
	case phpjson.KindFloat:
		enc.Float64Key(key, value.Float())
	case phpjson.KindText:
		enc.StringKey(key, value.Text())
	case phpjson.KindSequence:
		enc.ArrayKey(key, gojayItems(value.Items()))
	case phpjson.KindRecord, phpjson.KindArray:
		if value.IsList() {
			enc.ArrayKey(key, gojayListEntries(value.Entries()))
			return
		}
		enc.ObjectKey(key, gojayObject(value.Entries()))
	}
}
