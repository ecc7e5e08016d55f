package legacy

import "github.com/viant/phpjson"

var (
	defaultEngine = New(false)
	strictEngine  = New(true)
)

// Encode serializes value to JSON text. It never fails: unrepresentable
// subtrees (invalid values, NaN, ±Inf) render as an empty string.
func Encode(value phpjson.Value) string {
	out, _ := defaultEngine.MarshalString(value)
	return out
}

// AppendTo appends the Encode form of value to dst.
func AppendTo(dst []byte, value phpjson.Value) []byte {
	out, _ := defaultEngine.MarshalTo(dst, value)
	return out
}

// EncodeStrict serializes value to JSON text or returns *UnrepresentableError
// for the first subtree Encode would have rendered empty.
func EncodeStrict(value phpjson.Value) (string, error) {
	return strictEngine.MarshalString(value)
}
