// Package modern encodes phpjson values through third-party JSON serializers
// configured the way PHP's json_encode is called with JSON_UNESCAPED_UNICODE,
// JSON_INVALID_UTF8_SUBSTITUTE and JSON_PARTIAL_OUTPUT_ON_ERROR.
//
// Every backend shares the same sanitize pass and the same array/object
// classification, so for a given value all backends produce equivalent JSON
// documents.
package modern
