// Package phpjson models PHP-style dynamic values and the rules used to lay
// them out as JSON.
//
// A Value is a tagged union over null, bool, int, float, text, sequence,
// record and array. Sequences always encode as JSON arrays and records as
// JSON objects. Arrays are untyped keyed containers: they encode as a JSON
// array when their keys are exactly 0..n-1 in iteration order and as a JSON
// object otherwise.
//
// Encoders live in encoding/legacy (hand-rolled) and encoding/modern
// (library-backed).
package phpjson
