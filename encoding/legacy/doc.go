// Package legacy implements the hand-rolled recursive JSON encoder for
// phpjson values.
//
// Strings escape only backslash, forward slash, double quote, CR, LF,
// backspace, form feed and tab; every other byte, including non-ASCII UTF-8,
// is copied through. Values the encoder cannot represent render as an empty
// string in Encode, or fail with *UnrepresentableError in EncodeStrict.
package legacy
