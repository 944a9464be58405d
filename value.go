package simpleargs

import "unicode/utf8"

// Value is the deferred-access wrapper around one option's raw value.
//
// Accessing it through Text or Raw marks it consumed, whatever the
// outcome; Resolve inspects that flag after the matcher returns to decide
// whether a supplied value was legitimate. Repeat accessor calls re-derive
// the same result.
type Value struct {
	raw      string
	present  bool
	consumed bool
}

// Present reports whether a value was supplied, without consuming it.
func (v *Value) Present() bool {
	return v.present
}

// Text consumes the value and returns it as a UTF-8 string.
// It fails with ErrValueRequired if no value was supplied, and with
// *InvalidTextError if the bytes are not valid UTF-8.
func (v *Value) Text() (string, error) {
	v.consumed = true
	if !v.present {
		return "", ErrValueRequired
	}
	if !utf8.ValidString(v.raw) {
		return "", &InvalidTextError{Raw: v.raw}
	}
	return v.raw, nil
}

// Raw consumes the value and returns its bytes verbatim, with no
// validation. It fails with ErrValueRequired if no value was supplied.
func (v *Value) Raw() (string, error) {
	v.consumed = true
	if !v.present {
		return "", ErrValueRequired
	}
	return v.raw, nil
}
