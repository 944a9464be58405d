package simpleargs

import (
	"strings"
)

// Next returns the next classified argument.
//
// The token stream is finite and terminates with KindEnd; calling Next
// after that keeps returning KindEnd. A KindError result also terminates
// the stream: the cursor is advanced past the remaining input.
func (a *Args) Next() Arg {
	for {
		if a.pos >= len(a.args) {
			return Arg{Kind: KindEnd}
		}
		raw := a.args[a.pos]
		a.pos++

		if a.pastSep {
			return Arg{Kind: KindPositional, Raw: raw}
		}
		if raw == "--" {
			// The separator itself is not a caller-visible token.
			a.pastSep = true
			continue
		}
		return a.classify(raw)
	}
}

func (a *Args) classify(raw string) Arg {
	if len(raw) < 2 || raw[0] != '-' {
		// Covers "", plain text and a bare "-" (stdin placeholder).
		return Arg{Kind: KindPositional, Raw: raw}
	}
	body := raw[1:]
	if body[0] == '-' {
		// raw == "--" was handled by Next, so at least one byte follows.
		body = body[1:]
	}

	name := body
	value := Value{}
	if i := strings.IndexByte(body, '='); i >= 0 {
		name = body[:i]
		value = Value{raw: body[i+1:], present: true}
	}

	if name == "" || (a.strict && !isValidName(name)) {
		a.pos = len(a.args)
		return Arg{Kind: KindError, Raw: raw, Err: &InvalidArgumentError{Arg: raw}}
	}

	return Arg{
		Kind:  KindNamed,
		Raw:   raw,
		Named: &NamedArg{name: name, value: value},
	}
}

func isValidName(name string) bool {
	if name[0] == '-' || name[len(name)-1] == '-' {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return false
		}
	}
	return true
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
