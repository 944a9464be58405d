package simpleargs

import "unicode/utf8"

type ArgKind int

const (
	// KindEnd marks the end of the argument stream.
	KindEnd ArgKind = iota
	// KindPositional is an argument assigned meaning purely by position.
	KindPositional
	// KindNamed is an option occurrence such as "-opt" or "--opt=value".
	KindNamed
	// KindError is a malformed token; Err holds an *InvalidArgumentError.
	KindError
)

// Arg is a single classified argument.
type Arg struct {
	Kind ArgKind
	// Raw is the full original token text, for every kind except KindEnd.
	Raw string
	// Named is set when Kind is KindNamed.
	Named *NamedArg
	// Err is set when Kind is KindError.
	Err error
}

// NamedArg is one named option occurrence: the name without leading dashes,
// plus an optional inline value. It is valid for a single resolution; the
// underlying value is consumed at most once.
type NamedArg struct {
	name  string
	value Value
}

// Name returns the option name without leading dashes, as raw bytes.
//
// In "--out=xyz" the name is "out". "-out=xyz" yields the same name: one
// and two dashes carry no semantic distinction.
func (n *NamedArg) Name() string {
	return n.name
}

// Value returns the option's value wrapper.
func (n *NamedArg) Value() *Value {
	return &n.value
}

// Matcher recognizes one option occurrence. It receives the option name
// without dashes and the occurrence's Value. It reports ErrUnknownOption
// for unrecognized names and any other error for a failed value parse;
// such errors come back from Resolve wrapped in an *OptionError.
//
// A matcher for a plain no-value flag does not need to look at value at
// all: Resolve itself rejects a supplied-but-unused value.
type Matcher func(name string, value *Value) error

// Resolve runs the matcher against this occurrence and settles the
// option's outcome.
//
// If the matcher succeeds but a value was supplied and never consumed via
// Text or Raw, the occurrence fails with ErrUnexpectedValue. An option
// name that is not valid UTF-8 fails before the matcher runs. Any non-nil
// result is an *OptionError naming the option.
func (n *NamedArg) Resolve(match Matcher) error {
	if !utf8.ValidString(n.name) {
		return n.optionError(&InvalidTextError{Raw: n.name})
	}
	if err := match(n.name, &n.value); err != nil {
		return n.optionError(err)
	}
	if n.value.present && !n.value.consumed {
		return n.optionError(ErrUnexpectedValue)
	}
	return nil
}

func (n *NamedArg) optionError(err error) *OptionError {
	optErr := &OptionError{Name: n.name, Err: err}
	if n.value.present {
		raw := n.value.raw
		optErr.Value = &raw
	}
	return optErr
}
