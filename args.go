// Package simpleargs is a schema-free command-line argument tokenizer.
//
// It classifies raw argument strings into positional values and named
// option occurrences ("-name" or "-name=value", one or two leading dashes
// are equivalent) and resolves each named occurrence against a
// caller-supplied Matcher. It imposes no flag registry, prints nothing and
// never loses argument bytes: values stay byte-exact until the caller asks
// for a UTF-8 interpretation.
package simpleargs

// Args scans an argument list and produces one classified Arg per Next call.
//
// The program name must not be included in the list. Args is read-only with
// respect to the underlying slice; rescanning requires constructing a new
// Args.
type Args struct {
	args    []string
	pos     int
	pastSep bool
	strict  bool
}

// NewArgs returns a scanner over args.
func NewArgs(args []string) *Args {
	return &Args{
		args: args,
	}
}

// WithStrictNames makes the scanner reject option names containing bytes
// outside [a-zA-Z0-9_-], or starting or ending with '-', as invalid
// arguments at classification time. Without it, name validation is limited
// to rejecting empty names; anything else is left to the Matcher.
func (a *Args) WithStrictNames() *Args {
	a.strict = true
	return a
}

// Rest returns the not-yet-scanned tail of the argument list verbatim,
// without classification, and advances the scanner to the end.
func (a *Args) Rest() []string {
	rest := a.args[a.pos:]
	a.pos = len(a.args)
	return rest
}
