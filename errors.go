package simpleargs

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownOption is returned by a Matcher for an unrecognized option name.
var ErrUnknownOption = errors.New("unknown option")

// ErrValueRequired is returned by Value accessors when the option was
// given without a value.
var ErrValueRequired = errors.New("option requires a value")

// ErrUnexpectedValue is produced by Resolve when a value was supplied but
// the matcher never consumed it.
var ErrUnexpectedValue = errors.New("option does not accept a value")

// InvalidTextError reports bytes that are not a valid UTF-8 string.
// Raw retains the offending bytes unmodified.
type InvalidTextError struct {
	Raw string
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("invalid Unicode string %s", strconv.Quote(e.Raw))
}

// InvalidArgumentError reports a malformed argument token, such as an
// option with an empty name ("-=value").
type InvalidArgumentError struct {
	Arg string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s", strconv.Quote(e.Arg))
}

// UnexpectedArgumentError reports a surplus positional argument. The core
// never produces it; driving loops raise it when they run out of
// positional slots.
type UnexpectedArgumentError struct {
	Arg string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument %s", strconv.Quote(e.Arg))
}

// MissingArgumentError reports a required positional argument that was
// never supplied. Like UnexpectedArgumentError it is raised by driving
// loops, not by the scanner.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument <%s>", e.Name)
}

// OptionError is the failure of one named option occurrence, produced by
// Resolve. Err is the underlying cause: ErrUnknownOption,
// ErrValueRequired, ErrUnexpectedValue, an *InvalidTextError, or the
// matcher's own parse error. Value holds the raw supplied value, if any.
type OptionError struct {
	Name  string
	Value *string
	Err   error
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

func (e *OptionError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownOption):
		return fmt.Sprintf("unknown option -%s", e.Name)
	case errors.Is(e.Err, ErrValueRequired):
		return fmt.Sprintf("option -%s requires a value", e.Name)
	case errors.Is(e.Err, ErrUnexpectedValue):
		return fmt.Sprintf("option -%s does not accept a value", e.Name)
	}
	var invalidText *InvalidTextError
	if errors.As(e.Err, &invalidText) {
		return fmt.Sprintf("invalid value %s for option -%s: invalid Unicode string",
			strconv.Quote(invalidText.Raw), e.Name)
	}
	if e.Value != nil {
		return fmt.Sprintf("invalid value %s for option -%s: %s",
			strconv.Quote(*e.Value), e.Name, e.Err)
	}
	return fmt.Sprintf("invalid option -%s: %s", e.Name, e.Err)
}
