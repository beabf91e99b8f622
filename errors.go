// File: config/errors.go
package config

import (
	"errors"
	"fmt"
)

// ErrBadConfiguration is the umbrella for all recoverable configuration
// errors: bad option values, unknown flags, missing required options and
// unreadable property streams. Callers that only care about "the invocation
// was misconfigured" can test with errors.Is(err, ErrBadConfiguration),
// print the error together with OptionGroup.Usage and exit non-zero.
var ErrBadConfiguration = errors.New("bad configuration")

// FormatError reports a value that cannot be converted to its option's type.
type FormatError struct {
	Key   string // long key of the option
	Value string // the offending raw text
	Err   error  // underlying conversion error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("option %q: cannot parse %q: %v", e.Key, e.Value, e.Err)
}

func (e *FormatError) Unwrap() []error {
	return []error{ErrBadConfiguration, e.Err}
}

// UnknownOptionError reports an argument token that looks like a flag but
// matches no registered option.
type UnknownOptionError struct {
	Token string // the token as given, including its dashes
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Token)
}

func (e *UnknownOptionError) Unwrap() error { return ErrBadConfiguration }

// MissingOptionError reports a required option that has neither an explicit
// value nor a default after parsing.
type MissingOptionError struct {
	Key string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("required option %q is not set", e.Key)
}

func (e *MissingOptionError) Unwrap() error { return ErrBadConfiguration }

// BadConfigurationError signals a programmer error: reading an option that
// has no value and no default, or whose stored value does not parse. It is
// used as a panic value by Get and GetOr, never returned. Validation via
// CheckOptions is supposed to make these states unreachable, so a
// BadConfigurationError should crash loudly instead of being caught.
type BadConfigurationError struct {
	Key    string
	Reason string
	Err    error
}

func (e *BadConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration bug: option %q: %s: %v", e.Key, e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration bug: option %q: %s", e.Key, e.Reason)
}

func (e *BadConfigurationError) Unwrap() error { return e.Err }
