// File: config/option.go
package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ShortNone marks an option without a short flag.
const ShortNone rune = 0

// Option is the untyped view of an option descriptor, used by OptionGroup to
// index and validate heterogeneous options. Concrete options are created
// through the typed constructors (Bool, String, Int, ...) and implement this
// interface via TypedOption.
type Option interface {
	// Key returns the unique long key of the option (e.g. "cp").
	Key() string
	// Short returns the single-character short flag, or ShortNone.
	Short() rune
	// Description returns the human-readable help text.
	Description() string
	// IsRequired reports whether the option must have a value after parsing.
	IsRequired() bool
	// HasDefault reports whether a default value was configured.
	HasDefault() bool
	// DefaultText returns the textual form of the default value, if any.
	DefaultText() (string, bool)
	// IsFlag reports whether the option takes no value token (bool options).
	IsFlag() bool
	// Check validates that raw can be converted to the option's type.
	// It returns a *FormatError on failure and never stores anything.
	Check(raw string) error
}

// TypedOption is a typed, immutable descriptor for a single configurable
// value: its long key, optional short flag, help text, required marker,
// optional default and the string-to-value conversion rule. Options are
// typically declared once as package-level variables and may be shared
// across several OptionGroup instances.
type TypedOption[T any] struct {
	key         string
	short       rune
	description string
	required    bool
	hasDefault  bool
	defaultVal  T
	flag        bool
	parse       func(string) (T, error)
}

// Typed creates an option with a caller-supplied conversion function.
// It is the escape hatch for value types the package constructors do not
// cover (e.g. enumerations backed by custom types).
func Typed[T any](key, description string, parse func(string) (T, error)) *TypedOption[T] {
	return &TypedOption[T]{
		key:         key,
		short:       ShortNone,
		description: description,
		parse:       parse,
	}
}

// Bool creates a boolean option. Bool options are flags: they consume no
// value token on the command line and default to false unless overridden
// with WithDefault or an explicit --key=value form.
func Bool(key, description string) *TypedOption[bool] {
	o := Typed(key, description, strconv.ParseBool)
	o.flag = true
	o.hasDefault = true
	return o
}

// String creates a string option.
func String(key, description string) *TypedOption[string] {
	return Typed(key, description, func(s string) (string, error) { return s, nil })
}

// Int creates an integer option.
func Int(key, description string) *TypedOption[int] {
	return Typed(key, description, strconv.Atoi)
}

// Float creates a floating-point option.
func Float(key, description string) *TypedOption[float64] {
	return Typed(key, description, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Duration creates an option holding a time.Duration ("30s", "1m30s", ...).
func Duration(key, description string) *TypedOption[time.Duration] {
	return Typed(key, description, time.ParseDuration)
}

// Enum creates a string option restricted to a fixed set of choices.
func Enum(key, description string, choices ...string) *TypedOption[string] {
	return Typed(key, description, func(s string) (string, error) {
		for _, c := range choices {
			if s == c {
				return s, nil
			}
		}
		return "", fmt.Errorf("must be one of: %s", strings.Join(choices, ", "))
	})
}

// Path creates a string option holding a filesystem path. The value is
// cleaned but not required to exist; existence checks belong to the caller.
func Path(key, description string) *TypedOption[string] {
	return Typed(key, description, func(s string) (string, error) {
		if s == "" {
			return "", fmt.Errorf("path must not be empty")
		}
		return filepath.Clean(s), nil
	})
}

// WithShort sets the single-character short flag. It returns the option to
// allow chaining at construction time; options must not be modified after
// they have been added to a group.
func (o *TypedOption[T]) WithShort(short rune) *TypedOption[T] {
	o.short = short
	return o
}

// WithDefault sets the default value returned by Get when neither the
// argument vector nor the property layers supplied one.
func (o *TypedOption[T]) WithDefault(v T) *TypedOption[T] {
	o.defaultVal = v
	o.hasDefault = true
	return o
}

// Required marks the option as mandatory for CheckOptions.
func (o *TypedOption[T]) Required() *TypedOption[T] {
	o.required = true
	return o
}

func (o *TypedOption[T]) Key() string         { return o.key }
func (o *TypedOption[T]) Short() rune         { return o.short }
func (o *TypedOption[T]) Description() string { return o.description }
func (o *TypedOption[T]) IsRequired() bool    { return o.required }
func (o *TypedOption[T]) HasDefault() bool    { return o.hasDefault }
func (o *TypedOption[T]) IsFlag() bool        { return o.flag }

func (o *TypedOption[T]) DefaultText() (string, bool) {
	if !o.hasDefault {
		return "", false
	}
	return fmt.Sprintf("%v", o.defaultVal), true
}

func (o *TypedOption[T]) Check(raw string) error {
	if _, err := o.parse(raw); err != nil {
		return &FormatError{Key: o.key, Value: raw, Err: err}
	}
	return nil
}

// Options every tool built on this package is expected to register.
var (
	// ShowHelp requests the usage listing.
	ShowHelp = Bool("help", "show help").WithShort('h')
	// ShowVersion requests the tool version.
	ShowVersion = Bool("version", "print version number")
	// Debug enables verbose debugging output.
	Debug = Bool("debug", "verbose debugging mode")
)

// StandardOptions lists the options shared by all tools.
var StandardOptions = []Option{ShowHelp, ShowVersion, Debug}
