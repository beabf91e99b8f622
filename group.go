// File: config/group.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// OptionGroup owns the set of options belonging to one Config instance and
// runs the argument-parsing state machine over raw argument vectors.
// Recognized option values are written into the owning Config's override
// property layer under the option's long key; everything from the first
// non-flag token on is returned untouched as the residual argument list.
type OptionGroup struct {
	cfg     *Config
	mutex   sync.RWMutex
	byKey   map[string]Option
	byShort map[rune]Option
	order   []string // long keys in registration order
}

func newOptionGroup(cfg *Config) *OptionGroup {
	return &OptionGroup{
		cfg:     cfg,
		byKey:   make(map[string]Option),
		byShort: make(map[rune]Option),
	}
}

// AddOption registers an option under its long key and, if present, its
// short flag. Re-adding a key replaces the previous registration but keeps
// its position in the registration order. An option with an invalid key is a
// programmer error and panics with a *BadConfigurationError.
func (g *OptionGroup) AddOption(opt Option) {
	key := opt.Key()
	if !isValidOptionKey(key) {
		panic(&BadConfigurationError{Key: key, Reason: "invalid option key"})
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	if old, exists := g.byKey[key]; exists {
		if s := old.Short(); s != ShortNone {
			delete(g.byShort, s)
		}
	} else {
		g.order = append(g.order, key)
	}

	g.byKey[key] = opt
	if s := opt.Short(); s != ShortNone {
		g.byShort[s] = opt
	}
}

// AddOptions registers several options at once, in order.
func (g *OptionGroup) AddOptions(opts ...Option) {
	for _, opt := range opts {
		g.AddOption(opt)
	}
}

// Options returns the registered options in registration order.
func (g *OptionGroup) Options() []Option {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	opts := make([]Option, 0, len(g.order))
	for _, key := range g.order {
		opts = append(opts, g.byKey[key])
	}
	return opts
}

// ConsumeOptions walks the argument vector, matching flag tokens against the
// registered options until the first token that does not look like a flag.
// That token and everything after it are returned verbatim as the residual
// argument list.
//
// Flags are spelled --name or -name, with -s resolving against the short
// index; a value follows either inline as --name=value or as the next token.
// Bool options consume no value token and store "true". A bare "--" ends
// flag parsing and is consumed. A token with a leading dash that matches no
// option fails with *UnknownOptionError; a malformed or unparsable value
// fails with *FormatError. Parsed values are stored as raw strings in the
// owning Config's override layer.
func (g *OptionGroup) ConsumeOptions(args []string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	i := 0
	for i < len(args) {
		tok := args[i]
		if tok == "--" {
			i++
			break
		}

		name, inline, hasInline, isFlagToken := splitFlagToken(tok)
		if !isFlagToken {
			break // first positional argument, tail starts here
		}

		opt := g.lookupLocked(name)
		if opt == nil {
			return nil, &UnknownOptionError{Token: tok}
		}

		var raw string
		switch {
		case hasInline:
			raw = inline
		case opt.IsFlag():
			raw = "true"
		default:
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: option %q requires a value", ErrBadConfiguration, opt.Key())
			}
			i++
			raw = args[i]
		}

		if err := opt.Check(raw); err != nil {
			return nil, err
		}
		g.cfg.SetProperty(opt.Key(), raw)
		i++
	}

	residual := make([]string, len(args)-i)
	copy(residual, args[i:])
	return residual, nil
}

// CheckOptions verifies that every required option has either a value in the
// layered property store or a configured default. It checks presence only;
// type conversion already happened in ConsumeOptions or is deferred to Get.
// All missing options are reported, each as a *MissingOptionError.
func (g *OptionGroup) CheckOptions() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var missing []error
	for _, key := range g.order {
		opt := g.byKey[key]
		if !opt.IsRequired() || opt.HasDefault() {
			continue
		}
		if _, ok := g.cfg.Value(key); !ok {
			missing = append(missing, &MissingOptionError{Key: key})
		}
	}
	return errors.Join(missing...)
}

// Usage returns an aligned help listing of all registered options, in
// registration order.
func (g *OptionGroup) Usage() string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	type row struct {
		flags string
		help  string
	}

	rows := make([]row, 0, len(g.order))
	width := 0
	for _, key := range g.order {
		opt := g.byKey[key]

		flags := "--" + key
		if s := opt.Short(); s != ShortNone {
			flags += ", -" + string(s)
		}
		if !opt.IsFlag() {
			flags += " <value>"
		}

		help := opt.Description()
		if txt, ok := opt.DefaultText(); ok && !opt.IsFlag() {
			help += fmt.Sprintf(" (default: %s)", txt)
		}
		if opt.IsRequired() {
			help += " [required]"
		}

		if len(flags) > width {
			width = len(flags)
		}
		rows = append(rows, row{flags: flags, help: help})
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, r.flags, r.help)
	}
	return b.String()
}

// DumpConfiguration lists every registered option with its currently
// resolved value, in registration order, indented by the given column count.
// Options without a value fall back to their default text or "<not set>".
func (g *OptionGroup) DumpConfiguration(indent int) string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var b strings.Builder
	for _, key := range g.order {
		opt := g.byKey[key]
		val, ok := g.cfg.Value(key)
		if !ok {
			if txt, has := opt.DefaultText(); has {
				val = txt
			} else {
				val = "<not set>"
			}
		}
		fmt.Fprintf(&b, "%*s%-20s ==> %s\n", indent, "", key, val)
	}
	return b.String()
}

// lookupRaw lets the generic accessors treat a group like its owning Config.
func (g *OptionGroup) lookupRaw(key string) (string, bool) {
	return g.cfg.Value(key)
}

// lookupLocked resolves a flag name against the long index, falling back to
// the short index for single-rune names. Callers must hold g.mutex.
func (g *OptionGroup) lookupLocked(name string) Option {
	if opt, ok := g.byKey[name]; ok {
		return opt
	}
	if r, size := utf8.DecodeRuneInString(name); size == len(name) && r != utf8.RuneError {
		if opt, ok := g.byShort[r]; ok {
			return opt
		}
	}
	return nil
}

// splitFlagToken decides whether a token looks like a flag and, if so,
// splits it into the flag name and an optional inline "=value" part.
// A bare "-" is not a flag (conventional stdin placeholder).
func splitFlagToken(tok string) (name, value string, hasValue, isFlag bool) {
	if len(tok) < 2 || tok[0] != '-' {
		return "", "", false, false
	}
	body := strings.TrimPrefix(tok, "-")
	body = strings.TrimPrefix(body, "-")

	if eq := strings.IndexByte(body, '='); eq >= 0 {
		return body[:eq], body[eq+1:], true, true
	}
	return body, "", false, true
}

// optionSource is the value-lookup contract shared by *Config and
// *OptionGroup so that the generic accessors work against either.
type optionSource interface {
	lookupRaw(key string) (string, bool)
}

// Get resolves an option through the layered property store and converts it
// to its declared type. A missing value falls back to the option's default.
// Get panics with a *BadConfigurationError when the option has neither a
// value nor a default, or when the stored value does not parse: both signal
// a setup bug that CheckOptions should have caught, not user input.
func Get[T any](src optionSource, opt *TypedOption[T]) T {
	raw, ok := src.lookupRaw(opt.key)
	if !ok {
		if opt.hasDefault {
			return opt.defaultVal
		}
		panic(&BadConfigurationError{Key: opt.key, Reason: "option has no value and no default"})
	}
	v, err := opt.parse(raw)
	if err != nil {
		panic(&BadConfigurationError{Key: opt.key, Reason: fmt.Sprintf("stored value %q does not parse", raw), Err: err})
	}
	return v
}

// GetOr is like Get but returns fallback instead of panicking when the
// option has no value and no default. A stored value that does not parse is
// still a programmer error and panics.
func GetOr[T any](src optionSource, opt *TypedOption[T], fallback T) T {
	if _, ok := src.lookupRaw(opt.key); !ok && !opt.hasDefault {
		return fallback
	}
	return Get(src, opt)
}

// TryGet is like Get but surfaces failures as recoverable errors: a
// *FormatError when the stored value does not parse, or an error matching
// ErrBadConfiguration when the option has neither a value nor a default.
func TryGet[T any](src optionSource, opt *TypedOption[T]) (T, error) {
	raw, ok := src.lookupRaw(opt.key)
	if !ok {
		if opt.hasDefault {
			return opt.defaultVal, nil
		}
		var zero T
		return zero, fmt.Errorf("%w: option %q has no value and no default", ErrBadConfiguration, opt.key)
	}
	v, err := opt.parse(raw)
	if err != nil {
		var zero T
		return zero, &FormatError{Key: opt.key, Value: raw, Err: err}
	}
	return v, nil
}
