// File: config/config.go
package config

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/magiconair/properties"
)

// Config merges layered key/value property sources into one effective
// configuration. It holds two property layers, an immutable-by-convention
// default layer and a mutable override layer, plus the OptionGroup that
// parses argument vectors against the registered options. Lookups consult
// the override layer first and fall back to the default layer.
//
// There is no package-level singleton: construct one Config in the process
// entry point and pass it to every consumer.
type Config struct {
	mutex        sync.RWMutex
	defaultProps map[string]string // nil until a default layer is set
	props        map[string]string // override layer, always present
	options      *OptionGroup
}

// New creates a Config without a default layer.
func New() *Config {
	c := &Config{
		props: make(map[string]string),
	}
	c.options = newOptionGroup(c)
	return c
}

// NewWithDefaults creates a Config whose default layer is a copy of the
// given map.
func NewWithDefaults(defaults map[string]string) *Config {
	c := New()
	c.SetDefaults(defaults)
	return c
}

// Options returns the option group owned by this Config.
func (c *Config) Options() *OptionGroup {
	return c.options
}

// AddOption registers an option with the owned group.
func (c *Config) AddOption(opt Option) {
	c.options.AddOption(opt)
}

// AddOptions registers several options with the owned group.
func (c *Config) AddOptions(opts ...Option) {
	c.options.AddOptions(opts...)
}

// AddProperties reads a flat key=value property stream ("#"/"!" comments,
// "\"-escaped continuations) and merges its entries into the override layer,
// replacing existing keys. The stream is read to completion and not retained.
func (c *Config) AddProperties(r io.Reader) error {
	return c.AddPrefixedProperties(r, "")
}

// AddPrefixedProperties is AddProperties with every incoming key rewritten
// to prefix + "." + key before insertion. An empty prefix leaves keys
// untouched.
func (c *Config) AddPrefixedProperties(r io.Reader, prefix string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read property stream: %w", err)
	}

	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return fmt.Errorf("failed to parse property stream: %w", err)
	}

	pfx := ""
	if prefix != "" {
		pfx = prefix + "."
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		c.props[pfx+key] = value
	}
	return nil
}

// ParseArguments consumes flag tokens from the argument vector via the owned
// OptionGroup and returns the residual (positional) arguments. Unknown flags
// and malformed values yield recoverable errors matching ErrBadConfiguration.
func (c *Config) ParseArguments(args []string) ([]string, error) {
	return c.options.ConsumeOptions(args)
}

// CheckOptions validates the full option set after parsing, reporting every
// required option that has neither a value nor a default.
func (c *Config) CheckOptions() error {
	return c.options.CheckOptions()
}

// SetDefaults replaces the default layer with a copy of the given map.
// Previously set override values are preserved: the fallback chain is an
// explicit two-level lookup, so swapping the default layer never disturbs
// the override layer.
func (c *Config) SetDefaults(defaults map[string]string) {
	copied := make(map[string]string, len(defaults))
	for k, v := range defaults {
		copied[k] = v
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.defaultProps = copied
}

// ClearValues empties the override layer. The default layer is untouched,
// so subsequent lookups fall back to it.
func (c *Config) ClearValues() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.props = make(map[string]string)
}

// SetProperty writes a value into the override layer and returns the
// previous value in that layer, if any.
func (c *Config) SetProperty(key, value string) (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	prev, had := c.props[key]
	c.props[key] = value
	return prev, had
}

// SetDefaultProperty writes a value into the default layer and returns the
// previous value in that layer, if any. A Config created without defaults
// gets an empty default layer on first use.
func (c *Config) SetDefaultProperty(key, value string) (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.defaultProps == nil {
		c.defaultProps = make(map[string]string)
	}
	prev, had := c.defaultProps[key]
	c.defaultProps[key] = value
	return prev, had
}

// IsSet reports whether the override layer has an explicit entry for key.
// The default layer is ignored.
func (c *Config) IsSet(key string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	_, ok := c.props[key]
	return ok
}

// IsPresent reports whether a layered lookup yields any value for key.
func (c *Config) IsPresent(key string) bool {
	_, ok := c.Value(key)
	return ok
}

// Value looks key up through the layered chain: override layer first, then
// the default layer.
func (c *Config) Value(key string) (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if v, ok := c.props[key]; ok {
		return v, true
	}
	if c.defaultProps != nil {
		if v, ok := c.defaultProps[key]; ok {
			return v, true
		}
	}
	return "", false
}

// ValueOr is Value with an explicit terminal default.
func (c *Config) ValueOr(key, fallback string) string {
	if v, ok := c.Value(key); ok {
		return v
	}
	return fallback
}

// DumpConfiguration lists every currently resolvable property key with its
// effective value, sorted by key and indented by the given column count.
// This is the flattened property view; for registered options only, use
// OptionGroup.DumpConfiguration.
func (c *Config) DumpConfiguration(indent int) string {
	merged := c.merged()

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%*s%-20s ==> %s\n", indent, "", k, merged[k])
	}
	return b.String()
}

// merged returns a flat copy of the effective configuration, override layer
// winning over defaults.
func (c *Config) merged() map[string]string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	merged := make(map[string]string, len(c.props)+len(c.defaultProps))
	for k, v := range c.defaultProps {
		merged[k] = v
	}
	for k, v := range c.props {
		merged[k] = v
	}
	return merged
}

// lookupRaw lets the generic accessors accept a *Config directly.
func (c *Config) lookupRaw(key string) (string, bool) {
	return c.Value(key)
}
