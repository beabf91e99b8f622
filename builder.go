// File: config/builder.go
package config

import (
	"fmt"
	"io"
	"os"
)

// ValidatorFunc validates a fully loaded Config. It runs at the end of the
// build, after argument parsing and option checking.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for assembling a Config: options to
// register, default values, property streams to merge and the argument
// vector to parse.
type Builder struct {
	cfg        *Config
	streams    []propertyStream
	args       []string
	validators []ValidatorFunc
}

type propertyStream struct {
	r      io.Reader
	prefix string
}

// NewBuilder creates a builder that parses os.Args[1:] unless WithArgs
// overrides it.
func NewBuilder() *Builder {
	return &Builder{
		cfg:  New(),
		args: os.Args[1:],
	}
}

// WithOptions registers options to parse arguments against.
func (b *Builder) WithOptions(opts ...Option) *Builder {
	b.cfg.AddOptions(opts...)
	return b
}

// WithDefaults sets the default property layer.
func (b *Builder) WithDefaults(defaults map[string]string) *Builder {
	b.cfg.SetDefaults(defaults)
	return b
}

// WithProperties adds a property stream to merge into the override layer.
// Streams are consumed in the order they were added, later keys replacing
// earlier ones.
func (b *Builder) WithProperties(r io.Reader) *Builder {
	return b.WithPrefixedProperties(r, "")
}

// WithPrefixedProperties adds a property stream whose keys are rewritten to
// prefix + "." + key.
func (b *Builder) WithPrefixedProperties(r io.Reader, prefix string) *Builder {
	b.streams = append(b.streams, propertyStream{r: r, prefix: prefix})
	return b
}

// WithArgs sets the command-line arguments to parse.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithValidator adds a validation function. Multiple validators run in the
// order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build merges all property streams, parses the argument vector, checks the
// option set and runs the validators. It returns the Config and the residual
// (positional) arguments. Every failure is recoverable; the caller is
// expected to report it and terminate the invocation.
func (b *Builder) Build() (*Config, []string, error) {
	for _, s := range b.streams {
		if err := b.cfg.AddPrefixedProperties(s.r, s.prefix); err != nil {
			return nil, nil, err
		}
	}

	residual, err := b.cfg.ParseArguments(b.args)
	if err != nil {
		return nil, nil, err
	}

	if err := b.cfg.CheckOptions(); err != nil {
		return nil, nil, err
	}

	for _, validator := range b.validators {
		if err := validator(b.cfg); err != nil {
			return nil, nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return b.cfg, residual, nil
}
