// FILE: config/option_test.go
package config

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptionConstructors tests descriptor construction and accessors
func TestOptionConstructors(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		opt := String("cp", "classpath of target app").WithDefault(".")
		assert.Equal(t, "cp", opt.Key())
		assert.Equal(t, ShortNone, opt.Short())
		assert.Equal(t, "classpath of target app", opt.Description())
		assert.False(t, opt.IsRequired())
		assert.False(t, opt.IsFlag())
		require.True(t, opt.HasDefault())
		txt, ok := opt.DefaultText()
		assert.True(t, ok)
		assert.Equal(t, ".", txt)
	})

	t.Run("BoolDefaultsToFalse", func(t *testing.T) {
		opt := Bool("debug", "verbose debugging mode")
		assert.True(t, opt.IsFlag())
		require.True(t, opt.HasDefault())
		txt, _ := opt.DefaultText()
		assert.Equal(t, "false", txt)
	})

	t.Run("ShortFlag", func(t *testing.T) {
		opt := Bool("help", "show help").WithShort('h')
		assert.Equal(t, 'h', opt.Short())
	})

	t.Run("Required", func(t *testing.T) {
		opt := Path("source", "entry class").Required()
		assert.True(t, opt.IsRequired())
		assert.False(t, opt.HasDefault())
		_, ok := opt.DefaultText()
		assert.False(t, ok)
	})
}

// TestOptionCheck tests per-type value validation
func TestOptionCheck(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		raw     string
		wantErr bool
	}{
		{"BoolTrue", Bool("b", ""), "true", false},
		{"BoolOne", Bool("b", ""), "1", false},
		{"BoolGarbage", Bool("b", ""), "yes please", true},
		{"IntValid", Int("n", ""), "42", false},
		{"IntNegative", Int("n", ""), "-7", false},
		{"IntGarbage", Int("n", ""), "abc", true},
		{"FloatValid", Float("f", ""), "3.14", false},
		{"FloatGarbage", Float("f", ""), "pi", true},
		{"DurationValid", Duration("d", ""), "1m30s", false},
		{"DurationGarbage", Duration("d", ""), "90", true},
		{"EnumValid", Enum("e", "", "text", "html"), "html", false},
		{"EnumInvalid", Enum("e", "", "text", "html"), "pdf", true},
		{"PathValid", Path("p", ""), "a/b/../c", false},
		{"PathEmpty", Path("p", ""), "", true},
		{"StringAnything", String("s", ""), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opt.Check(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var fe *FormatError
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, tt.opt.Key(), fe.Key)
				assert.Equal(t, tt.raw, fe.Value)
				assert.ErrorIs(t, err, ErrBadConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestTypedOption tests the custom-parse escape hatch
func TestTypedOption(t *testing.T) {
	hex := Typed("mask", "bit mask in hex", func(s string) (uint64, error) {
		return strconv.ParseUint(s, 16, 64)
	}).WithDefault(0xFF)

	assert.NoError(t, hex.Check("1a2b"))
	assert.Error(t, hex.Check("zz"))

	cfg := New()
	cfg.AddOption(hex)
	assert.Equal(t, uint64(0xFF), Get(cfg, hex))

	cfg.SetProperty("mask", "10")
	assert.Equal(t, uint64(16), Get(cfg, hex))
}

// TestStandardOptions tests the options shared by all tools
func TestStandardOptions(t *testing.T) {
	require.Len(t, StandardOptions, 3)
	for _, opt := range StandardOptions {
		assert.True(t, opt.IsFlag(), "standard option %q should be a flag", opt.Key())
		assert.False(t, opt.IsRequired())
	}
	assert.Equal(t, 'h', ShowHelp.Short())
	assert.Equal(t, ShortNone, ShowVersion.Short())

	cfg := New()
	cfg.AddOptions(StandardOptions...)
	assert.False(t, Get(cfg, Debug))

	_, err := cfg.ParseArguments([]string{"-h"})
	require.NoError(t, err)
	assert.True(t, Get(cfg, ShowHelp))
}

// TestDurationOptionParse tests duration round-tripping through the store
func TestDurationOptionParse(t *testing.T) {
	timeout := Duration("timeout", "per-method analysis budget").WithDefault(30 * time.Second)

	cfg := New()
	cfg.AddOption(timeout)
	assert.Equal(t, 30*time.Second, Get(cfg, timeout))

	_, err := cfg.ParseArguments([]string{"--timeout", "2m"})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, Get(cfg, timeout))
}
