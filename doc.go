// File: config/doc.go

// Package config is the command-line configuration layer for compiler and
// analysis tools: it merges layered key/value property sources (defaults,
// .properties streams, command-line arguments) into one effective
// configuration and exposes typed, validated option lookups.
//
// Features:
//   - Typed option descriptors (bool, string, int, float, duration, enum,
//     path, or custom parse functions) with defaults and required markers
//   - Long and short flags, --key=value forms, "--" terminator, residual
//     (positional) argument extraction
//   - Two-layer property store: explicit values override defaults, with an
//     explicit fallback lookup instead of a hidden property chain
//   - Java-style .properties streams ("#"/"!" comments, "\" continuations),
//     optionally merged under a key prefix
//   - Struct decoding of the effective configuration via mapstructure
//   - Recoverable configuration errors all match ErrBadConfiguration;
//     programmer errors panic with *BadConfigurationError
//   - Thread-safe reads and writes using sync.RWMutex
//
// Quick Start:
//
//	var (
//	    classpath = config.String("cp", "classpath of target app").WithDefault(".")
//	    source    = config.Path("source", "input file to analyze").Required()
//	)
//
//	cfg := config.New()
//	cfg.AddOptions(config.StandardOptions...)
//	cfg.AddOptions(classpath, source)
//
//	rest, err := cfg.ParseArguments(os.Args[1:])
//	if err == nil {
//	    err = cfg.CheckOptions()
//	}
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    fmt.Fprint(os.Stderr, cfg.Options().Usage())
//	    os.Exit(1)
//	}
//
//	cp := config.Get(cfg, classpath)
//	_ = rest // positional arguments
//
// Lookup precedence (highest to lowest):
//  1. Command-line arguments and explicit SetProperty calls
//  2. Merged .properties streams (later streams replace earlier keys)
//  3. The default property layer (SetDefaults)
//  4. The option's own default value
package config
