// FILE: config/example/main.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"config"
)

// Command-line surface of a small analysis tool built on the config package.
var (
	classpath = config.String("cp", "classpath of target app").WithDefault(".")
	outDir    = config.Path("out", "path to write generated reports").WithDefault("out")
	report    = config.Enum("report-format", "report output format", "text", "html").WithDefault("text")
	timeout   = config.Duration("timeout", "per-method analysis budget").WithDefault(0)
	source    = config.Path("source", "entry class to analyze").Required()
)

func main() {
	cfg := config.New()
	cfg.AddOptions(config.StandardOptions...)
	cfg.AddOptions(classpath, outDir, report, timeout, source)

	// Project-level settings may come from a properties stream, merged under
	// the "tool" prefix before the command line is applied.
	if f, err := os.Open("tool.properties"); err == nil {
		mergeErr := cfg.AddPrefixedProperties(f, "tool")
		f.Close()
		if mergeErr != nil {
			log.Fatalf("cannot load tool.properties: %v", mergeErr)
		}
	}

	rest, err := cfg.ParseArguments(os.Args[1:])
	if err == nil && !config.Get(cfg, config.ShowHelp) {
		err = cfg.CheckOptions()
	}
	if err != nil {
		if errors.Is(err, config.ErrBadConfiguration) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, "usage: exampletool [options] [targets...]")
			fmt.Fprint(os.Stderr, cfg.Options().Usage())
			os.Exit(1)
		}
		log.Fatal(err)
	}

	if config.Get(cfg, config.ShowHelp) {
		fmt.Println("usage: exampletool [options] [targets...]")
		fmt.Print(cfg.Options().Usage())
		return
	}
	if config.Get(cfg, config.ShowVersion) {
		fmt.Println("exampletool 0.1.0")
		return
	}

	if config.Get(cfg, config.Debug) {
		log.Println("effective configuration:")
		fmt.Print(cfg.DumpConfiguration(4))
	}

	fmt.Printf("analyzing %s (classpath %s, format %s)\n",
		config.Get(cfg, source), config.Get(cfg, classpath), config.Get(cfg, report))
	if len(rest) > 0 {
		fmt.Printf("additional targets: %s\n", strings.Join(rest, ", "))
	}
	fmt.Printf("writing reports to %s\n", config.Get(cfg, outDir))
}
