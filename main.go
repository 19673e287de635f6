package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirkon/errors"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/hiergrade/internal/grading"
)

const (
	exitPassed     = 0
	exitFailed     = 1
	exitInputError = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hiergrade", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: hiergrade [flags] <file.go>")
		fs.PrintDefaults()
	}

	var format OutputFormat
	configPath := fs.String("config", "", "YAML config path, "+defaultConfigName+" is used when present")
	fs.TextVar(&format, "format", OutputFormatText, "output format: text or yaml")
	quiet := fs.Bool("quiet", false, "do not echo the trace")
	report := fs.String("report", "", "write the YAML verdict into this file as well")

	if err := fs.Parse(args); err != nil {
		return exitInputError
	}
	if fs.NArg() != 1 {
		_, _ = fmt.Fprintln(stderr, "hiergrade: exactly one Go source file is expected")
		fs.Usage()
		return exitInputError
	}

	cfg, err := loadConfig(configOrDefault(*configPath), *configPath != "")
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "hiergrade: %s\n", err)
		return exitInputError
	}

	// Flags take precedence over config values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = format
		case "quiet":
			cfg.Quiet = *quiet
		case "report":
			cfg.Report = *report
		}
	})

	var echo io.Writer = stdout
	if cfg.Quiet || cfg.Format == OutputFormatYAML {
		echo = nil
	}

	v, err := grading.Run(fs.Arg(0), echo)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "hiergrade: %s\n", err)
		return exitInputError
	}

	if cfg.Format == OutputFormatYAML {
		if err := writeVerdict(stdout, v); err != nil {
			_, _ = fmt.Fprintf(stderr, "hiergrade: %s\n", err)
			return exitInputError
		}
	}

	if cfg.Report != "" {
		if err := writeReport(cfg.Report, v); err != nil {
			_, _ = fmt.Fprintf(stderr, "hiergrade: %s\n", err)
			return exitInputError
		}
	}

	if !v.Passed {
		return exitFailed
	}

	return exitPassed
}

func configOrDefault(path string) string {
	if path == "" {
		return defaultConfigName
	}

	return path
}

func writeVerdict(w io.Writer, v grading.Verdict) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode verdict")
	}

	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "flush verdict")
	}

	return nil
}

func writeReport(path string, v grading.Verdict) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create report file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close report file")
		}
	}()

	if err := writeVerdict(file, v); err != nil {
		return errors.Wrapf(err, "write report %s", path)
	}

	return nil
}
