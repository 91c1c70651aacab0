package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/wordfinder/internal/config"
	"github.com/heartmarshall/wordfinder/internal/domain"
)

// Process exit codes.
const (
	ExitFailure        = 1
	ExitUsage          = 2
	ExitDictionaryGone = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds the command-line arguments. Empty values leave the
// corresponding configuration untouched.
type Options struct {
	ConfigPath     string
	DictionaryPath string
	Source         string
	DictionaryName string
	LogLevel       string
	LogFormat      string
	ShowVersion    bool
}

const usage = `
wordfinder - find the dictionary words you can spell with a set of letters.

Usage:
  wordfinder [options] DICTIONARY_PATH

Arguments:
  DICTIONARY_PATH
    Text file with one word per line. Not needed with -source postgres.

Options:
`

// Parse processes command-line arguments. It returns the parsed Options,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("wordfinder", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	var opts Options
	flagSet.StringVar(&opts.ConfigPath, "config", "", "Path to the YAML config file.")
	flagSet.StringVar(&opts.Source, "source", "", "Dictionary source. Options: 'file' or 'postgres'.")
	flagSet.StringVar(&opts.DictionaryName, "dictionary-name", "", "Dictionary name in the database (postgres source).")
	flagSet.StringVar(&opts.LogFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&opts.LogLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.BoolVar(&opts.ShowVersion, "version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "too many arguments: expected a single DICTIONARY_PATH"}
	}
	opts.DictionaryPath = flagSet.Arg(0)

	opts.LogFormat = strings.ToLower(opts.LogFormat)
	switch opts.LogFormat {
	case "", "text", "json":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	opts.LogLevel = strings.ToLower(opts.LogLevel)
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	opts.Source = strings.ToLower(opts.Source)
	switch opts.Source {
	case "", config.SourceFile, config.SourcePostgres:
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid source: must be 'file' or 'postgres'"}
	}

	return &opts, false, nil
}

// Apply overrides cfg with the options that were set.
func (o *Options) Apply(cfg *config.Config) {
	if o.DictionaryPath != "" {
		cfg.Dictionary.Path = o.DictionaryPath
	}
	if o.Source != "" {
		cfg.Dictionary.Source = o.Source
	}
	if o.DictionaryName != "" {
		cfg.Dictionary.Name = o.DictionaryName
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
}

// MissingDictionary is returned when the file source has no path to read.
func MissingDictionary() *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: "missing dictionary: usage: wordfinder [options] DICTIONARY_PATH",
	}
}

// ExitCode maps an error returned by the application to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, domain.ErrNotFound) {
		return ExitDictionaryGone
	}
	return ExitFailure
}
