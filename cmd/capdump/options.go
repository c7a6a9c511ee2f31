package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Astroner/cap"
)

const formatEnv = "CAPDUMP_FORMAT"

const usage = `Usage: capdump [options] -- [args...]

Prints how each of args is tokenized. Without "--" all arguments are dumped
and options take their defaults.

Options:
  -f, --format text|json|yaml  output format (default text, or $CAPDUMP_FORMAT)
  -r, --resolve                take flag values from the following arguments
  -n, --no-color               disable colored text output
  -h, --help                   print this help
`

var errUsage = errors.New("usage error")

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(s); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", errUsage, s)
	}
}

type options struct {
	format  format
	resolve bool
	noColor bool
	help    bool
}

// splitArgs separates capdump own options from the arguments to dump at the first "--"
func splitArgs(args []string) (optionArgs, subject []string) {
	if i := slices.Index(args, "--"); i >= 0 {
		return args[:i], args[i+1:]
	}
	return nil, args
}

func parseOptions(args []string, defaultFormat string) (options, error) {
	opts := options{
		format: formatText,
	}
	if defaultFormat != "" {
		f, err := parseFormat(defaultFormat)
		if err != nil {
			return opts, fmt.Errorf("$%s: %w", formatEnv, err)
		}
		opts.format = f
	}

	tokenizer := cap.New(args)
	for token := range tokenizer.All() {
		var name string
		switch token := token.(type) {
		case cap.ShortFlag:
			name = string(token.Char)
		case cap.LongFlag:
			name = token.FlagName()
		case cap.Positional:
			return opts, fmt.Errorf("%w: unexpected argument %q before \"--\"", errUsage, token.Value)
		}

		switch name {
		case "f", "format":
			value, ok := tokenizer.ValueOf(token)
			if !ok {
				return opts, fmt.Errorf("%w: %s requires a value", errUsage, token)
			}
			f, err := parseFormat(value)
			if err != nil {
				return opts, fmt.Errorf("%s: %w", token, err)
			}
			opts.format = f
		case "r", "resolve":
			if err := checkNoValue(token); err != nil {
				return opts, err
			}
			opts.resolve = true
		case "n", "no-color":
			if err := checkNoValue(token); err != nil {
				return opts, err
			}
			opts.noColor = true
		case "h", "help":
			opts.help = true
		default:
			return opts, fmt.Errorf("%w: unknown option %s", errUsage, token)
		}
	}
	return opts, nil
}

func checkNoValue(token cap.Token) error {
	var attached string
	switch token := token.(type) {
	case cap.ShortFlag:
		attached = token.Attached
	case cap.LongFlag:
		attached = token.Attached
	}
	if attached != "" {
		return fmt.Errorf("%w: %s doesn't take a value", errUsage, token)
	}
	return nil
}
