package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Astroner/cap"
	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type record struct {
	Kind       string `json:"kind" yaml:"kind"`
	Flag       string `json:"flag,omitempty" yaml:"flag,omitempty"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	Terminated bool   `json:"terminated,omitempty" yaml:"terminated,omitempty"`
}

// collect tokenizes args. With resolve, flags without "=value" take the following positional
// argument as value.
func collect(args []string, resolve bool) []record {
	records := []record{}
	tokenizer := cap.New(args)
	for token := range tokenizer.All() {
		rec := record{
			Kind: token.Kind().String(),
		}
		switch token := token.(type) {
		case cap.ShortFlag:
			if token.Char != cap.NoChar {
				rec.Flag = string(token.Char)
			}
			rec.Value = token.Attached
		case cap.LongFlag:
			rec.Flag = token.FlagName()
			rec.Value = token.Attached
			rec.Terminated = token.Terminated
		case cap.Positional:
			rec.Value = token.Value
		}
		if resolve && token.Kind() != cap.KindPositional {
			rec.Value, _ = tokenizer.ValueOf(token)
		}
		records = append(records, rec)
	}
	return records
}

func writeRecords(w io.Writer, records []record, opts options) error {
	switch opts.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, records, !opts.noColor && isTerminal(w))
	}
}

func writeText(w io.Writer, records []record, useColor bool) error {
	colors := map[string]*color.Color{
		cap.KindShortFlag.String():  color.New(color.FgCyan),
		cap.KindLongFlag.String():   color.New(color.FgGreen),
		cap.KindPositional.String(): color.New(color.FgYellow),
	}
	for _, rec := range records {
		kind := rec.Kind
		if c, ok := colors[kind]; ok {
			if !useColor {
				c.DisableColor()
			}
			kind = c.Sprint(kind)
		}

		var line string
		switch rec.Kind {
		case cap.KindShortFlag.String():
			line = flagLine(kind, "-"+rec.Flag, rec.Value)
		case cap.KindLongFlag.String():
			line = flagLine(kind, "--"+rec.Flag, rec.Value)
		default:
			line = fmt.Sprintf("%s %q", kind, rec.Value)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func flagLine(kind, flag, value string) string {
	if value == "" {
		return kind + " " + flag
	}
	return fmt.Sprintf("%s %s = %q", kind, flag, value)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
