// Command capdump prints how the cap tokenizer classifies its arguments.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "capdump: ", 0)

	optionArgs, subject := splitArgs(args)
	opts, err := parseOptions(optionArgs, os.Getenv(formatEnv))
	if err != nil {
		logger.Print(err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usage)
			return 2
		}
		return 1
	}
	if opts.help {
		fmt.Fprint(stdout, usage)
		return 0
	}

	if err := writeRecords(stdout, collect(subject, opts.resolve), opts); err != nil {
		logger.Printf("failed to write output: %v", err)
		return 1
	}
	return 0
}
