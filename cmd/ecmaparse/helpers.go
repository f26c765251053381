package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/ecmaparse/internal/config"
	"github.com/funvibe/ecmaparse/internal/utils"
)

// errColor renders diagnostics in red, but only when stdout is actually a
// terminal -- piping ecmaparse's output into a file or another tool should
// never embed ANSI escapes. go-isatty is what gates that check; fatih/color
// is what renders it when it passes.
var errColor = color.New(color.FgRed, color.Bold)

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

func printErrorf(format string, args ...interface{}) {
	if isTerminal() {
		errColor.Fprintf(os.Stderr, format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

func optionsForFile(path string) config.Options {
	opts := config.Default()
	if moduleFlag {
		opts.SourceType = config.SourceTypeModule
	} else {
		opts.SourceType = utils.SourceTypeForExtension(path)
	}
	opts.AllowHashBang = true
	return opts
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
