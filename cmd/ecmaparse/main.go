package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// log is the process-wide structured logger the batch subcommands use for
// per-file parse duration, error counts, and cache hits; console-writer
// output so it stays readable in a terminal, same as the rest of the pack
// reaches for a structured logger over ad-hoc fmt.Printf.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
