package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/funvibe/ecmaparse/internal/cache"
	"github.com/funvibe/ecmaparse/internal/parser"
)

var (
	jsonOutput bool
	cachePath  string
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse one or more source files and report ok/error per file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&jsonOutput, "json", false, "dump each file's AST as JSON instead of an ok/error summary")
	parseCmd.Flags().StringVar(&cachePath, "cache", "", "sqlite file to consult/populate as a parse cache")
}

func runParse(cmd *cobra.Command, args []string) error {
	var store *cache.Store
	if cachePath != "" {
		s, err := cache.Open(cachePath)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer s.Close()
		store = s
	}

	failed := 0
	hits := 0
	start := time.Now()

	for _, path := range args {
		src, err := readSource(path)
		if err != nil {
			printErrorf("%s: %v\n", path, err)
			failed++
			continue
		}

		fileStart := time.Now()
		opts := optionsForFile(path)

		hash := ""
		if store != nil {
			hash = cache.Hash(src)
			if cached, ok, err := store.Get(hash); err == nil && ok {
				hits++
				if jsonOutput {
					emitJSON(cached)
				} else {
					fmt.Printf("%s: ok (cached)\n", path)
				}
				continue
			}
		}

		ast, errs := parser.Parse(src, opts)
		if len(errs) > 0 {
			failed++
			for _, e := range errs {
				printErrorf("%s: %s\n", path, e.Error())
			}
			continue
		}

		if store != nil {
			if err := store.Put(hash, ast); err != nil {
				log.Warn().Err(err).Str("file", path).Msg("failed to populate parse cache")
			}
		}

		if verbose {
			log.Info().
				Str("file", path).
				Dur("elapsed", time.Since(fileStart)).
				Msg("parsed")
		}

		if jsonOutput {
			emitJSON(ast)
		} else {
			fmt.Printf("%s: ok\n", path)
		}
	}

	if verbose {
		log.Info().
			Int("files", len(args)).
			Int("failed", failed).
			Int("cache_hits", hits).
			Dur("elapsed", time.Since(start)).
			Msg("batch parse complete")
	}

	if store != nil {
		if st, err := store.Stats(); err == nil {
			fmt.Printf("cache: %d entries, %s\n", st.Entries, humanize.Bytes(uint64(st.TotalSize)))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
	}
	return nil
}

func emitJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		printErrorf("encoding AST as JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
