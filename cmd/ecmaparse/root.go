package main

import (
	"github.com/spf13/cobra"
)

var (
	moduleFlag bool
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "ecmaparse",
		Short: "An ECMAScript parser driver: parse, tokenize, or tree-print JavaScript source",
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&moduleFlag, "module", false, "treat input as an ES module instead of a script")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable structured logging of each step")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
}
