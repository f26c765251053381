package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/funvibe/ecmaparse/internal/parser"
	"github.com/funvibe/ecmaparse/internal/prettyprinter"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Parse a single source file and print its AST as an indented tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func runAST(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := readSource(path)
	if err != nil {
		return err
	}

	prog, errs := parser.Parse(src, optionsForFile(path))
	if len(errs) > 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("%s", strings.Join(msgs, "\n"))
	}

	printer := prettyprinter.NewTreePrinter()
	prog.Accept(printer)
	fmt.Print(printer.String())
	return nil
}
