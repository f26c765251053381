package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/funvibe/ecmaparse/internal/lexer"
	"github.com/funvibe/ecmaparse/internal/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream for a single source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := readSource(path)
	if err != nil {
		return err
	}

	toks := lexer.New(src).AllTokens()
	for _, tok := range toks {
		fmt.Println(tok.String())
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}
