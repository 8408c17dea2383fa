package main

import (
	"fmt"
	"os"

	"github.com/kuu/chef/parser"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:               "check <recipe-file>",
	Short:             "Validate a Chef recipe without executing it",
	Args:              cobra.ExactArgs(1),
	RunE:              runCheck,
	ValidArgsFunction: completeChefFiles,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read recipe: %w", err)
	}

	prog, err := parser.Parse(string(source))
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s: %d recipe(s) parsed\n", args[0], len(prog.Order))
	for _, key := range prog.Order {
		r := prog.Recipes[key]
		fmt.Printf("ℹ   %s — %d ingredient(s), serves %d\n", r.Title, len(r.Ingredients), r.ServesN)
	}
	return nil
}
