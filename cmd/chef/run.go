package main

import (
	"fmt"
	"os"

	"github.com/kuu/chef"
	"github.com/kuu/chef/renderers"
	"github.com/spf13/cobra"
)

var runFormat string

var runCmd = &cobra.Command{
	Use:               "run <recipe-file>",
	Short:             "Execute a Chef recipe and print the dishes it serves",
	Args:              cobra.ExactArgs(1),
	RunE:              runRun,
	ValidArgsFunction: completeChefFiles,
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "Output format (plain, json)")
	_ = runCmd.RegisterFlagCompletionFunc("format", completeFormatFlag)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read recipe: %w", err)
	}

	dishes, err := chef.ExecuteWithOptions(string(source), chef.ExecuteOptions{
		MaxSousChefDepth: cfg.MaxSousChefDepth,
	})
	if err != nil {
		return fmt.Errorf("failed to execute recipe: %w", err)
	}

	format := runFormat
	if format == "" {
		format = cfg.Format
	}
	renderer, ok := renderers.Lookup(format)
	if !ok {
		return fmt.Errorf("unsupported format: %s (supported: plain, json)", format)
	}

	fmt.Println(renderer.RenderDishes(dishes))
	return nil
}
