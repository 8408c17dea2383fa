package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

// completeChefFiles provides shell completion for .chef recipe files.
func completeChefFiles(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	pattern := toComplete + "*.chef"
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	if len(matches) == 0 && toComplete == "" {
		matches, _ = filepath.Glob("*.chef")
	}
	return matches, cobra.ShellCompDirectiveNoSpace
}

// completeFormatFlag provides shell completion for the --format flag.
func completeFormatFlag(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	formats := []string{
		"plain\tOne dish per line",
		"json\tJSON array of dish strings",
	}
	return formats, cobra.ShellCompDirectiveNoFileComp
}
