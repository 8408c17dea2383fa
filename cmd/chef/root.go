package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfg Config

var rootCmd = &cobra.Command{
	Use:   "chef",
	Short: "Run and validate Chef recipe sources",
	Long: `chef executes recipes written in the Chef esoteric programming language.

A recipe's "Method" section is a sequence of cooking instructions operating
on mixing bowls and baking dishes; "Serves N" drains the first N baking
dishes into the program's output.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(func() {
		loaded, err := LoadConfig(cfgFile)
		if err != nil {
			fmt.Printf("⚠ config: %v\n", err)
			return
		}
		cfg = loaded
	})
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./chef.toml)")
}

var cfgFile string

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
