// Package main is the entry point for the Gumroad profile strategy server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "profiler",
	Short: "Gumroad profile strategy generator",
	Long:  "Generates a complete Gumroad profile strategy (copy, visual identity, pricing, promotion and cover images) from a short product description.",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory searched for profiler.yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
