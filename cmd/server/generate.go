package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BerylCAtieno/gumroad-profiler/internal/config"
	"github.com/BerylCAtieno/gumroad-profiler/internal/models"
	"github.com/BerylCAtieno/gumroad-profiler/internal/profiler"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [product description]",
	Short: "Generate one profile strategy and print it as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

var (
	generateTone    string
	generateOutFile string
)

func init() {
	generateCmd.Flags().StringVarP(&generateTone, "tone", "t", string(models.ToneProfessional), "Tone: "+models.ToneNames())
	generateCmd.Flags().StringVarP(&generateOutFile, "out", "o", "", "Write the JSON to this file instead of stdout")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, args []string) error {
	productInfo := strings.Join(args, " ")
	if strings.TrimSpace(productInfo) == "" {
		return errors.New("product description is required")
	}
	tone := models.Tone(generateTone)
	if !tone.Valid() {
		return fmt.Errorf("invalid tone %q: must be one of %s", generateTone, models.ToneNames())
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if !cfg.HasAPIKey() {
		return errors.New("API_KEY environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	p, err := profiler.Open(ctx, profilerOptions(cfg), nil)
	if err != nil {
		return fmt.Errorf("failed to create provider clients: %w", err)
	}
	defer p.Close()

	content, err := p.GenerateProfile(ctx, productInfo, tone)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if generateOutFile == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(generateOutFile, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Profile strategy written to %s\n", generateOutFile)
	return nil
}
