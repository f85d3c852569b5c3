package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/gumroad-profiler/internal/api"
	"github.com/BerylCAtieno/gumroad-profiler/internal/config"
	"github.com/BerylCAtieno/gumroad-profiler/internal/metrics"
	"github.com/BerylCAtieno/gumroad-profiler/internal/profiler"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard and the generation API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	m := metrics.New()

	// Without a key the server still starts; generation requests get a 500.
	var generator profiler.Generator
	if cfg.HasAPIKey() {
		p, err := profiler.Open(context.Background(), profilerOptions(cfg), m)
		if err != nil {
			return fmt.Errorf("failed to create provider clients: %w", err)
		}
		defer p.Close()
		generator = p
	} else {
		log.Println("WARN: API_KEY is not set, generation requests will fail")
	}

	handler := api.NewHandler(generator, m, api.Options{
		ImageMIMEType:  cfg.ImageMIMEType,
		RequestTimeout: cfg.RequestTimeout,
	})
	router, err := api.NewRouter(handler, m)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Gumroad profiler starting on port %s", cfg.Port)
		log.Printf("Dashboard available at: http://localhost:%s/", cfg.Port)
		log.Printf("API endpoint available at: http://localhost:%s/api/generate", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func profilerOptions(cfg *config.Config) profiler.Options {
	return profiler.Options{
		APIKey:         cfg.APIKey,
		TextModel:      cfg.TextModel,
		ImageModel:     cfg.ImageModel,
		Temperature:    cfg.Temperature,
		NumberOfImages: cfg.NumberOfImages,
		ImageMIMEType:  cfg.ImageMIMEType,
	}
}
