// Package config loads server settings from .env, an optional profiler.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting. APIKey may be empty: the server still starts
// and answers generation requests with a configuration error.
type Config struct {
	Port           string        `mapstructure:"port" validate:"required,numeric"`
	APIKey         string        `mapstructure:"api_key"`
	TextModel      string        `mapstructure:"text_model" validate:"required"`
	ImageModel     string        `mapstructure:"image_model" validate:"required"`
	Temperature    float32       `mapstructure:"temperature" validate:"gte=0,lte=2"`
	NumberOfImages int           `mapstructure:"number_of_images" validate:"gte=1,lte=4"`
	ImageMIMEType  string        `mapstructure:"image_mime_type" validate:"oneof=image/jpeg image/png"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	GinMode        string        `mapstructure:"gin_mode" validate:"oneof=debug release test"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("text_model", "gemini-2.5-flash")
	v.SetDefault("image_model", "imagen-3.0-generate-002")
	v.SetDefault("temperature", 0.7)
	v.SetDefault("number_of_images", 2)
	v.SetDefault("image_mime_type", "image/jpeg")
	v.SetDefault("request_timeout", "120s")
	v.SetDefault("gin_mode", "release")
}

// Load reads .env (if present) and then resolves settings with viper.
// configDir is searched for profiler.yaml; an empty value means the working directory.
func Load(configDir string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("profiler")
	v.SetConfigType("yaml")
	if configDir == "" {
		configDir = "."
	}
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()
	if err := v.BindEnv("api_key", "API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
