// Package config provides configuration management for mermaidgen.
// It handles loading configuration from environment variables and .env
// files, covering the render server URL and the default theme and mode
// applied to generated diagrams.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application configuration settings.
type Config struct {
	Server string `mapstructure:"mermaid_ink_server"` // Render server base URL
	Theme  string `mapstructure:"mermaid_theme"`      // Default diagram theme
	Mode   string `mapstructure:"mermaid_mode"`       // Default display mode (light or dark)
}

// GetEnvVars loads configuration from environment variables and .env files.
// It first attempts to load from a .env file if present, then reads from environment variables.
// Default values are set for common configuration options.
// Returns a populated Config struct or exits on configuration errors.

func GetEnvVars() Config {
	if _, err := os.Stat(".env"); err == nil {
		// Initialize Viper from .env file
		viper.SetConfigFile(".env")

		// Read the .env file
		if err := viper.ReadInConfig(); err != nil {
			fmt.Printf("Error reading .env file: %s\n", err)
			os.Exit(1)
		}
	}

	// Enable reading environment variables
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("mermaid_ink_server", "https://mermaid.ink")
	viper.SetDefault("mermaid_mode", "light")

	// Setup conf struct with items from environment variables
	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		fmt.Printf("Error unmarshalling Viper conf: %s\n", err)
		os.Exit(1)
	}

	return conf
}
