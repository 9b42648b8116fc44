package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/UsmanZaka51/emotion-api/internal/config"
)

var engineURL string

var rootCmd = &cobra.Command{
	Use:   "emotion-api",
	Short: "A face and emotion recognition service",
	Long: `Emotion API is the gateway to a face and emotion analysis engine.
It serves the upload page for registering faces and processing videos,
exposes a JSON API for asynchronous analyses and ships CLI commands
for scripting the same operations.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&engineURL, "engine-url", "", "Analysis engine URL (overrides ENGINE_URL)")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

// loadConfig loads the environment configuration, letting the
// --engine-url flag take precedence over ENGINE_URL.
func loadConfig() (*config.Config, error) {
	if engineURL != "" {
		os.Setenv("ENGINE_URL", engineURL)
	}
	return config.Load()
}
