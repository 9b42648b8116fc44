package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UsmanZaka51/emotion-api/internal/engine"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the analysis engine",
	Long:  `Pings the analysis engine and reports whether it is reachable and healthy.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.Engine.URL, cfg.Engine.GetAPIKey())
	if err != nil {
		return fmt.Errorf("failed to create engine client: %w", err)
	}

	ctx := context.Background()

	fmt.Printf("Engine: %s\n", cfg.Engine.URL)

	if err := eng.Health(ctx); err != nil {
		return fmt.Errorf("engine health check failed: %w", err)
	}
	fmt.Println("Health: ok")

	faces, err := eng.ListFaces(ctx)
	if err != nil {
		fmt.Printf("Warning: could not count registered faces: %v\n", err)
		return nil
	}
	fmt.Printf("Registered faces: %d\n", len(faces))

	return nil
}
