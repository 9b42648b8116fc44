package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UsmanZaka51/emotion-api/internal/engine"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a video already stored in S3",
	Long: `Ask the engine to analyze a video that already sits in an S3
bucket. The engine reads the input object, writes the annotated copy
to the output location and returns its public URL.

Example:
  emotion-api process --input-bucket raw-videos --input-key party.mp4 \
    --output-bucket processed-videos --output-key party_annotated.mp4`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().String("input-bucket", "", "Bucket holding the source video")
	processCmd.Flags().String("input-key", "", "Object key of the source video")
	processCmd.Flags().String("output-bucket", "", "Bucket for the annotated video")
	processCmd.Flags().String("output-key", "", "Object key for the annotated video")
	processCmd.Flags().String("region", "", "AWS region of the buckets")
}

func runProcess(cmd *cobra.Command, args []string) error {
	req := engine.StoredVideoRequest{
		InputBucket:  mustGetString(cmd, "input-bucket"),
		InputKey:     mustGetString(cmd, "input-key"),
		OutputBucket: mustGetString(cmd, "output-bucket"),
		OutputKey:    mustGetString(cmd, "output-key"),
		Region:       mustGetString(cmd, "region"),
	}
	if req.InputBucket == "" || req.InputKey == "" || req.OutputBucket == "" || req.OutputKey == "" {
		return errors.New("--input-bucket, --input-key, --output-bucket and --output-key are required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.Engine.URL, cfg.Engine.GetAPIKey())
	if err != nil {
		return fmt.Errorf("failed to create engine client: %w", err)
	}

	fmt.Printf("Processing s3://%s/%s...\n", req.InputBucket, req.InputKey)

	result, err := eng.ProcessStored(context.Background(), req)
	if err != nil {
		return fmt.Errorf("failed to process stored video: %w", err)
	}

	fmt.Printf("Status: %s\n", result.Status)
	if result.OutputURL != "" {
		fmt.Printf("Annotated video: %s\n", result.OutputURL)
	}
	return nil
}
