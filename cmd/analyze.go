package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/UsmanZaka51/emotion-api/internal/ai"
	"github.com/UsmanZaka51/emotion-api/internal/engine"
	"github.com/UsmanZaka51/emotion-api/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <video-path> [video-path...]",
	Short: "Analyze videos for faces and emotions",
	Long: `Upload one or more videos to the analysis engine and print the
resulting report.

The engine detects faces, matches them against the registered gallery,
classifies emotions frame by frame and writes an annotated copy of
each video to object storage.

Example:
  emotion-api analyze party.mp4
  emotion-api analyze --summary birthday.mp4
  emotion-api analyze --json clip1.mp4 clip2.mp4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Bool("summary", false, "Generate a natural-language summary of each report")
	analyzeCmd.Flags().Bool("json", false, "Print the raw report as JSON instead of formatted text")
}

// uploadVideo streams one video to the engine with a byte progress bar.
func uploadVideo(ctx context.Context, eng *engine.Engine, videoPath string) (*engine.AnalysisResult, error) {
	f, err := os.Open(videoPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	uploadBar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetDescription("Uploading"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	result, err := eng.ProcessVideo(ctx, filepath.Base(videoPath), info.Size(), f, func(sent, total int64) {
		uploadBar.Set64(sent)
	})
	fmt.Println()
	return result, err
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	withSummary := mustGetBool(cmd, "summary")
	jsonOutput := mustGetBool(cmd, "json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.Engine.URL, cfg.Engine.GetAPIKey())
	if err != nil {
		return fmt.Errorf("failed to create engine client: %w", err)
	}

	ctx := context.Background()

	var summarizer ai.Summarizer
	if withSummary {
		summarizer, err = ai.FromConfig(ctx, cfg)
		if err != nil {
			return err
		}
		if summarizer == nil {
			return errors.New("no summary provider configured, set SUMMARY_PROVIDER")
		}
	}

	analyzed := 0
	var analyzeErrors []string
	for _, videoPath := range args {
		fileName := filepath.Base(videoPath)

		if len(args) > 1 {
			fmt.Printf("=== %s ===\n", fileName)
		}

		result, err := uploadVideo(ctx, eng, videoPath)
		if err != nil {
			analyzeErrors = append(analyzeErrors, fmt.Sprintf("%s: %v", fileName, err))
			continue
		}
		analyzed++

		rep := report.Build(result, &cfg.Emotions)

		if jsonOutput {
			encoded, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
			fmt.Println(string(encoded))
		} else {
			fmt.Print(report.FormatText(rep))
		}

		if summarizer != nil {
			fmt.Printf("\nGenerating summary with %s...\n", summarizer.Name())
			summary, err := summarizer.Summarize(ctx, report.FormatText(rep))
			if err != nil {
				fmt.Printf("Warning: summary generation failed: %v\n", err)
			} else {
				fmt.Println(summary)
			}
		}

		fmt.Println()
	}

	for _, errMsg := range analyzeErrors {
		fmt.Printf("Failed: %s\n", errMsg)
	}

	if analyzed == 0 {
		return fmt.Errorf("no videos were analyzed successfully")
	}
	return nil
}
