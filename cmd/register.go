package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/UsmanZaka51/emotion-api/internal/constants"
	"github.com/UsmanZaka51/emotion-api/internal/engine"
	"github.com/UsmanZaka51/emotion-api/internal/images"
)

var registerCmd = &cobra.Command{
	Use:   "register <person-id> <image-path> [image-path...]",
	Short: "Register face images for a person",
	Long: `Register one or more face images under a person ID.

Images are downscaled before upload and the engine extracts a face
embedding from each one. Registering several images of the same person
improves recognition in processed videos.

Example:
  emotion-api register alice /path/to/alice.jpg
  emotion-api register alice front.jpg side.jpg smiling.jpg`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().Bool("skip-similarity-check", false, "Do not warn when a similar person ID is already registered")
}

// warnSimilarIDs lists the gallery and warns when an existing person ID
// folds to the same value as the new one, so "Jiri Novak" does not
// silently end up next to "jiri-novak".
func warnSimilarIDs(ctx context.Context, eng *engine.Engine, personID string) {
	faces, err := eng.ListFaces(ctx)
	if err != nil {
		fmt.Printf("Warning: could not check existing faces: %v\n", err)
		return
	}

	folded := engine.FoldPersonID(personID)
	for _, face := range faces {
		if face.PersonID == personID {
			fmt.Printf("Note: %s is already registered; new images extend the existing entry.\n", personID)
			return
		}
		if engine.FoldPersonID(face.PersonID) == folded {
			fmt.Printf("Warning: similar person ID %q is already registered. Continuing with %q.\n", face.PersonID, personID)
			return
		}
	}
}

func runRegister(cmd *cobra.Command, args []string) error {
	personID := engine.NormalizePersonID(args[0])
	if err := engine.ValidatePersonID(personID); err != nil {
		return err
	}
	imagePaths := args[1:]
	skipSimilarityCheck := mustGetBool(cmd, "skip-similarity-check")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.Engine.URL, cfg.Engine.GetAPIKey())
	if err != nil {
		return fmt.Errorf("failed to create engine client: %w", err)
	}

	ctx := context.Background()

	if !skipSimilarityCheck {
		warnSimilarIDs(ctx, eng, personID)
	}

	fmt.Printf("Registering %d image(s) for %s\n\n", len(imagePaths), personID)

	registerBar := progressbar.NewOptions(len(imagePaths),
		progressbar.OptionSetDescription("Registering"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
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

	registered := 0
	var registerErrors []string
	for _, imagePath := range imagePaths {
		fileName := filepath.Base(imagePath)

		data, err := os.ReadFile(imagePath)
		if err != nil {
			registerErrors = append(registerErrors, fmt.Sprintf("%s: %v", fileName, err))
			registerBar.Add(1)
			continue
		}

		resized, err := images.Resize(data, constants.MaxFaceImageDim)
		if err != nil {
			registerErrors = append(registerErrors, fmt.Sprintf("%s: %v", fileName, err))
			registerBar.Add(1)
			continue
		}

		if _, err := eng.AddFace(ctx, personID, fileName, bytes.NewReader(resized)); err != nil {
			registerErrors = append(registerErrors, fmt.Sprintf("%s: %v", fileName, err))
			registerBar.Add(1)
			continue
		}

		registered++
		registerBar.Add(1)
	}
	fmt.Println()

	for _, errMsg := range registerErrors {
		fmt.Printf("Failed: %s\n", errMsg)
	}

	if registered == 0 {
		return fmt.Errorf("no images were registered successfully")
	}

	fmt.Printf("\nDone! Registered %d image(s) for %s\n", registered, personID)
	return nil
}
