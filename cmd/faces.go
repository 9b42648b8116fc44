package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/UsmanZaka51/emotion-api/internal/engine"
)

var facesCmd = &cobra.Command{
	Use:   "faces",
	Short: "List registered faces",
	Long:  `Retrieves and displays every person registered in the engine's face gallery.`,
	RunE:  runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)
}

func runFaces(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.Engine.URL, cfg.Engine.GetAPIKey())
	if err != nil {
		return fmt.Errorf("failed to create engine client: %w", err)
	}

	faces, err := eng.ListFaces(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list faces: %w", err)
	}

	if len(faces) == 0 {
		fmt.Println("No faces registered yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PERSON ID\tREGISTERED")
	fmt.Fprintln(w, "---------\t----------")

	for i := range faces {
		registered := "-"
		if !faces[i].RegisteredAt.IsZero() {
			registered = faces[i].RegisteredAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\n", faces[i].PersonID, registered)
	}

	w.Flush()

	fmt.Printf("\nTotal: %d face(s)\n", len(faces))

	return nil
}
