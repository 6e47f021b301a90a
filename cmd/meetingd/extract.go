package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/QamerHassan/Smart-Meeting/internal/config"
	"github.com/QamerHassan/Smart-Meeting/internal/extract"
	"github.com/QamerHassan/Smart-Meeting/internal/nlp"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract tasks from meeting notes in a file or stdin",
	Long: `Extract tasks from meeting notes without starting the daemon.
Prints the extraction result as JSON.

Examples:
  # Extract from a file
  meetingd extract notes.txt

  # Extract from stdin
  cat notes.txt | meetingd extract -`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	notes, err := readNotes(args[0])
	if err != nil {
		return err
	}
	if len(notes) < cfg.Server.MinNotesLength {
		return fmt.Errorf("notes are too short (minimum %d characters)", cfg.Server.MinNotesLength)
	}

	pipeline, err := nlp.NewProsePipeline()
	if err != nil {
		return fmt.Errorf("loading nlp pipeline: %w", err)
	}

	extractor, err := extract.NewExtractor(pipeline, cfg.Extraction, zap.NewNop())
	if err != nil {
		return err
	}

	result, err := extractor.Extract(context.Background(), string(notes))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// readNotes reads the notes text from a file, or stdin when path is "-".
func readNotes(path string) ([]byte, error) {
	if path == "-" {
		notes, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return notes, nil
	}

	notes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return notes, nil
}
