package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/similarity"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score <reference-file> <candidate-file>",
	Short: "Score the similarity of two text files",
	Long: `Compute the similarity of two text files as a percentage.

The score is based on longest-common-block matching: identical files score
100.00, files with no characters in common score 0.00.

Examples:
  htr score expected.txt recognized.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	reference, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read reference file: %w", err)
	}

	candidate, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read candidate file: %w", err)
	}

	score := similarity.Percent(string(reference), string(candidate))
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f%%\n", score)

	return nil
}
