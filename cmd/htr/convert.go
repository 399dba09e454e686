package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <image>",
	Short: "Recognize text in a document image",
	Long: `Recognize text in a scanned or photographed document image.

The image is validated, preprocessed (grayscale, noise closing, automatic
binarization), and handed to the configured recognition engine. The
recognized text is printed to stdout.

Examples:
  # Recognize text and print it
  htr convert scan.png

  # Recognize and persist the text as a timestamped PDF
  htr convert scan.jpg --pdf

  # Score recognition accuracy against a known reference
  htr convert scan.png --reference-file expected.txt

  # Use a tesseract binary at a fixed location
  htr convert scan.png --engine command --tesseract-path /usr/bin/tesseract`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().Bool("pdf", false, "write the recognized text to a PDF")
	convertCmd.Flags().String("reference", "", "reference text to score recognition accuracy against")
	convertCmd.Flags().String("reference-file", "", "file containing the reference text")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	proc, log, err := newProcessor(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	text, err := proc.ProcessImage(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)

	reference, err := referenceText(cmd)
	if err != nil {
		return err
	}
	if reference != "" {
		accuracy := proc.Similarity(reference, text)
		fmt.Fprintf(cmd.OutOrStdout(), "Accuracy: %.2f%%\n", accuracy)
	}

	if writePDF, _ := cmd.Flags().GetBool("pdf"); writePDF {
		artifact, err := proc.SaveToPDF(text, cfg.OutputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved PDF to %s\n", artifact.Path)
	}

	return nil
}

// referenceText resolves the reference flags, preferring the literal value.
func referenceText(cmd *cobra.Command) (string, error) {
	if ref, _ := cmd.Flags().GetString("reference"); ref != "" {
		return ref, nil
	}

	refFile, _ := cmd.Flags().GetString("reference-file")
	if refFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(refFile)
	if err != nil {
		return "", fmt.Errorf("failed to read reference file: %w", err)
	}
	return string(data), nil
}
