package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/config"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/logger"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/ocr"
	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/pipeline"
)

var (
	cfgFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "htr",
	Short: "Recognize handwritten text in document images",
	Long: `htr converts a scanned or photographed document image into
machine-readable text and saves the result as a PDF.

Features:
  - File access validation before any processing
  - Deterministic preprocessing (grayscale, noise closing, automatic binarization)
  - Pluggable recognition engines (Tesseract library, external binary, vision service)
  - Accuracy scoring against a reference text
  - Timestamped PDF output`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.htr.yaml)")
	rootCmd.PersistentFlags().String("engine", "", "recognition engine (tesseract, command, remote)")
	rootCmd.PersistentFlags().String("tesseract-path", "", "tesseract executable location (command engine)")
	rootCmd.PersistentFlags().String("engine-endpoint", "", "recognition service address (remote engine)")
	rootCmd.PersistentFlags().String("languages", "", "recognition languages (e.g. eng, eng+fra)")
	rootCmd.PersistentFlags().String("output", "", "output directory for PDFs")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".htr")
	}

	viper.SetEnvPrefix("HTR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig loads configuration and applies any flags the user set
// explicitly, preserving flags > env > file > defaults precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Engine, _ = flags.GetString("engine")
	}
	if flags.Changed("tesseract-path") {
		cfg.EnginePath, _ = flags.GetString("tesseract-path")
	}
	if flags.Changed("engine-endpoint") {
		cfg.EngineEndpoint, _ = flags.GetString("engine-endpoint")
	}
	if flags.Changed("languages") {
		cfg.Languages, _ = flags.GetString("languages")
	}
	if flags.Changed("output") {
		cfg.OutputDir, _ = flags.GetString("output")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// newProcessor builds the conversion pipeline from configuration.
func newProcessor(cfg *config.Config) (*pipeline.Processor, *logger.Logger, error) {
	log, err := logger.New(&logger.Config{
		Level:  cfg.LogLevel,
		Format: "console",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	engine, err := ocr.NewEngine(&ocr.Config{
		Logger:         log,
		Engine:         cfg.Engine,
		Languages:      cfg.LanguageList(),
		ExecutablePath: cfg.EnginePath,
		Endpoint:       cfg.EngineEndpoint,
		Model:          cfg.EngineModel,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create recognition engine: %w", err)
	}

	return pipeline.New(&pipeline.Config{Logger: log, Engine: engine}), log, nil
}
