package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// Config captures all command-line options required to run the exporter.
type Config struct {
	ArchivePath  string
	Sender       string
	Conversation string
	Mode         string
	Word         string
	OutputDir    string
	DryRun       bool
	LogLevel     string
	LogDir       string
}

// RegisterFlags attaches all CLI flags to the provided command.
func RegisterFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	flags.String("archive", "", "Path to the exported chat-history JSON file")
	flags.String("sender", "", "Sender identifier to select (prompted when omitted)")
	flags.String("conversation", "", "Restrict the run to a single conversation id")
	flags.String("mode", "", "Selection mode: first-word or review (prompted when omitted)")
	flags.String("word", "", "Match word for first-word mode (prompted when omitted)")
	flags.String("output-dir", ".", "Directory for the generated document")
	flags.Bool("dry-run", false, "Run the full pipeline without writing the document")
	flags.String("log-level", "info", "Logging level: debug, info, warn, error")
	flags.String("log-dir", "", "Directory for log files (disabled when empty)")

	return cmd.MarkFlagRequired("archive")
}

// LoadConfig converts the parsed Cobra flags into a Config struct with validation.
func LoadConfig(cmd *cobra.Command) (Config, error) {
	flags := cmd.Flags()

	archivePath, err := flags.GetString("archive")
	if err != nil {
		return Config{}, err
	}
	sender, err := flags.GetString("sender")
	if err != nil {
		return Config{}, err
	}
	conversation, err := flags.GetString("conversation")
	if err != nil {
		return Config{}, err
	}
	mode, err := flags.GetString("mode")
	if err != nil {
		return Config{}, err
	}
	word, err := flags.GetString("word")
	if err != nil {
		return Config{}, err
	}
	outputDir, err := flags.GetString("output-dir")
	if err != nil {
		return Config{}, err
	}
	dryRun, err := flags.GetBool("dry-run")
	if err != nil {
		return Config{}, err
	}
	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return Config{}, err
	}
	logDir, err := flags.GetString("log-dir")
	if err != nil {
		return Config{}, err
	}

	logLevel = strings.ToLower(logLevel)
	if logLevel == "warning" {
		logLevel = "warn"
	}

	cfg := Config{
		ArchivePath:  archivePath,
		Sender:       strings.TrimSpace(sender),
		Conversation: strings.TrimSpace(conversation),
		Mode:         strings.ToLower(strings.TrimSpace(mode)),
		Word:         word,
		OutputDir:    filepath.Clean(outputDir),
		DryRun:       dryRun,
		LogLevel:     logLevel,
		LogDir:       logDir,
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateConfig(cfg Config) error {
	if cfg.ArchivePath == "" {
		return fmt.Errorf("--archive is required")
	}

	switch cfg.Mode {
	case "", "first-word", "review":
	default:
		return fmt.Errorf("invalid --mode: %s (want first-word or review)", cfg.Mode)
	}
	if cfg.Mode == "review" && cfg.Word != "" {
		return fmt.Errorf("--word only applies to first-word mode")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid --log-level: %s", cfg.LogLevel)
	}

	return nil
}
