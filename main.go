package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"skype-to-docx/archive"
	"skype-to-docx/cmd"
	"skype-to-docx/config"
	"skype-to-docx/filter"
	"skype-to-docx/namer"
	"skype-to-docx/progress"
	"skype-to-docx/prompt"
	"skype-to-docx/render"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skype-to-docx",
		Short: "Export filtered messages from a chat-history archive into a Word document",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(c)
			if err != nil {
				return err
			}

			logger, cleanup, err := setupLogger(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = cleanup()
			}()

			slog.SetDefault(logger)
			logger.Info("starting skype-to-docx", "archive", cfg.ArchivePath, "outputDir", cfg.OutputDir, "dryRun", cfg.DryRun)

			return run(cfg, logger)
		},
	}

	if err := config.RegisterFlags(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "failed to register CLI flags: %v\n", err)
		os.Exit(1)
	}
	rootCmd.AddCommand(cmd.ArchiveStatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	a, err := archive.Load(cfg.ArchivePath)
	if err != nil {
		return fmt.Errorf("archive.Load: %w", err)
	}

	opts, err := collectOptions(cfg)
	if err != nil {
		return err
	}

	bar := progress.New(archive.CountMessages(a), cfg.LogLevel)
	opts.OnMessage = bar.Hook()

	f, err := filter.New(opts)
	if err != nil {
		return fmt.Errorf("filter.New: %w", err)
	}

	records, summary := f.Apply(a)
	bar.Stop()

	logger.Info("filter summary", summary.LogAttrs()...)

	if len(records) == 0 {
		logger.Info("no messages matched the given criteria")
		return nil
	}

	desired := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_messages.docx", opts.Sender))
	outputPath := namer.Next(desired, namer.OnDisk)

	if cfg.DryRun {
		logger.Info("dry run, skipping document", "records", len(records), "wouldWrite", outputPath)
		return nil
	}

	if err := render.Save(records, opts.Sender, outputPath); err != nil {
		return fmt.Errorf("render.Save: %w", err)
	}

	logger.Info("document saved", "path", outputPath, "records", len(records))
	return nil
}

// collectOptions merges flag values with interactive prompts for anything
// the flags left blank.
func collectOptions(cfg config.Config) (filter.Options, error) {
	opts := filter.Options{
		Sender:       cfg.Sender,
		Conversation: cfg.Conversation,
		Mode:         filter.Mode(cfg.Mode),
		Word:         cfg.Word,
	}

	var err error
	if opts.Sender == "" {
		if opts.Sender, err = prompt.Sender(); err != nil {
			return filter.Options{}, err
		}
	}
	if cfg.Sender == "" && cfg.Conversation == "" {
		// Conversation is optional; only offer it in fully interactive runs.
		if opts.Conversation, err = prompt.Conversation(); err != nil {
			return filter.Options{}, err
		}
	}
	if opts.Mode == "" {
		if opts.Mode, err = prompt.Mode(); err != nil {
			return filter.Options{}, err
		}
	}
	if opts.Mode == filter.ModeFirstWord && opts.Word == "" {
		if opts.Word, err = prompt.Word(); err != nil {
			return filter.Options{}, err
		}
	}

	return opts, nil
}

func setupLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	switch cfg.LogLevel {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	}

	opts := &slog.HandlerOptions{Level: level}
	cleanup := func() error { return nil }

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
			return nil, cleanup, err
		}

		logFilePath := filepath.Join(cfg.LogDir, fmt.Sprintf("skype-to-docx-%s.log", time.Now().Format("20060102T150405")))
		file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, cleanup, err
		}

		handler := slog.NewTextHandler(io.MultiWriter(os.Stdout, file), opts)
		cleanup = func() error {
			return file.Close()
		}
		return slog.New(handler), cleanup, nil
	}

	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler), cleanup, nil
}
