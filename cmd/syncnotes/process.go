package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"syncnotes/config"
	"syncnotes/internal/bootstrap"
	"syncnotes/internal/schedule"
	"syncnotes/internal/transcript"
	"syncnotes/pkg/log"
	"syncnotes/pkg/transcriptfile"
)

type processOptions struct {
	json     bool
	provider string
	schedule bool
}

func newProcessCommand() *cobra.Command {
	opts := &processOptions{}

	cmd := &cobra.Command{
		Use:   "process FILE",
		Short: "Process a meeting transcript file",
		Long: `Process a .txt transcript or a WebVTT (.vtt) caption file.

Examples:
  syncnotes process standup.txt
  syncnotes process standup.vtt --json
  syncnotes process standup.txt --provider anthropic --schedule`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON only")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "use only this provider (openai, anthropic, gemini, deepseek, qwen)")
	cmd.Flags().BoolVar(&opts.schedule, "schedule", false, "add tasks with a resolvable deadline to Google Calendar")

	return cmd
}

func runProcess(cmd *cobra.Command, path string, opts *processOptions) error {
	ctx := cmd.Context()

	text, err := transcriptfile.Load(path)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.provider)
	if err != nil {
		return err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	extraction, err := bootstrap.NewExtraction(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var scheduler schedule.UseCase
	if opts.schedule {
		scheduler, err = bootstrap.NewSchedule(ctx, cfg, logger)
		if err != nil {
			return err
		}
		if scheduler == nil {
			return schedule.ErrCalendarDisabled
		}
	}

	input := transcript.ProcessInput{Transcript: text}
	out := cmd.OutOrStdout()
	color := isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == ""

	if opts.json && scheduler == nil {
		js, err := extraction.UseCase.ProcessJSON(ctx, input)
		if err != nil {
			return err
		}
		return writeJSON(out, []byte(js), color)
	}

	result, err := extraction.UseCase.Process(ctx, input)
	if err != nil {
		return err
	}

	var (
		scheduled   *schedule.ScheduleOutput
		scheduleErr error
	)
	if scheduler != nil {
		s, err := scheduler.Schedule(ctx, schedule.ScheduleInput{Tasks: result.Tasks, Summary: result.Summary})
		if err != nil && !errors.Is(err, schedule.ErrAllFailed) {
			return err
		}
		scheduled, scheduleErr = &s, err
	}

	if opts.json {
		err = writeJSONReport(out, result, scheduled, color)
	} else {
		err = writeReport(out, path, result, scheduled)
	}
	if err != nil {
		return err
	}
	// the report lists the failures; the exit status still reports them
	return scheduleErr
}

// loadConfig loads the config and, with a provider override, restricts it to that provider.
func loadConfig(provider string) (*config.Config, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider != "" {
		// lets zero-config mode pick the requested provider
		if err := os.Setenv("AI_PROVIDER", provider); err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if provider != "" {
		if err := cfg.LLM.UseProvider(provider); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
