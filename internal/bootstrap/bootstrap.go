// Package bootstrap builds the use cases shared by the API server and the CLI from config.
package bootstrap

import (
	"context"
	"fmt"

	"syncnotes/config"
	"syncnotes/internal/schedule"
	scheduleUC "syncnotes/internal/schedule/usecase"
	"syncnotes/internal/transcript"
	transcriptUC "syncnotes/internal/transcript/usecase"
	"syncnotes/pkg/datemath"
	"syncnotes/pkg/gcalendar"
	"syncnotes/pkg/llmprovider"
	"syncnotes/pkg/log"
)

// Extraction is the wired extraction pipeline.
type Extraction struct {
	UseCase   transcript.UseCase
	Providers []llmprovider.Provider
}

// ProviderNames returns "name/model" for every initialized provider, in priority order.
func (e Extraction) ProviderNames() []string {
	names := make([]string, len(e.Providers))
	for i, p := range e.Providers {
		names[i] = p.Name() + "/" + p.Model()
	}
	return names
}

// NewExtraction builds providers, the fallback manager, the completion gateway and the transcript use case.
func NewExtraction(ctx context.Context, cfg *config.Config, l log.Logger) (Extraction, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return Extraction{}, fmt.Errorf("initialize providers: %w", err)
	}

	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return Extraction{}, fmt.Errorf("llm manager config: %w", err)
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)
	gateway := llmprovider.NewGateway(manager, cfg.LLM.Temperature, cfg.LLM.MaxTokens)

	normalizer, err := datemath.NewNormalizer(cfg.Deadline.Timezone)
	if err != nil {
		return Extraction{}, fmt.Errorf("deadline timezone: %w", err)
	}

	return Extraction{
		UseCase:   transcriptUC.New(l, gateway, normalizer),
		Providers: providers,
	}, nil
}

// NewSchedule builds calendar export. It returns nil, nil when no credentials are configured.
func NewSchedule(ctx context.Context, cfg *config.Config, l log.Logger) (schedule.UseCase, error) {
	if !cfg.GoogleCalendar.Enabled() {
		return nil, nil
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("google calendar: %w", err)
	}

	parser, err := datemath.NewParser(cfg.Deadline.Timezone)
	if err != nil {
		return nil, fmt.Errorf("deadline timezone: %w", err)
	}

	l.Infof(ctx, "bootstrap.NewSchedule: calendar export to %q", cfg.GoogleCalendar.CalendarID)
	return scheduleUC.New(l, client, parser, cfg.GoogleCalendar.CalendarID), nil
}
