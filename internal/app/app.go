package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/sidebarsummary/internal/extract"
)

type App struct {
	cfg       Config
	extractor extract.Extractor
}

// New builds an App with the default pattern extractor.
func New(cfg Config) *App {
	return &App{cfg: cfg.WithDefaults(), extractor: extract.PatternExtractor{}}
}

// Run reads the capture, extracts the summary and writes the document.
// Nothing is written unless extraction and encoding both succeed.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text, err := readCapture(a.cfg.InputPath)
	if err != nil {
		return err
	}
	log.Debug().Str("input", a.cfg.InputPath).Int("bytes", len(text)).Msg("capture loaded")

	summary, err := a.extractor.Extract(text)
	if err != nil {
		return err
	}
	log.Debug().
		Int("assets", len(summary.Source.Assets)).
		Int("laptop", summary.Breakpoint.Value).
		Msg("summary extracted")

	doc, err := extract.Encode(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := writeAtomic(a.cfg.OutputPath, doc); err != nil {
		return err
	}
	log.Info().Str("output", a.cfg.OutputPath).Int("assets", len(summary.Source.Assets)).Msg("summary written")
	return nil
}
