package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"MediaObservatory/internal/config"
	"MediaObservatory/internal/infrastructure/jsonreport"
	"MediaObservatory/internal/infrastructure/recordsrc"
	"MediaObservatory/internal/infrastructure/storage"
	"MediaObservatory/internal/lexicon"
	"MediaObservatory/internal/logging"
	"MediaObservatory/internal/ports"
	"MediaObservatory/internal/scoring"
	"MediaObservatory/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	logger   *slog.Logger
	db       *sql.DB
}

// New builds a runnable application instance. A broken lexicon is fatal
// here: the engine must not start on a misconfigured vocabulary.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	baseLogger.Info("lexicon loaded",
		"feminist_terms", lex.Feminist.Len(),
		"balance_terms", lex.Balance.Len())

	scorer := scoring.New(lex, scoring.Options{
		MinBodyLength:   cfg.Analysis.MinBodyLength,
		MinYear:         cfg.Analysis.MinYear,
		MaxYear:         cfg.Analysis.MaxYear,
		ExcludedDomains: cfg.Analysis.ExcludedDomains,
	}, baseLogger.With("component", "scorer"))

	registry := recordsrc.NewRegistry()
	registry.Register(recordsrc.NewCSVLoader())
	registry.Register(recordsrc.NewNDJSONLoader())
	source := recordsrc.NewSource(registry, cfg.Input.Format, cfg.Input.Path,
		baseLogger.With("component", "source"))

	var (
		db         *sql.DB
		repository ports.ScoreRepository
	)
	if cfg.Database.DSN != "" {
		db, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	writer := jsonreport.NewFileWriter(cfg.Output.StatsPath,
		baseLogger.With("component", "report"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:      source,
		Scorer:      scorer,
		Repository:  repository,
		Writer:      writer,
		TopArticles: cfg.Analysis.TopArticles,
		Logger:      baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline, logger: baseLogger, db: db}, nil
}

// Run performs a single batch analysis over the configured input.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	report, err := a.pipeline.Run(ctx, time.Now())
	if err != nil {
		return err
	}

	a.logger.Info("analysis complete",
		"articles", report.TotalArticles,
		"medias", report.Summary.MediaCount,
		"excluded", report.Summary.ExcludedArticles,
		"total_keywords", report.Summary.TotalKeywords)
	return nil
}

// Close releases shared resources.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
