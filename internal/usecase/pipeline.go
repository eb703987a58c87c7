package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"MediaObservatory/internal/domain"
	"MediaObservatory/internal/ports"
	"MediaObservatory/internal/scoring"
	"MediaObservatory/internal/stats"
)

// PipelineDeps wires all driven adapters into the analysis run.
type PipelineDeps struct {
	Source      ports.RecordSource
	Scorer      *scoring.Scorer
	Repository  ports.ScoreRepository
	Writer      ports.ReportWriter
	TopArticles int
	Logger      *slog.Logger
}

// Pipeline implements one batch analysis run: load records, score them,
// aggregate, emit the report. The engine holds no state between runs; any
// change to the article set means a full re-aggregation.
type Pipeline struct {
	source      ports.RecordSource
	scorer      *scoring.Scorer
	repository  ports.ScoreRepository
	writer      ports.ReportWriter
	topArticles int
	logger      *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:      deps.Source,
		scorer:      deps.Scorer,
		repository:  deps.Repository,
		writer:      deps.Writer,
		topArticles: deps.TopArticles,
		logger:      deps.Logger,
	}
}

// Run executes the batch and returns the report it produced. An empty input
// yields an empty report, not an error; the dashboard renders it as "no
// data".
func (p *Pipeline) Run(ctx context.Context, now time.Time) (domain.StatsReport, error) {
	if p.source == nil || p.scorer == nil {
		return domain.StatsReport{}, fmt.Errorf("pipeline is missing source or scorer")
	}

	records, err := p.source.LoadRecords(ctx)
	if err != nil {
		return domain.StatsReport{}, fmt.Errorf("load records: %w", err)
	}

	result := p.scorer.ScoreAll(records)
	p.info("scoring done",
		"records", len(records),
		"scored", len(result.Scores),
		"skipped", result.SkippedTotal())

	if err := p.persistScores(ctx, result.Scores); err != nil {
		return domain.StatsReport{}, err
	}

	report := stats.BuildReport(result.Scores, stats.ReportOptions{
		TopArticles:      p.topArticles,
		ExcludedArticles: result.SkippedTotal(),
		GeneratedAt:      now,
	})

	if p.writer != nil {
		if err := p.writer.WriteReport(ctx, report); err != nil {
			return domain.StatsReport{}, fmt.Errorf("write report: %w", err)
		}
	}

	return report, nil
}

// persistScores saves only scores whose URL is not yet in storage. The
// report itself is always rebuilt from the full collection.
func (p *Pipeline) persistScores(ctx context.Context, scores []domain.ArticleScore) error {
	if p.repository == nil || len(scores) == 0 {
		return nil
	}

	urls := make([]string, len(scores))
	for i, s := range scores {
		urls[i] = s.URL
	}

	existing, err := p.repository.AlreadyScored(ctx, urls)
	if err != nil {
		return fmt.Errorf("load scored urls: %w", err)
	}

	fresh := make([]domain.ArticleScore, 0, len(scores))
	for _, s := range scores {
		if !existing[s.URL] {
			fresh = append(fresh, s)
		}
	}

	if len(fresh) == 0 {
		return nil
	}
	if err := p.repository.SaveScores(ctx, fresh); err != nil {
		return fmt.Errorf("persist scores: %w", err)
	}
	p.info("scores persisted", "new", len(fresh), "existing", len(existing))
	return nil
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
