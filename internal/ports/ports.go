package ports

import (
	"context"

	"MediaObservatory/internal/domain"
)

// RecordSource loads the cleaned article collection materialized upstream.
type RecordSource interface {
	LoadRecords(ctx context.Context) ([]domain.ArticleRecord, error)
}

// ScoreRepository persists article scores for audit and incremental runs.
type ScoreRepository interface {
	AlreadyScored(ctx context.Context, urls []string) (map[string]bool, error)
	SaveScores(ctx context.Context, scores []domain.ArticleScore) error
}

// ReportWriter hands the finished report to the presentation layer.
type ReportWriter interface {
	WriteReport(ctx context.Context, report domain.StatsReport) error
}
