package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"MediaObservatory/internal/domain"
	"MediaObservatory/internal/ports"
)

// PostgresRepository persists article scores into Postgres so repeated runs
// can skip URLs that were already scored.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ScoreRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// AlreadyScored returns a map with URLs that already exist in storage.
func (r *PostgresRepository) AlreadyScored(ctx context.Context, urls []string) (map[string]bool, error) {
	if r.db == nil || len(urls) == 0 {
		return map[string]bool{}, nil
	}

	query, args, err := r.builder.
		Select("url").
		From("article_scores").
		Where(sq.Expr("url = ANY(?)", pq.Array(urls))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scored query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query scored: %w", err)
	}

	result := make(map[string]bool)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan url: %w", err)
		}
		result[url] = true
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration: %w", rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, fmt.Errorf("close rows: %w", closeErr)
	}

	return result, nil
}

// SaveScores upserts score snapshots keyed by article URL.
func (r *PostgresRepository) SaveScores(ctx context.Context, scores []domain.ArticleScore) error {
	if r.db == nil || len(scores) == 0 {
		return nil
	}

	for _, score := range scores {
		query, args, err := r.builder.
			Insert("article_scores").
			Columns("url", "domain", "title", "date_pub", "word_count",
				"score_feministe", "score_balance", "indice_militant", "pct_militantisme").
			Values(score.URL, score.Domain, score.Title, score.PublishedAt, score.WordCount,
				score.FeministScore, score.BalanceScore, score.MilitancyIndex, score.MilitancyPct).
			Suffix(`ON CONFLICT (url) DO UPDATE
                SET score_feministe = EXCLUDED.score_feministe,
                    score_balance = EXCLUDED.score_balance,
                    indice_militant = EXCLUDED.indice_militant,
                    pct_militantisme = EXCLUDED.pct_militantisme,
                    updated_at = NOW()`).
			ToSql()
		if err != nil {
			return fmt.Errorf("build upsert for %s: %w", score.URL, err)
		}

		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert score %s: %w", score.URL, err)
		}
	}

	return nil
}
