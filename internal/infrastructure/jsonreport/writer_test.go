package jsonreport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MediaObservatory/internal/domain"
)

func sampleReport() domain.StatsReport {
	d := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)
	return domain.StatsReport{
		GeneratedAt:   time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC),
		TotalArticles: 1,
		Summary: domain.ReportSummary{
			TotalKeywords: 4,
			MediaCount:    1,
		},
		Medias: []domain.MediaSummary{{
			Domain:           "lemonde.fr",
			ArticleCount:     1,
			MeanMilitancyPct: 12.5,
			ConfidenceFactor: 0.02,
			AdjustedScore:    0.25,
		}},
		ByPeriod: []domain.PeriodSummary{{
			Period: "2024", Year: 2024, ArticleCount: 1, MeanMilitancyPct: 12.5,
		}},
		TopMilitant: []domain.ArticleView{{
			URL: "https://lemonde.fr/a", Title: "Un", Domain: "lemonde.fr",
			PublishedAt: d.Format("2006-01-02"), FeministScore: 4, MilitancyPct: 12.5,
		}},
		ArticlesByMedia: []domain.MediaArticles{{
			Domain: "lemonde.fr", ArticleCount: 1,
			Articles: []domain.ArticleView{{
				URL: "https://lemonde.fr/a", Title: "Un",
				PublishedAt: d.Format("2006-01-02"), FeministScore: 4, MilitancyPct: 12.5,
			}},
		}},
	}
}

func TestWriteReportProducesContractFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "stats_daily.json")
	writer := NewFileWriter(path, nil)

	require.NoError(t, writer.WriteReport(context.Background(), sampleReport()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{
		"generated_at", "total_articles", "summary", "medias",
		"by_period", "top_militant_articles", "all_articles_by_media",
	} {
		assert.Contains(t, decoded, key)
	}

	summary := decoded["summary"].(map[string]any)
	assert.Contains(t, summary, "total_mots_cles_feministes_global")
	assert.Contains(t, summary, "n_medias")

	medias := decoded["medias"].([]any)
	require.Len(t, medias, 1)
	media := medias[0].(map[string]any)
	for _, key := range []string{
		"domain", "n_articles", "pct_militantisme_moyen",
		"pct_militantisme_mediane", "pct_militantisme_ecart_type",
		"facteur_confiance", "score_ajuste", "moyenne_mots_cles_feministes",
	} {
		assert.Contains(t, media, key)
	}

	periods := decoded["by_period"].([]any)
	require.Len(t, periods, 1)
	period := periods[0].(map[string]any)
	for _, key := range []string{
		"period", "year", "n_articles", "pct_militantisme_moyen",
		"pct_militantisme_mediane", "pct_militantisme_ecart_type",
	} {
		assert.Contains(t, period, key)
	}

	tops := decoded["top_militant_articles"].([]any)
	top := tops[0].(map[string]any)
	for _, key := range []string{"title", "domain", "url", "date_pub", "score_feministe"} {
		assert.Contains(t, top, key)
	}

	byMedia := decoded["all_articles_by_media"].([]any)
	group := byMedia[0].(map[string]any)
	assert.Contains(t, group, "domain")
	assert.Contains(t, group, "n_articles")
	articles := group["articles"].([]any)
	article := articles[0].(map[string]any)
	for _, key := range []string{"title", "url", "score_feministe", "pct_militantisme", "date_pub"} {
		assert.Contains(t, article, key)
	}
}

func TestWriteReportCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	writer := NewFileWriter(filepath.Join(t.TempDir(), "stats.json"), nil)
	assert.Error(t, writer.WriteReport(ctx, sampleReport()))
}
