package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MediaObservatory/internal/domain"
)

func reportFixture() []domain.ArticleScore {
	d2021 := time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC)
	d2023 := time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)
	return []domain.ArticleScore{
		{URL: "https://lemonde.fr/1", Domain: "lemonde.fr", Title: "Un",
			PublishedAt: &d2021, FeministScore: 6, BalanceScore: 1, MilitancyIndex: 5, MilitancyPct: 30},
		{URL: "https://lemonde.fr/2", Domain: "lemonde.fr", Title: "Deux",
			PublishedAt: &d2023, FeministScore: 2, MilitancyIndex: 2, MilitancyPct: 10},
		{URL: "https://liberation.fr/1", Domain: "liberation.fr", Title: "Trois",
			FeministScore: 4, MilitancyIndex: 4, MilitancyPct: 20},
	}
}

func TestBuildReportAssemblesAllSections(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	report := BuildReport(reportFixture(), ReportOptions{
		TopArticles:      2,
		ExcludedArticles: 4,
		GeneratedAt:      now,
	})

	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, 3, report.TotalArticles)
	assert.Equal(t, 12, report.Summary.TotalKeywords)
	assert.InDelta(t, 3.67, report.Summary.MeanMilitancyIdx, 1e-9)
	assert.Equal(t, 2, report.Summary.MediaCount)
	assert.Equal(t, 4, report.Summary.ExcludedArticles)

	require.Len(t, report.Medias, 2)
	require.Len(t, report.ByPeriod, 2, "the undated article joins no period")
	require.Len(t, report.TopMilitant, 2)
	assert.Equal(t, "https://lemonde.fr/1", report.TopMilitant[0].URL)
	assert.Equal(t, "https://liberation.fr/1", report.TopMilitant[1].URL)

	require.Len(t, report.ArticlesByMedia, 2)
	assert.Equal(t, "lemonde.fr", report.ArticlesByMedia[0].Domain, "media groups sort by domain")
	assert.Equal(t, "liberation.fr", report.ArticlesByMedia[1].Domain)
	assert.Equal(t, 2, report.ArticlesByMedia[0].ArticleCount)
	assert.Equal(t, "https://lemonde.fr/1", report.ArticlesByMedia[0].Articles[0].URL,
		"articles within a media sort by score")
	assert.Empty(t, report.ArticlesByMedia[0].Articles[0].Domain,
		"per-media views omit the redundant domain")
}

func TestBuildReportDeterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	opts := ReportOptions{TopArticles: 10, GeneratedAt: now}

	first := BuildReport(reportFixture(), opts)
	second := BuildReport(reportFixture(), opts)
	assert.Equal(t, first, second)
}

func TestBuildReportEmptyInput(t *testing.T) {
	t.Parallel()

	report := BuildReport(nil, ReportOptions{TopArticles: 10, GeneratedAt: time.Now()})

	assert.Zero(t, report.TotalArticles)
	assert.Zero(t, report.Summary.MediaCount)
	assert.Zero(t, report.Summary.TotalKeywords)
	assert.Zero(t, report.Summary.MeanMilitancyIdx)
	assert.Empty(t, report.Medias)
	assert.Empty(t, report.ByPeriod)
	assert.Empty(t, report.TopMilitant)
	assert.Empty(t, report.ArticlesByMedia)
}
