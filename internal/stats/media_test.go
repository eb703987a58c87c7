package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MediaObservatory/internal/domain"
)

func mediaScore(dom string, pct float64, keywords int) domain.ArticleScore {
	return domain.ArticleScore{
		URL:            dom + "/" + "article",
		Domain:         dom,
		FeministScore:  keywords,
		MilitancyIndex: keywords,
		MilitancyPct:   pct,
		WordCount:      1000,
	}
}

func TestConfidenceFactorContract(t *testing.T) {
	t.Parallel()

	assert.Zero(t, confidenceFactor(0))

	prev := 0.0
	for n := 1; n <= 500; n++ {
		f := confidenceFactor(n)
		require.Greater(t, f, prev, "confidence factor must be strictly increasing at n=%d", n)
		require.Less(t, f, 1.0, "confidence factor must stay below 1 at n=%d", n)
		prev = f
	}
}

func TestConfidenceFactorStaysBelowOneWhenRounded(t *testing.T) {
	t.Parallel()

	// At ~400 articles the raw factor rounds to 1.000 at 3 decimals.
	scores := make([]domain.ArticleScore, 0, 400)
	for i := 0; i < 400; i++ {
		scores = append(scores, mediaScore("massif.fr", 40, 4))
	}

	summaries := AggregateMedias(scores)
	require.Len(t, summaries, 1)
	assert.Less(t, summaries[0].ConfidenceFactor, 1.0)
	assert.Equal(t, 0.999, summaries[0].ConfidenceFactor)
}

func TestMedianEvenCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3.0, median([]float64{1, 2, 4, 5}))
	assert.Equal(t, 4.0, median([]float64{4, 1, 5}))
}

func TestStddevIsPopulation(t *testing.T) {
	t.Parallel()

	// Mean 5, population variance 4.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.0, stddev(values), 1e-9)
}

func TestAggregateMediasStatistics(t *testing.T) {
	t.Parallel()

	scores := []domain.ArticleScore{
		mediaScore("lemonde.fr", 10, 3),
		mediaScore("lemonde.fr", 30, 5),
	}

	summaries := AggregateMedias(scores)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "lemonde.fr", s.Domain)
	assert.Equal(t, 2, s.ArticleCount)
	assert.Equal(t, 4.0, s.MeanKeywords)
	assert.Equal(t, 4.0, s.MedianKeywords)
	assert.Equal(t, 1.0, s.StddevKeywords)
	assert.Equal(t, 8, s.TotalKeywords)
	assert.Equal(t, 20.0, s.MeanMilitancyPct)
	assert.Equal(t, 20.0, s.MedianMilitancyPct)
	assert.Equal(t, 10.0, s.StddevMilitancyPct)
	assert.Equal(t, 5, s.MaxMilitancyIdx)
	assert.Equal(t, 3, s.MinMilitancyIdx)
}

func TestThinSampleCannotOutrankWellSampledMedia(t *testing.T) {
	t.Parallel()

	// Two extreme articles, mean pct 50.
	scores := []domain.ArticleScore{
		mediaScore("outlier.fr", 80, 8),
		mediaScore("outlier.fr", 20, 2),
	}
	// Fifty articles at pct 40.
	for i := 0; i < 50; i++ {
		scores = append(scores, mediaScore("steady.fr", 40, 4))
	}

	summaries := AggregateMedias(scores)
	require.Len(t, summaries, 2)

	assert.Equal(t, "steady.fr", summaries[0].Domain)
	assert.Greater(t, summaries[0].AdjustedScore, summaries[1].AdjustedScore)
	assert.Greater(t, summaries[1].MeanMilitancyPct, summaries[0].MeanMilitancyPct,
		"the outlier media keeps the higher raw mean")
}

func TestAggregateMediasTieBreaks(t *testing.T) {
	t.Parallel()

	// All zero densities: every adjusted score is 0.
	scores := []domain.ArticleScore{
		mediaScore("b.fr", 0, 0),
		mediaScore("a.fr", 0, 0),
		mediaScore("c.fr", 0, 0),
		mediaScore("c.fr", 0, 0),
	}

	summaries := AggregateMedias(scores)
	require.Len(t, summaries, 3)

	// c.fr wins on article count, then a.fr beats b.fr lexicographically.
	assert.Equal(t, "c.fr", summaries[0].Domain)
	assert.Equal(t, "a.fr", summaries[1].Domain)
	assert.Equal(t, "b.fr", summaries[2].Domain)
}

func TestAggregateMediasDeterministic(t *testing.T) {
	t.Parallel()

	scores := []domain.ArticleScore{
		mediaScore("lemonde.fr", 10, 3),
		mediaScore("liberation.fr", 30, 5),
		mediaScore("lefigaro.fr", 20, 1),
		mediaScore("lemonde.fr", 15, 2),
	}

	first := AggregateMedias(scores)
	second := AggregateMedias(scores)
	assert.Equal(t, first, second)
}

func TestAggregateMediasEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, AggregateMedias(nil))
}
