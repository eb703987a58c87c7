package stats

import (
	"sort"
	"strconv"

	"MediaObservatory/internal/domain"
)

// AggregatePeriods groups scores by publication year. Undated articles are
// left out here only; they still count toward media summaries and top
// selection. Periods are a time series, not a ranking, so no adjusted score
// is computed.
func AggregatePeriods(scores []domain.ArticleScore) []domain.PeriodSummary {
	grouped := make(map[int][]domain.ArticleScore)
	for _, s := range scores {
		if year, ok := s.Year(); ok {
			grouped[year] = append(grouped[year], s)
		}
	}

	years := make([]int, 0, len(grouped))
	for year := range grouped {
		years = append(years, year)
	}
	sort.Ints(years)

	summaries := make([]domain.PeriodSummary, 0, len(years))
	for _, year := range years {
		items := grouped[year]
		n := len(items)

		pcts := make([]float64, n)
		indices := make([]float64, n)
		keywords := make([]float64, n)
		for i, s := range items {
			pcts[i] = s.MilitancyPct
			indices[i] = float64(s.MilitancyIndex)
			keywords[i] = float64(s.FeministScore)
		}

		summaries = append(summaries, domain.PeriodSummary{
			Period:             strconv.Itoa(year),
			Year:               year,
			ArticleCount:       n,
			MeanMilitancyPct:   round(mean(pcts), 1),
			MedianMilitancyPct: round(median(pcts), 1),
			StddevMilitancyPct: round(stddev(pcts), 1),
			MeanMilitancyIdx:   round(mean(indices), 2),
			MeanKeywords:       round(mean(keywords), 2),
		})
	}

	return summaries
}
