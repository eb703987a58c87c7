package stats

import (
	"sort"

	"MediaObservatory/internal/domain"
)

// AggregateMedias produces one summary per publication that has at least one
// scored article. The adjusted score multiplies the mean militancy
// percentage by the sample-size confidence factor, so a publication with a
// couple of extreme articles cannot outrank a well-sampled one.
func AggregateMedias(scores []domain.ArticleScore) []domain.MediaSummary {
	grouped := make(map[string][]domain.ArticleScore)
	for _, s := range scores {
		grouped[s.Domain] = append(grouped[s.Domain], s)
	}

	summaries := make([]domain.MediaSummary, 0, len(grouped))
	for dom, items := range grouped {
		summaries = append(summaries, summarizeMedia(dom, items))
	}

	// Descending adjusted score, then descending article count, then
	// ascending domain, to keep the ranking reproducible.
	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.AdjustedScore != b.AdjustedScore {
			return a.AdjustedScore > b.AdjustedScore
		}
		if a.ArticleCount != b.ArticleCount {
			return a.ArticleCount > b.ArticleCount
		}
		return a.Domain < b.Domain
	})

	return summaries
}

func summarizeMedia(dom string, items []domain.ArticleScore) domain.MediaSummary {
	n := len(items)

	keywords := make([]float64, n)
	pcts := make([]float64, n)
	indices := make([]float64, n)
	totalKeywords := 0
	maxIdx, minIdx := items[0].MilitancyIndex, items[0].MilitancyIndex

	for i, s := range items {
		keywords[i] = float64(s.FeministScore)
		pcts[i] = s.MilitancyPct
		indices[i] = float64(s.MilitancyIndex)
		totalKeywords += s.FeministScore
		if s.MilitancyIndex > maxIdx {
			maxIdx = s.MilitancyIndex
		}
		if s.MilitancyIndex < minIdx {
			minIdx = s.MilitancyIndex
		}
	}

	meanPct := mean(pcts)
	confidence := confidenceFactor(n)

	// The factor lives in [0,1); rounding to 3 decimals would report 1.000
	// for large samples, so the serialized value is clamped just below.
	roundedConfidence := round(confidence, 3)
	if roundedConfidence >= 1 {
		roundedConfidence = 0.999
	}

	return domain.MediaSummary{
		Domain:             dom,
		ArticleCount:       n,
		MeanKeywords:       round(mean(keywords), 2),
		MedianKeywords:     round(median(keywords), 2),
		StddevKeywords:     round(stddev(keywords), 2),
		TotalKeywords:      totalKeywords,
		MeanMilitancyPct:   round(meanPct, 1),
		MedianMilitancyPct: round(median(pcts), 1),
		StddevMilitancyPct: round(stddev(pcts), 1),
		ConfidenceFactor:   roundedConfidence,
		AdjustedScore:      round(meanPct*confidence, 2),
		MeanMilitancyIdx:   round(mean(indices), 2),
		MaxMilitancyIdx:    maxIdx,
		MinMilitancyIdx:    minIdx,
	}
}
