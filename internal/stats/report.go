package stats

import (
	"sort"
	"sync"
	"time"

	"MediaObservatory/internal/domain"
)

// ReportOptions parameterizes report assembly.
type ReportOptions struct {
	// TopArticles bounds the top-militant list; <= 0 keeps every article.
	TopArticles int
	// ExcludedArticles is the count of records the scorer refused.
	ExcludedArticles int
	// GeneratedAt is stamped on the report; callers pass time.Now().
	GeneratedAt time.Time
}

// BuildReport runs the four aggregations over the same immutable score
// collection and merges their outputs. The sub-computations are independent,
// each writes only its own slot, so they run concurrently without locking.
func BuildReport(scores []domain.ArticleScore, opts ReportOptions) domain.StatsReport {
	var (
		medias  []domain.MediaSummary
		periods []domain.PeriodSummary
		top     []domain.ArticleView
		byMedia []domain.MediaArticles
		summary domain.ReportSummary
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		medias = AggregateMedias(scores)
	}()
	go func() {
		defer wg.Done()
		periods = AggregatePeriods(scores)
	}()
	go func() {
		defer wg.Done()
		top = TopMilitant(scores, opts.TopArticles)
	}()
	go func() {
		defer wg.Done()
		byMedia = groupByMedia(scores)
		summary = globalSummary(scores)
	}()
	wg.Wait()

	summary.ExcludedArticles = opts.ExcludedArticles

	return domain.StatsReport{
		GeneratedAt:     opts.GeneratedAt,
		TotalArticles:   len(scores),
		Summary:         summary,
		Medias:          medias,
		ByPeriod:        periods,
		TopMilitant:     top,
		ArticlesByMedia: byMedia,
	}
}

func groupByMedia(scores []domain.ArticleScore) []domain.MediaArticles {
	grouped := make(map[string][]domain.ArticleScore)
	for _, s := range scores {
		grouped[s.Domain] = append(grouped[s.Domain], s)
	}

	domains := make([]string, 0, len(grouped))
	for dom := range grouped {
		domains = append(domains, dom)
	}
	sort.Strings(domains)

	out := make([]domain.MediaArticles, 0, len(domains))
	for _, dom := range domains {
		items := grouped[dom]
		sort.Slice(items, func(i, j int) bool {
			return lessMilitant(items[j], items[i])
		})

		views := make([]domain.ArticleView, len(items))
		for i, s := range items {
			views[i] = toView(s, false)
		}

		out = append(out, domain.MediaArticles{
			Domain:       dom,
			ArticleCount: len(views),
			Articles:     views,
		})
	}
	return out
}

func globalSummary(scores []domain.ArticleScore) domain.ReportSummary {
	totalKeywords := 0
	indexSum := 0.0
	domains := make(map[string]struct{})
	for _, s := range scores {
		totalKeywords += s.FeministScore
		indexSum += float64(s.MilitancyIndex)
		domains[s.Domain] = struct{}{}
	}

	meanIdx := 0.0
	if len(scores) > 0 {
		meanIdx = round(indexSum/float64(len(scores)), 2)
	}

	return domain.ReportSummary{
		TotalKeywords:    totalKeywords,
		MeanMilitancyIdx: meanIdx,
		MediaCount:       len(domains),
	}
}
