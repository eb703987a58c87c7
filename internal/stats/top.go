package stats

import (
	"sort"
	"time"

	"MediaObservatory/internal/domain"
)

// TopMilitant returns the limit highest-scoring articles by raw feminist
// score, not density: the board surfaces absolute occurrence volume. Ties go
// to the most recent publication date, then to the URL.
func TopMilitant(scores []domain.ArticleScore, limit int) []domain.ArticleView {
	ranked := make([]domain.ArticleScore, len(scores))
	copy(ranked, scores)
	sort.Slice(ranked, func(i, j int) bool {
		return lessMilitant(ranked[j], ranked[i])
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	views := make([]domain.ArticleView, len(ranked))
	for i, s := range ranked {
		views[i] = toView(s, true)
	}
	return views
}

// lessMilitant orders ascending by score, then by date (undated oldest),
// then descending by URL, so that reversing it yields the ranking order.
func lessMilitant(a, b domain.ArticleScore) bool {
	if a.FeministScore != b.FeministScore {
		return a.FeministScore < b.FeministScore
	}
	at, bt := dateOrZero(a.PublishedAt), dateOrZero(b.PublishedAt)
	if !at.Equal(bt) {
		return at.Before(bt)
	}
	return a.URL > b.URL
}

func dateOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func toView(s domain.ArticleScore, withDomain bool) domain.ArticleView {
	view := domain.ArticleView{
		URL:            s.URL,
		Title:          s.Title,
		PublishedAt:    formatDate(s.PublishedAt),
		FeministScore:  s.FeministScore,
		MilitancyPct:   s.MilitancyPct,
		MilitancyIndex: s.MilitancyIndex,
	}
	if withDomain {
		view.Domain = s.Domain
	}
	return view
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
