package domain

import "time"

// ArticleRecord is a cleaned article as delivered by the collection stages.
// Records are deduplicated by URL upstream; the engine never deduplicates.
type ArticleRecord struct {
	URL         string
	Domain      string
	Title       string
	Body        string
	WordCount   int
	PublishedAt *time.Time
}

// SkipReason explains why a record was excluded from scoring.
type SkipReason string

const (
	SkipEmptyBody      SkipReason = "empty_body"
	SkipMissingDomain  SkipReason = "missing_domain"
	SkipZeroWordCount  SkipReason = "zero_word_count"
	SkipBodyTooShort   SkipReason = "body_too_short"
	SkipExcludedDomain SkipReason = "excluded_domain"
	SkipDateOutOfRange SkipReason = "date_out_of_range"
)

// ArticleScore carries the per-article keyword measurements. Immutable once
// produced; URL doubles as the article identifier.
type ArticleScore struct {
	URL            string
	Domain         string
	Title          string
	PublishedAt    *time.Time
	WordCount      int
	FeministScore  int
	BalanceScore   int
	MilitancyIndex int
	MilitancyPct   float64
}

// Year returns the publication year and whether a date is known.
func (s ArticleScore) Year() (int, bool) {
	if s.PublishedAt == nil {
		return 0, false
	}
	return s.PublishedAt.Year(), true
}
