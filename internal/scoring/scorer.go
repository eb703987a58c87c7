package scoring

import (
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"MediaObservatory/internal/domain"
	"MediaObservatory/internal/lexicon"
)

// Options bound which records are admitted to scoring.
type Options struct {
	// MinBodyLength rejects stub pages the parser let through.
	MinBodyLength int
	// MinYear/MaxYear reject obviously misdated records; a non-positive
	// value disables the corresponding bound. Records without a date
	// are kept.
	MinYear int
	MaxYear int
	// ExcludedDomains drops publications removed from the study corpus.
	ExcludedDomains []string
}

// Result is the outcome of a scoring pass.
type Result struct {
	Scores  []domain.ArticleScore
	Skipped map[domain.SkipReason]int
}

// SkippedTotal sums exclusions over all reasons.
func (r Result) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// Scorer computes weighted keyword scores per article. It counts literal
// occurrences only: negated or quoted mentions count like any other, which
// is a documented limitation of the instrument.
type Scorer struct {
	lex      *lexicon.Lexicon
	opts     Options
	excluded []string
	logger   *slog.Logger
}

// New builds a scorer around an immutable lexicon.
func New(lex *lexicon.Lexicon, opts Options, logger *slog.Logger) *Scorer {
	excluded := make([]string, 0, len(opts.ExcludedDomains))
	for _, d := range opts.ExcludedDomains {
		if d = strings.TrimSpace(strings.ToLower(d)); d != "" {
			excluded = append(excluded, d)
		}
	}
	return &Scorer{lex: lex, opts: opts, excluded: excluded, logger: logger}
}

// ScoreAll scores every admissible record. Invalid records are excluded and
// counted per reason, never scored as zero-density entries. Output order
// follows input order but carries no meaning.
func (s *Scorer) ScoreAll(records []domain.ArticleRecord) Result {
	result := Result{
		Scores:  make([]domain.ArticleScore, 0, len(records)),
		Skipped: make(map[domain.SkipReason]int),
	}

	for _, rec := range records {
		if reason, skip := s.admit(rec); skip {
			result.Skipped[reason]++
			s.debug("record skipped", "url", rec.URL, "reason", string(reason))
			continue
		}
		result.Scores = append(result.Scores, s.score(rec))
	}

	return result
}

func (s *Scorer) admit(rec domain.ArticleRecord) (domain.SkipReason, bool) {
	if strings.TrimSpace(rec.Body) == "" {
		return domain.SkipEmptyBody, true
	}
	if strings.TrimSpace(rec.Domain) == "" {
		return domain.SkipMissingDomain, true
	}
	if rec.WordCount <= 0 {
		return domain.SkipZeroWordCount, true
	}
	// Rune count, not bytes: accented French text must not inflate length.
	if s.opts.MinBodyLength > 0 && utf8.RuneCountInString(rec.Body) < s.opts.MinBodyLength {
		return domain.SkipBodyTooShort, true
	}
	if s.isExcludedDomain(rec) {
		return domain.SkipExcludedDomain, true
	}
	if rec.PublishedAt != nil {
		year := rec.PublishedAt.Year()
		if (s.opts.MinYear > 0 && year < s.opts.MinYear) ||
			(s.opts.MaxYear > 0 && year > s.opts.MaxYear) {
			return domain.SkipDateOutOfRange, true
		}
	}
	return "", false
}

func (s *Scorer) isExcludedDomain(rec domain.ArticleRecord) bool {
	dom := strings.ToLower(rec.Domain)
	url := strings.ToLower(rec.URL)
	for _, excluded := range s.excluded {
		if strings.Contains(dom, excluded) || strings.Contains(url, excluded) {
			return true
		}
	}
	return false
}

func (s *Scorer) score(rec domain.ArticleRecord) domain.ArticleScore {
	normText := lexicon.Normalize(rec.Body)

	feminist := s.lex.Feminist.WeightedScore(normText)
	balance := s.lex.Balance.WeightedScore(normText)

	return domain.ArticleScore{
		URL:            rec.URL,
		Domain:         rec.Domain,
		Title:          rec.Title,
		PublishedAt:    rec.PublishedAt,
		WordCount:      rec.WordCount,
		FeministScore:  feminist,
		BalanceScore:   balance,
		MilitancyIndex: feminist - balance,
		MilitancyPct:   militancyPct(feminist, rec.WordCount),
	}
}

// militancyPct is the feminist score per 1000 words scaled by 10, read as a
// percentage and capped at 100. Balance terms are left out on purpose: the
// metric measures advocacy intensity alone.
func militancyPct(feministScore, wordCount int) float64 {
	perThousand := float64(feministScore) / float64(wordCount) * 1000
	pct := perThousand * 10
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*10) / 10
}

func (s *Scorer) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
