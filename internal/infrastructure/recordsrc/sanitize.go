package recordsrc

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

var tagPattern = regexp.MustCompile(`(?i)</?(p|div|span|br|a|h[1-6]|li|ul|ol|em|strong|article|section)\b`)

// cleanBody strips residual markup that slipped past the upstream parser.
// Full HTML extraction stays upstream; this only keeps stray tags out of the
// keyword counts.
func cleanBody(text string) string {
	if !tagPattern.MatchString(text) {
		return text
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// parseDate reads the free-form date strings the collectors produce. An
// unparseable date keeps the article, just without a period assignment.
func parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
