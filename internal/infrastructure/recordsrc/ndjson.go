package recordsrc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"MediaObservatory/internal/domain"
)

// maxLineBytes accommodates full article bodies on a single line.
const maxLineBytes = 16 * 1024 * 1024

// NDJSONLoader reads one JSON record per line, the export format of the
// newer collectors.
type NDJSONLoader struct{}

// NewNDJSONLoader builds the loader.
func NewNDJSONLoader() *NDJSONLoader { return &NDJSONLoader{} }

// Name identifies the format inside the registry.
func (l *NDJSONLoader) Name() string { return "ndjson" }

type ndjsonRecord struct {
	URL       string `json:"url"`
	Domain    string `json:"domain"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
	DatePub   string `json:"date_pub"`
}

// Load reads the whole file, skipping blank lines. A malformed line is an
// input error, not a skippable record: the export either is NDJSON or it
// is not.
func (l *NDJSONLoader) Load(ctx context.Context, path string) ([]domain.ArticleRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ndjson: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []domain.ArticleRecord
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var rec ndjsonRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("ndjson line %d: %w", line, err)
		}

		body := cleanBody(rec.Text)
		wordCount := rec.WordCount
		if wordCount <= 0 {
			wordCount = countWords(body)
		}

		records = append(records, domain.ArticleRecord{
			URL:         strings.TrimSpace(rec.URL),
			Domain:      strings.TrimSpace(rec.Domain),
			Title:       strings.TrimSpace(rec.Title),
			Body:        body,
			WordCount:   wordCount,
			PublishedAt: parseDate(rec.DatePub),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan ndjson: %w", err)
	}

	return records, nil
}
