package recordsrc

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"MediaObservatory/internal/domain"
)

// CSVLoader reads the articles_clean.csv layout produced by the parsing
// stage: url, domain, title, date_pub, text and optionally word_count,
// located by header name.
type CSVLoader struct{}

// NewCSVLoader builds the loader.
func NewCSVLoader() *CSVLoader { return &CSVLoader{} }

// Name identifies the format inside the registry.
func (l *CSVLoader) Name() string { return "csv" }

// Load reads the whole file into memory; the corpus is thousands of
// articles, not millions.
func (l *CSVLoader) Load(ctx context.Context, path string) ([]domain.ArticleRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"url", "domain", "text"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("csv header is missing column %q", required)
		}
	}

	var records []domain.ArticleRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		records = append(records, rowToRecord(row, columns))
	}

	return records, nil
}

func rowToRecord(row []string, columns map[string]int) domain.ArticleRecord {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	body := cleanBody(field("text"))

	wordCount := 0
	if raw := strings.TrimSpace(field("word_count")); raw != "" {
		wordCount, _ = strconv.Atoi(raw)
	}
	if wordCount <= 0 {
		wordCount = countWords(body)
	}

	return domain.ArticleRecord{
		URL:         strings.TrimSpace(field("url")),
		Domain:      strings.TrimSpace(field("domain")),
		Title:       strings.TrimSpace(field("title")),
		Body:        body,
		WordCount:   wordCount,
		PublishedAt: parseDate(field("date_pub")),
	}
}
