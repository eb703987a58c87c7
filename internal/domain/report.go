package domain

import "time"

// Field names below are consumed verbatim by the dashboard; do not rename.

// MediaSummary aggregates per-publication statistics over scored articles.
type MediaSummary struct {
	Domain             string  `json:"domain"`
	ArticleCount       int     `json:"n_articles"`
	MeanKeywords       float64 `json:"moyenne_mots_cles_feministes"`
	MedianKeywords     float64 `json:"mediane_mots_cles_feministes"`
	StddevKeywords     float64 `json:"ecart_type_mots_cles_feministes"`
	TotalKeywords      int     `json:"total_mots_cles_feministes"`
	MeanMilitancyPct   float64 `json:"pct_militantisme_moyen"`
	MedianMilitancyPct float64 `json:"pct_militantisme_mediane"`
	StddevMilitancyPct float64 `json:"pct_militantisme_ecart_type"`
	ConfidenceFactor   float64 `json:"facteur_confiance"`
	AdjustedScore      float64 `json:"score_ajuste"`
	MeanMilitancyIdx   float64 `json:"indice_militant_moyen"`
	MaxMilitancyIdx    int     `json:"indice_militant_max"`
	MinMilitancyIdx    int     `json:"indice_militant_min"`
}

// PeriodSummary aggregates statistics per calendar year.
type PeriodSummary struct {
	Period             string  `json:"period"`
	Year               int     `json:"year"`
	ArticleCount       int     `json:"n_articles"`
	MeanMilitancyPct   float64 `json:"pct_militantisme_moyen"`
	MedianMilitancyPct float64 `json:"pct_militantisme_mediane"`
	StddevMilitancyPct float64 `json:"pct_militantisme_ecart_type"`
	MeanMilitancyIdx   float64 `json:"indice_militant_moyen"`
	MeanKeywords       float64 `json:"moyenne_mots_cles_feministes"`
}

// ArticleView is the lightweight article projection exposed in the report.
type ArticleView struct {
	URL            string  `json:"url"`
	Title          string  `json:"title"`
	Domain         string  `json:"domain,omitempty"`
	PublishedAt    string  `json:"date_pub"`
	FeministScore  int     `json:"score_feministe"`
	MilitancyPct   float64 `json:"pct_militantisme"`
	MilitancyIndex int     `json:"indice_militant"`
}

// MediaArticles groups every scored article of one publication.
type MediaArticles struct {
	Domain       string        `json:"domain"`
	ArticleCount int           `json:"n_articles"`
	Articles     []ArticleView `json:"articles"`
}

// ReportSummary holds the corpus-wide totals.
type ReportSummary struct {
	TotalKeywords    int     `json:"total_mots_cles_feministes_global"`
	MeanMilitancyIdx float64 `json:"indice_militant_moyen_global"`
	MediaCount       int     `json:"n_medias"`
	ExcludedArticles int     `json:"articles_exclus"`
}

// StatsReport is the full aggregation output, produced fresh on each run.
type StatsReport struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	TotalArticles   int             `json:"total_articles"`
	Summary         ReportSummary   `json:"summary"`
	Medias          []MediaSummary  `json:"medias"`
	ByPeriod        []PeriodSummary `json:"by_period"`
	TopMilitant     []ArticleView   `json:"top_militant_articles"`
	ArticlesByMedia []MediaArticles `json:"all_articles_by_media"`
}
