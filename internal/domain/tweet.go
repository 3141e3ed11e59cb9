package domain

import "time"

// Tweet é um post do Twitter/X acompanhado pela agência,
// próprio ou de concorrente.
type Tweet struct {
	ID           int       `json:"id"`
	URL          string    `json:"url"`
	TweetID      string    `json:"tweet_id"`
	Author       string    `json:"author"`
	IsCompetitor bool      `json:"is_competitor"`
	Analysis     *string   `json:"analysis"` // JSON serializado de TweetAnalysis
	CreatedBy    int       `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateTweetRequest carrega os campos editáveis de um tweet
type UpdateTweetRequest struct {
	ID           int     `json:"id"`
	URL          *string `json:"url"`
	Author       *string `json:"author"`
	IsCompetitor *bool   `json:"is_competitor"`
}

// TweetAnalysis é o resultado da análise de um tweet.
// CompetitorComparison só é preenchido quando o tweet analisado é de concorrente.
type TweetAnalysis struct {
	EngagementSummary    string   `json:"engagement_summary"`
	ViralityScore        float64  `json:"virality_score"`
	ViralityReasons      []string `json:"virality_reasons"`
	Suggestions          []string `json:"suggestions"`
	BestPostingTimes     []string `json:"best_posting_times"`
	ImprovementDelta     float64  `json:"improvement_delta"`
	CompetitorComparison string   `json:"competitor_comparison,omitempty"`
}

// CRMStats agrega os números da base usados nos prompts de análise
// e no resumo de fallback quando o provedor de IA está indisponível.
type CRMStats struct {
	TotalLeads     int
	HotLeads       int
	ClosedClients  int
	MonthlyRevenue float64
}
