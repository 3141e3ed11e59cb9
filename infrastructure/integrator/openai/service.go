package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/godcrm-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

type OpenAIIntegrator interface {
	AnalyzeTweet(apiKey string, tweet *domain.Tweet, stats domain.CRMStats) (*domain.TweetAnalysis, error)
	Summarize(apiKey string, stats domain.CRMStats) (string, error)
}

type Service struct {
	client openaiclient.Client
}

func New(client openaiclient.Client) OpenAIIntegrator {
	return &Service{
		client: client,
	}
}

// AnalyzeTweet pede ao provedor de IA uma análise estruturada do tweet.
// O chamador é responsável pelo fallback quando a chamada falha.
func (s *Service) AnalyzeTweet(apiKey string, tweet *domain.Tweet, stats domain.CRMStats) (*domain.TweetAnalysis, error) {
	prompt := buildTweetPrompt(tweet, stats)

	raw, err := s.client.Complete(apiKey, prompt)
	if err != nil {
		return nil, err
	}

	var analysis domain.TweetAnalysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		return nil, errors.Wrap(err, "resposta do provedor de IA fora do formato esperado")
	}

	if len(analysis.Suggestions) == 0 {
		return nil, errors.New("análise retornada sem sugestões")
	}

	return &analysis, nil
}

// Summarize pede um resumo textual livre da base de leads e clientes fechados
func (s *Service) Summarize(apiKey string, stats domain.CRMStats) (string, error) {
	prompt := fmt.Sprintf(
		"Você é analista de uma agência de edição de vídeo. Resuma a situação da base: "+
			"%d leads no total, %d leads quentes, %d clientes fechados, receita mensal de R$ %.2f. "+
			"Aponte tendências e próximos passos em até três parágrafos.",
		stats.TotalLeads, stats.HotLeads, stats.ClosedClients, stats.MonthlyRevenue,
	)

	return s.client.Complete(apiKey, prompt)
}

func buildTweetPrompt(tweet *domain.Tweet, stats domain.CRMStats) string {
	var sb strings.Builder

	sb.WriteString("Analise o seguinte tweet e responda APENAS com um objeto JSON contendo os campos ")
	sb.WriteString("engagement_summary (string), virality_score (número 0-100), virality_reasons (lista de strings), ")
	sb.WriteString("suggestions (lista de strings, ao menos uma), best_posting_times (lista de strings) e ")
	sb.WriteString("improvement_delta (número).")

	if tweet.IsCompetitor {
		sb.WriteString(" Inclua também competitor_comparison (string) comparando com a nossa presença.")
	}

	sb.WriteString(fmt.Sprintf("\nURL: %s", tweet.URL))
	if tweet.Author != "" {
		sb.WriteString(fmt.Sprintf("\nAutor: %s", tweet.Author))
	}
	sb.WriteString(fmt.Sprintf("\nContexto da agência: %d leads, %d clientes fechados.", stats.TotalLeads, stats.ClosedClients))

	return sb.String()
}

// extractJSON remove cercas de markdown que alguns modelos colocam em volta do JSON
func extractJSON(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
