package analyzing

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/infrastructure/integrator/openai"
	"github.com/vfg2006/godcrm-api/infrastructure/repository"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"github.com/vfg2006/godcrm-api/pkg/utils"
)

var (
	ErrMissingURL    = errors.New("Tweet URL is required")
	ErrInvalidURL    = errors.New("Invalid Twitter URL")
	ErrTweetNotFound = errors.New("tweet não encontrado")
)

// tweetURLPattern reconhece links de status do twitter.com e do x.com
var tweetURLPattern = regexp.MustCompile(`^https?://(www\.)?(twitter|x)\.com/([A-Za-z0-9_]+)/status/(\d+)`)

type AnalyzerService interface {
	ListTweets(actorID int) ([]*domain.Tweet, error)
	GetTweet(actorID int, id int) (*domain.Tweet, error)
	CreateTweet(actorID int, url string, isCompetitor bool) (*domain.Tweet, error)
	UpdateTweet(actorID int, req *domain.UpdateTweetRequest) (*domain.Tweet, error)
	DeleteTweet(actorID int, id int) error
	AnalyzeTweet(actorID int, id int, apiKey string) (*domain.TweetAnalysis, error)
	Summary(actorID int, apiKey string) (string, error)
}

type Service struct {
	tweetRepo        repository.TweetRepository
	clientRepo       repository.ClientRepository
	closedClientRepo repository.ClosedClientRepository
	ai               openai.OpenAIIntegrator
}

func NewService(
	tweetRepo repository.TweetRepository,
	clientRepo repository.ClientRepository,
	closedClientRepo repository.ClosedClientRepository,
	ai openai.OpenAIIntegrator,
) AnalyzerService {
	return &Service{
		tweetRepo:        tweetRepo,
		clientRepo:       clientRepo,
		closedClientRepo: closedClientRepo,
		ai:               ai,
	}
}

func (s *Service) ListTweets(actorID int) ([]*domain.Tweet, error) {
	return s.tweetRepo.List(actorID)
}

func (s *Service) GetTweet(actorID int, id int) (*domain.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(actorID, id)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, ErrTweetNotFound
	}
	return tweet, nil
}

func (s *Service) CreateTweet(actorID int, url string, isCompetitor bool) (*domain.Tweet, error) {
	author, tweetID, err := ParseTweetURL(url)
	if err != nil {
		return nil, err
	}

	return s.tweetRepo.Create(actorID, &domain.Tweet{
		URL:          url,
		TweetID:      tweetID,
		Author:       author,
		IsCompetitor: isCompetitor,
	})
}

func (s *Service) UpdateTweet(actorID int, req *domain.UpdateTweetRequest) (*domain.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(actorID, req.ID)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, ErrTweetNotFound
	}

	if req.URL != nil {
		author, tweetID, err := ParseTweetURL(*req.URL)
		if err != nil {
			return nil, err
		}
		tweet.URL = *req.URL
		tweet.TweetID = tweetID
		tweet.Author = author
	}

	if req.Author != nil {
		tweet.Author = *req.Author
	}

	if req.IsCompetitor != nil {
		tweet.IsCompetitor = *req.IsCompetitor
	}

	if err := s.tweetRepo.Update(actorID, tweet); err != nil {
		return nil, err
	}

	return tweet, nil
}

func (s *Service) DeleteTweet(actorID int, id int) error {
	return s.tweetRepo.Delete(actorID, id)
}

// AnalyzeTweet busca o tweet, executa a análise e persiste o resultado
// serializado em JSON. A falha do provedor de IA nunca propaga: o resultado
// degrada para a análise determinística local.
func (s *Service) AnalyzeTweet(actorID int, id int, apiKey string) (*domain.TweetAnalysis, error) {
	tweet, err := s.tweetRepo.GetByID(actorID, id)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, ErrTweetNotFound
	}

	stats := s.collectStats(actorID)

	analysis, err := s.ai.AnalyzeTweet(apiKey, tweet, stats)
	if err != nil {
		logrus.WithError(err).Warn("Provedor de IA indisponível, usando análise de fallback")
		analysis = fallbackTweetAnalysis(tweet, stats)
	}

	encoded, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}

	if err := s.tweetRepo.SaveAnalysis(actorID, id, string(encoded)); err != nil {
		return nil, err
	}

	return analysis, nil
}

// Summary gera o resumo textual da base. Quando o provedor de IA falha, o
// texto degrada para o resumo determinístico local com taxa de conversão e
// receita média.
func (s *Service) Summary(actorID int, apiKey string) (string, error) {
	stats := s.collectStats(actorID)

	summary, err := s.ai.Summarize(apiKey, stats)
	if err != nil {
		logrus.WithError(err).Warn("Provedor de IA indisponível, usando resumo de fallback")
		return FallbackSummary(stats), nil
	}

	return summary, nil
}

// ParseTweetURL valida a URL e extrai autor e id do status
func ParseTweetURL(url string) (author, tweetID string, err error) {
	if url == "" {
		return "", "", ErrMissingURL
	}

	match := tweetURLPattern.FindStringSubmatch(url)
	if match == nil {
		return "", "", ErrInvalidURL
	}

	return match[3], match[4], nil
}

// collectStats agrega os números da base. Falhas de leitura degradam para
// zero: as estatísticas alimentam prompts e fallbacks, não decisões de escrita.
func (s *Service) collectStats(actorID int) domain.CRMStats {
	stats := domain.CRMStats{}

	clients, err := s.clientRepo.List(actorID)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao listar clientes para estatísticas")
	}
	stats.TotalLeads = len(clients)
	for _, client := range clients {
		if client.LeadTemperature == domain.TemperatureHot {
			stats.HotLeads++
		}
	}

	closed, err := s.closedClientRepo.List(actorID)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao listar clientes fechados para estatísticas")
	}
	stats.ClosedClients = len(closed)
	for _, client := range closed {
		stats.MonthlyRevenue += client.MonthlyRevenue
	}

	return stats
}

// FallbackSummary monta o resumo determinístico local. Os denominadores usam
// max(1, n) para evitar divisão por zero, comportamento deliberado que o
// frontend espera, não um sentinela de "sem dados".
func FallbackSummary(stats domain.CRMStats) string {
	conversionRate := float64(stats.ClosedClients) / float64(maxInt(1, stats.TotalLeads)) * 100
	averageRevenue := stats.MonthlyRevenue / float64(maxInt(1, stats.ClosedClients))

	return fmt.Sprintf(
		"Resumo automático: %d leads na base, %d clientes fechados. "+
			"Taxa de conversão de %.1f%% e receita média de R$ %.2f por cliente fechado.",
		stats.TotalLeads,
		stats.ClosedClients,
		utils.RoundWithTwoDecimalPlace(conversionRate),
		utils.RoundWithTwoDecimalPlace(averageRevenue),
	)
}

// fallbackTweetAnalysis produz a análise determinística local quando o
// provedor de IA está indisponível
func fallbackTweetAnalysis(tweet *domain.Tweet, stats domain.CRMStats) *domain.TweetAnalysis {
	conversionRate := float64(stats.ClosedClients) / float64(maxInt(1, stats.TotalLeads)) * 100

	analysis := &domain.TweetAnalysis{
		EngagementSummary: fmt.Sprintf(
			"Análise automática indisponível no momento. Base atual: %d leads e %d clientes fechados (conversão de %.1f%%).",
			stats.TotalLeads, stats.ClosedClients, utils.RoundWithTwoDecimalPlace(conversionRate),
		),
		ViralityScore: 50,
		ViralityReasons: []string{
			"Análise do provedor de IA indisponível, pontuação neutra aplicada",
		},
		Suggestions: []string{
			"Tente novamente mais tarde para obter a análise completa",
			"Revise manualmente o desempenho do tweet no painel do X",
		},
		BestPostingTimes: []string{"09:00", "12:00", "19:00"},
		ImprovementDelta: 0,
	}

	if tweet.IsCompetitor {
		analysis.CompetitorComparison = "Comparação com concorrente indisponível sem o provedor de IA."
	}

	return analysis
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
