package analyzing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	openaimocks "github.com/vfg2006/godcrm-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/godcrm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestParseTweetURL(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		author      string
		tweetID     string
		expectedErr error
	}{
		{
			name:    "URL de status do twitter.com",
			url:     "https://twitter.com/editorpro/status/1234567890",
			author:  "editorpro",
			tweetID: "1234567890",
		},
		{
			name:    "URL de status do x.com",
			url:     "https://x.com/editorpro/status/987654321",
			author:  "editorpro",
			tweetID: "987654321",
		},
		{
			name:    "URL com www e http",
			url:     "http://www.twitter.com/under_score/status/42",
			author:  "under_score",
			tweetID: "42",
		},
		{
			name:    "URL com sufixo de query é aceita",
			url:     "https://x.com/editorpro/status/42?s=20",
			author:  "editorpro",
			tweetID: "42",
		},
		{
			name:        "URL vazia",
			url:         "",
			expectedErr: ErrMissingURL,
		},
		{
			name:        "URL de outro domínio",
			url:         "https://instagram.com/editorpro/status/42",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "URL de perfil sem status",
			url:         "https://x.com/editorpro",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "ID de status não numérico",
			url:         "https://x.com/editorpro/status/abc",
			expectedErr: ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			author, tweetID, err := ParseTweetURL(tt.url)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.author, author)
			assert.Equal(t, tt.tweetID, tweetID)
		})
	}
}

func TestService_CreateTweet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tweetRepo := mocks.NewMockTweetRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	closedClientRepo := mocks.NewMockClosedClientRepository(ctrl)
	ai := openaimocks.NewMockOpenAIIntegrator(ctrl)

	service := NewService(tweetRepo, clientRepo, closedClientRepo, ai)

	t.Run("Deve extrair autor e id do status antes de persistir", func(t *testing.T) {
		tweetRepo.EXPECT().
			Create(1, gomock.Any()).
			DoAndReturn(func(actorID int, tweet *domain.Tweet) (*domain.Tweet, error) {
				tweet.ID = 1
				return tweet, nil
			})

		tweet, err := service.CreateTweet(1, "https://x.com/editorpro/status/42", true)
		assert.NoError(t, err)
		assert.Equal(t, "editorpro", tweet.Author)
		assert.Equal(t, "42", tweet.TweetID)
		assert.True(t, tweet.IsCompetitor)
	})

	t.Run("Deve rejeitar URL inválida sem tocar no repositório", func(t *testing.T) {
		tweet, err := service.CreateTweet(1, "https://example.com/x", false)
		assert.ErrorIs(t, err, ErrInvalidURL)
		assert.Nil(t, tweet)
	})

	t.Run("Deve rejeitar URL vazia", func(t *testing.T) {
		tweet, err := service.CreateTweet(1, "", false)
		assert.ErrorIs(t, err, ErrMissingURL)
		assert.Nil(t, tweet)
	})
}

func TestService_AnalyzeTweet(t *testing.T) {
	storedTweet := func() *domain.Tweet {
		return &domain.Tweet{
			ID:      7,
			URL:     "https://x.com/editorpro/status/42",
			TweetID: "42",
			Author:  "editorpro",
		}
	}

	tests := []struct {
		name     string
		setup    func(tweetRepo *mocks.MockTweetRepository, clientRepo *mocks.MockClientRepository, closedClientRepo *mocks.MockClosedClientRepository, ai *openaimocks.MockOpenAIIntegrator)
		validate func(t *testing.T, result *domain.TweetAnalysis, err error)
	}{
		{
			name: "Análise do provedor de IA é persistida e devolvida",
			setup: func(tweetRepo *mocks.MockTweetRepository, clientRepo *mocks.MockClientRepository, closedClientRepo *mocks.MockClosedClientRepository, ai *openaimocks.MockOpenAIIntegrator) {
				tweetRepo.EXPECT().GetByID(1, 7).Return(storedTweet(), nil)
				clientRepo.EXPECT().List(1).Return([]*domain.Client{
					{LeadTemperature: domain.TemperatureHot},
					{LeadTemperature: domain.TemperatureCold},
				}, nil)
				closedClientRepo.EXPECT().List(1).Return([]*domain.ClosedClient{
					{MonthlyRevenue: 1200.0},
				}, nil)

				ai.EXPECT().
					AnalyzeTweet("sk-test", gomock.Any(), domain.CRMStats{
						TotalLeads:     2,
						HotLeads:       1,
						ClosedClients:  1,
						MonthlyRevenue: 1200.0,
					}).
					Return(&domain.TweetAnalysis{
						EngagementSummary: "Bom alcance",
						ViralityScore:     82,
						Suggestions:       []string{"Poste no horário de pico"},
					}, nil)

				tweetRepo.EXPECT().SaveAnalysis(1, 7, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.TweetAnalysis, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 82.0, result.ViralityScore)
			},
		},
		{
			name: "Falha do provedor de IA degrada para o fallback e ainda persiste",
			setup: func(tweetRepo *mocks.MockTweetRepository, clientRepo *mocks.MockClientRepository, closedClientRepo *mocks.MockClosedClientRepository, ai *openaimocks.MockOpenAIIntegrator) {
				tweetRepo.EXPECT().GetByID(1, 7).Return(storedTweet(), nil)
				clientRepo.EXPECT().List(1).Return(nil, nil)
				closedClientRepo.EXPECT().List(1).Return(nil, nil)

				ai.EXPECT().
					AnalyzeTweet("sk-test", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))

				tweetRepo.EXPECT().SaveAnalysis(1, 7, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.TweetAnalysis, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 50.0, result.ViralityScore)
				assert.NotEmpty(t, result.Suggestions)
			},
		},
		{
			name: "Tweet inexistente retorna erro sem chamar o provedor",
			setup: func(tweetRepo *mocks.MockTweetRepository, clientRepo *mocks.MockClientRepository, closedClientRepo *mocks.MockClosedClientRepository, ai *openaimocks.MockOpenAIIntegrator) {
				tweetRepo.EXPECT().GetByID(1, 7).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.TweetAnalysis, err error) {
				assert.ErrorIs(t, err, ErrTweetNotFound)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tweetRepo := mocks.NewMockTweetRepository(ctrl)
			clientRepo := mocks.NewMockClientRepository(ctrl)
			closedClientRepo := mocks.NewMockClosedClientRepository(ctrl)
			ai := openaimocks.NewMockOpenAIIntegrator(ctrl)

			tt.setup(tweetRepo, clientRepo, closedClientRepo, ai)

			service := NewService(tweetRepo, clientRepo, closedClientRepo, ai)

			result, err := service.AnalyzeTweet(1, 7, "sk-test")
			tt.validate(t, result, err)
		})
	}
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tweetRepo := mocks.NewMockTweetRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	closedClientRepo := mocks.NewMockClosedClientRepository(ctrl)
	ai := openaimocks.NewMockOpenAIIntegrator(ctrl)

	service := NewService(tweetRepo, clientRepo, closedClientRepo, ai)

	t.Run("Falha do provedor de IA degrada para o resumo local", func(t *testing.T) {
		clientRepo.EXPECT().List(1).Return([]*domain.Client{{}, {}, {}, {}}, nil)
		closedClientRepo.EXPECT().List(1).Return([]*domain.ClosedClient{
			{MonthlyRevenue: 500.0},
		}, nil)

		ai.EXPECT().
			Summarize("sk-test", gomock.Any()).
			Return("", errors.New("timeout"))

		summary, err := service.Summary(1, "sk-test")
		assert.NoError(t, err)
		assert.Contains(t, summary, "4 leads")
		assert.Contains(t, summary, "25.0%")
	})
}

func TestFallbackSummary(t *testing.T) {
	tests := []struct {
		name     string
		stats    domain.CRMStats
		expected string
	}{
		{
			name: "Base com leads e fechamentos",
			stats: domain.CRMStats{
				TotalLeads:     10,
				ClosedClients:  2,
				MonthlyRevenue: 3000.0,
			},
			expected: "Resumo automático: 10 leads na base, 2 clientes fechados. Taxa de conversão de 20.0% e receita média de R$ 1500.00 por cliente fechado.",
		},
		{
			name:     "Base vazia usa denominador 1 e não divide por zero",
			stats:    domain.CRMStats{},
			expected: "Resumo automático: 0 leads na base, 0 clientes fechados. Taxa de conversão de 0.0% e receita média de R$ 0.00 por cliente fechado.",
		},
		{
			name: "Fechamentos sem leads usam denominador 1 na conversão",
			stats: domain.CRMStats{
				TotalLeads:     0,
				ClosedClients:  3,
				MonthlyRevenue: 900.0,
			},
			expected: "Resumo automático: 0 leads na base, 3 clientes fechados. Taxa de conversão de 300.0% e receita média de R$ 300.00 por cliente fechado.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FallbackSummary(tt.stats))
		})
	}
}
