package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	openaimocks "github.com/vfg2006/godcrm-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/godcrm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"github.com/vfg2006/godcrm-api/internal/usecases/analyzing"
	"github.com/vfg2006/godcrm-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func authenticatedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, &domain.Claims{UserID: 1})
	return r.WithContext(ctx)
}

func withTweetID(r *http.Request, id string) *http.Request {
	params := httprouter.Params{{Key: "id", Value: id}}
	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))
}

func newAnalyzerFixture(t *testing.T) (analyzing.AnalyzerService, *mocks.MockTweetRepository, *mocks.MockClientRepository, *mocks.MockClosedClientRepository, *openaimocks.MockOpenAIIntegrator) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tweetRepo := mocks.NewMockTweetRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	closedClientRepo := mocks.NewMockClosedClientRepository(ctrl)
	ai := openaimocks.NewMockOpenAIIntegrator(ctrl)

	return analyzing.NewService(tweetRepo, clientRepo, closedClientRepo, ai), tweetRepo, clientRepo, closedClientRepo, ai
}

func TestCreateTweet(t *testing.T) {
	tests := []struct {
		name         string
		request      func() *http.Request
		setup        func(tweetRepo *mocks.MockTweetRepository)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Deve criar tweet a partir de URL válida",
			request: func() *http.Request {
				return authenticatedRequest(http.MethodPost, "/api/tweets", `{"url":"https://x.com/editorpro/status/42"}`)
			},
			setup: func(tweetRepo *mocks.MockTweetRepository) {
				tweetRepo.EXPECT().
					Create(1, gomock.Any()).
					DoAndReturn(func(actorID int, tweet *domain.Tweet) (*domain.Tweet, error) {
						tweet.ID = 1
						return tweet, nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"author":"editorpro"`,
		},
		{
			name: "URL ausente responde 400 com a mensagem do contrato",
			request: func() *http.Request {
				return authenticatedRequest(http.MethodPost, "/api/tweets", `{}`)
			},
			setup:        func(tweetRepo *mocks.MockTweetRepository) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Tweet URL is required"}`,
		},
		{
			name: "URL fora do padrão de status responde 400",
			request: func() *http.Request {
				return authenticatedRequest(http.MethodPost, "/api/tweets", `{"url":"https://example.com/post/1"}`)
			},
			setup:        func(tweetRepo *mocks.MockTweetRepository) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid Twitter URL"}`,
		},
		{
			name: "Sem sessão responde 401 em JSON",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/tweets", strings.NewReader(`{"url":"https://x.com/editorpro/status/42"}`))
			},
			setup:        func(tweetRepo *mocks.MockTweetRepository) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tweetRepo, _, _, _ := newAnalyzerFixture(t)
			tt.setup(tweetRepo)

			recorder := httptest.NewRecorder()
			CreateTweet(service).ServeHTTP(recorder, tt.request())

			assert.Equal(t, tt.expectedCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.expectedBody)
		})
	}
}

func TestGetTweet(t *testing.T) {
	t.Run("Tweet inexistente responde 404", func(t *testing.T) {
		service, tweetRepo, _, _, _ := newAnalyzerFixture(t)

		tweetRepo.EXPECT().GetByID(1, 99).Return(nil, nil)

		recorder := httptest.NewRecorder()
		request := withTweetID(authenticatedRequest(http.MethodGet, "/api/tweets/99", ""), "99")
		GetTweet(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `{"error":"Tweet not found"}`)
	})

	t.Run("ID não numérico responde 404 sem consultar o repositório", func(t *testing.T) {
		service, _, _, _, _ := newAnalyzerFixture(t)

		recorder := httptest.NewRecorder()
		request := withTweetID(authenticatedRequest(http.MethodGet, "/api/tweets/abc", ""), "abc")
		GetTweet(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestAnalyzeTweet(t *testing.T) {
	t.Run("Análise responde com envelope analysis e pontuação de viralidade", func(t *testing.T) {
		service, tweetRepo, clientRepo, closedClientRepo, ai := newAnalyzerFixture(t)

		tweetRepo.EXPECT().GetByID(1, 7).Return(&domain.Tweet{ID: 7, Author: "editorpro"}, nil)
		clientRepo.EXPECT().List(1).Return(nil, nil)
		closedClientRepo.EXPECT().List(1).Return(nil, nil)
		ai.EXPECT().
			AnalyzeTweet("sk-test", gomock.Any(), gomock.Any()).
			Return(&domain.TweetAnalysis{
				ViralityScore: 77,
				Suggestions:   []string{"Use mais threads"},
			}, nil)
		tweetRepo.EXPECT().SaveAnalysis(1, 7, gomock.Any()).Return(nil)

		recorder := httptest.NewRecorder()
		request := withTweetID(authenticatedRequest(http.MethodPost, "/api/tweets/7/analyze", ""), "7")
		request.Header.Set("X-OpenAI-Key", "sk-test")
		AnalyzeTweet(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		body := recorder.Body.String()
		assert.Contains(t, body, `"analysis"`)
		assert.Contains(t, body, `"virality_score":77`)
		assert.Contains(t, body, "Use mais threads")
	})

	t.Run("Provedor de IA fora do ar ainda responde 200 com o fallback", func(t *testing.T) {
		service, tweetRepo, clientRepo, closedClientRepo, ai := newAnalyzerFixture(t)

		tweetRepo.EXPECT().GetByID(1, 7).Return(&domain.Tweet{ID: 7}, nil)
		clientRepo.EXPECT().List(1).Return(nil, nil)
		closedClientRepo.EXPECT().List(1).Return(nil, nil)
		ai.EXPECT().
			AnalyzeTweet(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout"))
		tweetRepo.EXPECT().SaveAnalysis(1, 7, gomock.Any()).Return(nil)

		recorder := httptest.NewRecorder()
		request := withTweetID(authenticatedRequest(http.MethodPost, "/api/tweets/7/analyze", ""), "7")
		AnalyzeTweet(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"virality_score":50`)
	})
}

func TestDeleteTweet(t *testing.T) {
	service, tweetRepo, _, _, _ := newAnalyzerFixture(t)

	tweetRepo.EXPECT().Delete(1, 7).Return(nil)

	recorder := httptest.NewRecorder()
	request := withTweetID(authenticatedRequest(http.MethodDelete, "/api/tweets/7", ""), "7")
	DeleteTweet(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
