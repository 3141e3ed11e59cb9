package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/infrastructure/repository"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"github.com/vfg2006/godcrm-api/internal/usecases/analyzing"
)

// As rotas de tweets respondem erros no formato {"error": "..."}, que é o
// contrato esperado pelo painel de análise, diferente do envelope de
// apiErrors usado no restante da API.

type CreateTweetRequest struct {
	URL          string `json:"url"`
	IsCompetitor bool   `json:"is_competitor"`
}

type TweetAnalysisResponse struct {
	Analysis *domain.TweetAnalysis `json:"analysis"`
}

func writeTweetError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// handleTweetError traduz os erros do caso de uso de análise para o contrato
// de erro plano das rotas de tweets
func handleTweetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyzing.ErrMissingURL):
		writeTweetError(w, http.StatusBadRequest, "Tweet URL is required")

	case errors.Is(err, analyzing.ErrInvalidURL):
		writeTweetError(w, http.StatusBadRequest, "Invalid Twitter URL")

	case errors.Is(err, analyzing.ErrTweetNotFound):
		writeTweetError(w, http.StatusNotFound, "Tweet not found")

	case errors.Is(err, repository.ErrUnauthenticated):
		writeTweetError(w, http.StatusUnauthorized, "Unauthorized")

	default:
		writeTweetError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func tweetIDFromRequest(r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, false
	}
	return id, true
}

func TweetList(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := actorID(r)
		if actor == 0 {
			writeTweetError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		tweets, err := service.ListTweets(actor)
		if err != nil {
			logrus.Error("Erro ao listar tweets:", err)
			handleTweetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tweets)
	})
}

func CreateTweet(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTweet")

		actor := actorID(r)
		if actor == 0 {
			writeTweetError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateTweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeTweetError(w, http.StatusBadRequest, "Tweet URL is required")
			return
		}

		tweet, err := service.CreateTweet(actor, req.URL, req.IsCompetitor)
		if err != nil {
			logrus.Error("Erro ao criar tweet:", err)
			handleTweetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(tweet)
	})
}

func GetTweet(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := actorID(r)
		if actor == 0 {
			writeTweetError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, ok := tweetIDFromRequest(r)
		if !ok {
			writeTweetError(w, http.StatusNotFound, "Tweet not found")
			return
		}

		tweet, err := service.GetTweet(actor, id)
		if err != nil {
			logrus.Error("Erro ao buscar tweet:", err)
			handleTweetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tweet)
	})
}

func UpdateTweet(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateTweet")

		actor := actorID(r)
		if actor == 0 {
			writeTweetError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, ok := tweetIDFromRequest(r)
		if !ok {
			writeTweetError(w, http.StatusNotFound, "Tweet not found")
			return
		}

		var req domain.UpdateTweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeTweetError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		// Garante que o ID da URL seja usado
		req.ID = id

		tweet, err := service.UpdateTweet(actor, &req)
		if err != nil {
			logrus.Error("Erro ao atualizar tweet:", err)
			handleTweetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tweet)
	})
}

func DeleteTweet(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteTweet")

		actor := actorID(r)
		if actor == 0 {
			writeTweetError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, ok := tweetIDFromRequest(r)
		if !ok {
			writeTweetError(w, http.StatusNotFound, "Tweet not found")
			return
		}

		if err := service.DeleteTweet(actor, id); err != nil {
			logrus.Error("Erro ao excluir tweet:", err)
			handleTweetError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// AnalyzeTweet dispara a análise de um tweet. A chave do provedor pode vir no
// header X-OpenAI-Key; sem ela, vale a chave configurada no servidor. Falha do
// provedor não derruba a rota: o serviço responde com a análise de fallback.
func AnalyzeTweet(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AnalyzeTweet")

		actor := actorID(r)
		if actor == 0 {
			writeTweetError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, ok := tweetIDFromRequest(r)
		if !ok {
			writeTweetError(w, http.StatusNotFound, "Tweet not found")
			return
		}

		analysis, err := service.AnalyzeTweet(actor, id, r.Header.Get("X-OpenAI-Key"))
		if err != nil {
			logrus.Error("Erro ao analisar tweet:", err)
			handleTweetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TweetAnalysisResponse{Analysis: analysis})
	})
}
