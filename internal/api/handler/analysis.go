package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/godcrm-api/internal/usecases/analyzing"
	"github.com/vfg2006/godcrm-api/internal/usecases/clients"
	"github.com/vfg2006/godcrm-api/pkg/apiErrors"
)

type SummaryResponse struct {
	Summary string `json:"summary"`
}

// Summary gera o resumo da carteira via IA. Quando o provedor está
// indisponível, o serviço responde com o resumo determinístico local,
// então a rota só falha por erro de autenticação.
func Summary(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Summary")

		summary, err := service.Summary(actorID(r), r.Header.Get("X-OpenAI-Key"))
		if err != nil {
			logrus.Error("Erro ao gerar resumo:", err)
			writeStorageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(SummaryResponse{Summary: summary}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ClientYoutubeMetadata busca os metadados do canal/vídeo do YouTube do
// cliente via oEmbed. A busca nunca falha a requisição: sem link ou com o
// serviço fora, responde metadados vazios com available=false.
func ClientYoutubeMetadata(clientService clients.ClientService, yt youtube.YoutubeIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		client, err := clientService.Get(actorID(r), id)
		if err != nil {
			logrus.Error("Erro ao buscar cliente para metadados do YouTube:", err)
			writeClientError(w, err, id)
			return
		}
		if client == nil {
			writeClientError(w, clients.ErrClientNotFound, id)
			return
		}

		metadata := yt.FetchMetadata(client.YoutubeLink)

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(metadata); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
