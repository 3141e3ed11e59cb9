package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/internal/usecases/clients"
	"github.com/vfg2006/godcrm-api/pkg/apiErrors"
)

type CreateAssetRequest struct {
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
}

func AssetList(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		assets, err := service.ListAssets(actorID(r), clientID)
		if err != nil {
			logrus.Error("Erro ao listar arquivos:", err)
			writeClientError(w, err, clientID)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(assets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateAsset(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAsset")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		var req CreateAssetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		asset, err := service.AddAsset(actorID(r), clientID, req.FileURL, req.FileName)
		if err != nil {
			logrus.Error("Erro ao salvar arquivo:", err)
			writeClientError(w, err, clientID)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(asset); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteAsset(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteAsset")

		id := httprouter.ParamsFromContext(r.Context()).ByName("asset_id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do arquivo é obrigatório", nil)
			return
		}

		if err := service.DeleteAsset(actorID(r), id); err != nil {
			logrus.Error("Erro ao excluir arquivo:", err)
			writeClientError(w, err, "")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
