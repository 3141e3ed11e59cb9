package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"github.com/vfg2006/godcrm-api/internal/usecases/billing"
	"github.com/vfg2006/godcrm-api/pkg/apiErrors"
)

// CreateClosedClientRequest não aceita monthlyRevenue: o valor é sempre
// derivado no servidor a partir de videosPerMonth e chargePerVideo
type CreateClosedClientRequest struct {
	Name           string  `json:"name"`
	VideosPerMonth int     `json:"videosPerMonth"`
	ChargePerVideo float64 `json:"chargePerVideo"`
}

func ClosedClientList(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		closedClients, err := service.ListClosedClients(actorID(r))
		if err != nil {
			logrus.Error("Erro ao listar clientes fechados:", err)
			writeBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(closedClients); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetClosedClient(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente fechado é obrigatório", nil)
			return
		}

		closedClient, err := service.GetClosedClient(actorID(r), id)
		if err != nil {
			logrus.Error("Erro ao buscar cliente fechado:", err)
			writeBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(closedClient); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateClosedClient(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClosedClient")

		var req CreateClosedClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateClosedClient(actorID(r), req.Name, req.VideosPerMonth, req.ChargePerVideo)
		if err != nil {
			logrus.Error("Erro ao criar cliente fechado:", err)
			writeBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateClosedClient(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateClosedClient")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente fechado é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateClosedClientRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		updated, err := service.UpdateClosedClient(actorID(r), &updateRequest)
		if err != nil {
			logrus.Error("Erro ao atualizar cliente fechado:", err)
			writeBillingError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteClosedClient(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteClosedClient")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente fechado é obrigatório", nil)
			return
		}

		if err := service.DeleteClosedClient(actorID(r), id); err != nil {
			logrus.Error("Erro ao excluir cliente fechado:", err)
			writeBillingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeBillingError traduz os erros do caso de uso de cobrança para a resposta HTTP
func writeBillingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, billing.ErrClosedClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cliente fechado não encontrado", nil)

	case errors.Is(err, billing.ErrInvoiceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Fatura não encontrada", nil)

	case errors.Is(err, billing.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, billing.ErrNegativeVideos),
		errors.Is(err, billing.ErrNegativeCharge),
		errors.Is(err, billing.ErrInvalidInvoiceStatus),
		errors.Is(err, billing.ErrInvalidMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		writeStorageError(w, err)
	}
}
