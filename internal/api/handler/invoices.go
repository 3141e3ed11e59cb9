package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"github.com/vfg2006/godcrm-api/internal/usecases/billing"
	"github.com/vfg2006/godcrm-api/pkg/apiErrors"
)

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

// InvoiceList lista as faturas de um cliente fechado
func InvoiceList(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		closedClientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if closedClientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente fechado é obrigatório", nil)
			return
		}

		invoices, err := service.ListInvoices(actorID(r), closedClientID)
		if err != nil {
			logrus.Error("Erro ao listar faturas:", err)
			writeBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(invoices); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// CreateInvoice cria uma fatura para um cliente fechado. O número da fatura
// é gerado no servidor; número enviado no corpo é ignorado.
func CreateInvoice(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateInvoice")

		closedClientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if closedClientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente fechado é obrigatório", nil)
			return
		}

		var invoice domain.Invoice
		if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		invoice.ClosedClientID = closedClientID

		created, err := service.CreateInvoice(actorID(r), &invoice)
		if err != nil {
			logrus.Error("Erro ao criar fatura:", err)
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

// UpdateInvoiceStatus alterna o status de pagamento da fatura
func UpdateInvoiceStatus(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateInvoiceStatus")

		id := httprouter.ParamsFromContext(r.Context()).ByName("invoice_id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura é obrigatório", nil)
			return
		}

		var req UpdateInvoiceStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := service.UpdateInvoiceStatus(actorID(r), id, req.Status); err != nil {
			logrus.Error("Erro ao atualizar status da fatura:", err)
			writeBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})
}

func DeleteInvoice(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteInvoice")

		id := httprouter.ParamsFromContext(r.Context()).ByName("invoice_id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura é obrigatório", nil)
			return
		}

		if err := service.DeleteInvoice(actorID(r), id); err != nil {
			logrus.Error("Erro ao excluir fatura:", err)
			writeBillingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
