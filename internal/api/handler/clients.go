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
	"github.com/vfg2006/godcrm-api/internal/usecases/clients"
	"github.com/vfg2006/godcrm-api/internal/viewmodel"
	"github.com/vfg2006/godcrm-api/pkg/apiErrors"
)

// ClientListResponse é a página de clientes com os metadados de paginação
type ClientListResponse struct {
	Clients     []*domain.Client `json:"clients"`
	Page        int              `json:"page"`
	PageSize    int              `json:"page_size"`
	TotalPages  int              `json:"total_pages"`
	TotalCount  int              `json:"total_count"`
	Search      string           `json:"search,omitempty"`
	Temperature string           `json:"temperature,omitempty"`
}

func ClientList(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := service.List(actorID(r))
		if err != nil {
			logrus.Error("Erro ao listar clientes:", err)
			writeStorageError(w, err)
			return
		}

		query := r.URL.Query()

		list := viewmodel.NewClientList(all)
		list.SetSearch(query.Get("search"))
		list.SetTemperature(query.Get("temperature"))
		list.SetFollowUpStatus(query.Get("follow_up_status"))
		list.SetOutreachType(query.Get("outreach_type"))

		if size, err := strconv.Atoi(query.Get("page_size")); err == nil {
			list.SetPageSize(size)
		}
		if page, err := strconv.Atoi(query.Get("page")); err == nil {
			list.SetPage(page)
		}

		resp := ClientListResponse{
			Clients:     list.Page(),
			Page:        list.CurrentPage(),
			PageSize:    list.PageSize(),
			TotalPages:  list.TotalPages(),
			TotalCount:  list.FilteredCount(),
			Search:      query.Get("search"),
			Temperature: query.Get("temperature"),
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetClient(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		client, err := service.Get(actorID(r), id)
		if err != nil {
			logrus.Error("Erro ao buscar cliente:", err)
			writeClientError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(client); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateClient(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClient")

		var client domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.Create(actorID(r), &client)
		if err != nil {
			logrus.Error("Erro ao criar cliente:", err)
			writeClientError(w, err, "")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateClient(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateClient")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		updated, err := service.Update(actorID(r), &updateRequest)
		if err != nil {
			logrus.Error("Erro ao atualizar cliente:", err)
			writeClientError(w, err, id)
			return
		}

		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteClient(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteClient")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		if err := service.Delete(actorID(r), id); err != nil {
			logrus.Error("Erro ao excluir cliente:", err)
			writeClientError(w, err, id)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ClientEditHistory retorna o histórico de edições do cliente,
// do mais recente para o mais antigo
func ClientEditHistory(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		edits, err := service.EditHistory(actorID(r), id)
		if err != nil {
			logrus.Error("Erro ao buscar histórico de edições:", err)
			writeClientError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(edits); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeClientError traduz os erros do caso de uso de clientes para a resposta HTTP
func writeClientError(w http.ResponseWriter, err error, clientID string) {
	switch {
	case errors.Is(err, clients.ErrClientNotFound):
		details := map[string]any{}
		if clientID != "" {
			details["client_id"] = clientID
		}
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cliente não encontrado", details)

	case errors.Is(err, clients.ErrMissingName),
		errors.Is(err, clients.ErrMissingContent),
		errors.Is(err, clients.ErrMissingFileReference):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, clients.ErrInvalidTemperature),
		errors.Is(err, clients.ErrInvalidStatus),
		errors.Is(err, clients.ErrNegativeFollowUpCount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		writeStorageError(w, err)
	}
}

// writeStorageError traduz os erros da camada de persistência
func writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrUnauthenticated):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)

	case errors.Is(err, repository.ErrSchemaMissing):
		apiErrors.WriteError(w, apiErrors.ErrSchemaMissing, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)
	}
}
