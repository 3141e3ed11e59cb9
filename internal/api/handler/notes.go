package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/internal/usecases/clients"
	"github.com/vfg2006/godcrm-api/pkg/apiErrors"
)

type CreateNoteRequest struct {
	Content string `json:"content"`
}

func NoteList(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		notes, err := service.ListNotes(actorID(r), clientID)
		if err != nil {
			logrus.Error("Erro ao listar notas:", err)
			writeClientError(w, err, clientID)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(notes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateNote(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateNote")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		var req CreateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		note, err := service.AddNote(actorID(r), clientID, req.Content)
		if err != nil {
			logrus.Error("Erro ao criar nota:", err)
			writeClientError(w, err, clientID)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(note); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteNote(service clients.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteNote")

		id := httprouter.ParamsFromContext(r.Context()).ByName("note_id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da nota é obrigatório", nil)
			return
		}

		if err := service.DeleteNote(actorID(r), id); err != nil {
			logrus.Error("Erro ao excluir nota:", err)
			writeClientError(w, err, "")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
