package domain

import "time"

// Note é uma anotação livre vinculada a um cliente. Não possui histórico de edição:
// notas são criadas e removidas, nunca alteradas.
type Note struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Content   string    `json:"content"`
	CreatedBy int       `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
