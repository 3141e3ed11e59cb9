package domain

import "time"

// Asset é a referência de um arquivo enviado para um cliente.
// O arquivo em si não é armazenado de forma durável por este serviço,
// apenas a URL e o nome de exibição.
type Asset struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	FileURL   string    `json:"file_url"`
	FileName  string    `json:"file_name"`
	CreatedBy int       `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
