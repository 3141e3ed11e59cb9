package domain

import "time"

// Status de pagamento de fatura
const (
	InvoicePending = "pending"
	InvoicePaid    = "paid"
)

// Invoice é uma fatura mensal de um cliente fechado. O valor não é amarrado
// ao monthlyRevenue do cliente: faturas avulsas são permitidas.
type Invoice struct {
	ID             string    `json:"id"`
	ClosedClientID string    `json:"closed_client_id"`
	Number         string    `json:"number"`
	Amount         float64   `json:"amount"`
	Description    string    `json:"description"`
	VideoCount     int       `json:"video_count"`
	Status         string    `json:"status"`
	FileURL        string    `json:"file_url"`
	FileName       string    `json:"file_name"`
	Month          string    `json:"month"` // formato YYYY-MM
	CreatedBy      int       `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// ValidInvoiceStatus verifica se o status de fatura é aceito
func ValidInvoiceStatus(s string) bool {
	return s == InvoicePending || s == InvoicePaid
}
