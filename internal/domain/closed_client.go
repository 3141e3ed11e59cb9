package domain

import "time"

// ClosedClient é um lead convertido em cliente recorrente, cobrado por vídeo.
// MonthlyRevenue é sempre derivado de VideosPerMonth × ChargePerVideo e nunca
// é aceito diretamente do cliente da API.
type ClosedClient struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	VideosPerMonth int       `json:"videosPerMonth"`
	ChargePerVideo float64   `json:"chargePerVideo"`
	MonthlyRevenue float64   `json:"monthlyRevenue"`
	CreatedBy      int       `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateClosedClientRequest carrega uma atualização parcial. Quando apenas um
// dos campos de receita é enviado, o outro é resolvido a partir do registro
// armazenado antes do recálculo.
type UpdateClosedClientRequest struct {
	ID             string   `json:"id"`
	Name           *string  `json:"name"`
	VideosPerMonth *int     `json:"videosPerMonth"`
	ChargePerVideo *float64 `json:"chargePerVideo"`
}
