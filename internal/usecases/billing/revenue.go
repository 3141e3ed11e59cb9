package billing

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/godcrm-api/pkg/utils"
)

// Erros de validação da receita mensal
var (
	ErrNegativeVideos = errors.New("videosPerMonth não pode ser negativo")
	ErrNegativeCharge = errors.New("chargePerVideo não pode ser negativo")
)

// MonthlyRevenue calcula a receita mensal derivada de um cliente fechado:
// vídeos por mês × valor por vídeo. Função pura, sem efeitos colaterais.
// Entradas negativas são rejeitadas antes de qualquer persistência.
func MonthlyRevenue(videosPerMonth int, chargePerVideo float64) (float64, error) {
	if videosPerMonth < 0 {
		return 0, ErrNegativeVideos
	}

	if chargePerVideo < 0 {
		return 0, ErrNegativeCharge
	}

	return utils.RoundWithTwoDecimalPlace(float64(videosPerMonth) * chargePerVideo), nil
}
