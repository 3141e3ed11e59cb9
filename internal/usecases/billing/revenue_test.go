package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyRevenue(t *testing.T) {
	tests := []struct {
		name           string
		videosPerMonth int
		chargePerVideo float64
		expected       float64
		expectedErr    error
	}{
		{
			name:           "Deve calcular receita como videos x valor por video",
			videosPerMonth: 4,
			chargePerVideo: 150.0,
			expected:       600.0,
		},
		{
			name:           "Deve arredondar para duas casas decimais",
			videosPerMonth: 3,
			chargePerVideo: 33.333,
			expected:       100.0,
		},
		{
			name:           "Zero videos resulta em receita zero",
			videosPerMonth: 0,
			chargePerVideo: 500.0,
			expected:       0,
		},
		{
			name:           "Valor por video zero resulta em receita zero",
			videosPerMonth: 10,
			chargePerVideo: 0,
			expected:       0,
		},
		{
			name:           "Deve rejeitar quantidade de videos negativa",
			videosPerMonth: -1,
			chargePerVideo: 100.0,
			expectedErr:    ErrNegativeVideos,
		},
		{
			name:           "Deve rejeitar valor por video negativo",
			videosPerMonth: 5,
			chargePerVideo: -0.01,
			expectedErr:    ErrNegativeCharge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MonthlyRevenue(tt.videosPerMonth, tt.chargePerVideo)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
