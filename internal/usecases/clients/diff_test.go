package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		original map[string]any
		updated  map[string]any
		expected map[string]domain.FieldChange
	}{
		{
			name:     "Estados idênticos produzem diff vazio",
			original: map[string]any{"name": "Ana", "email": "ana@example.com"},
			updated:  map[string]any{"name": "Ana", "email": "ana@example.com"},
			expected: map[string]domain.FieldChange{},
		},
		{
			name:     "Campo alterado entra com valor antigo e novo",
			original: map[string]any{"name": "Ana", "company": "Alfa"},
			updated:  map[string]any{"name": "Beatriz", "company": "Alfa"},
			expected: map[string]domain.FieldChange{
				"name": {Old: "Ana", New: "Beatriz"},
			},
		},
		{
			name:     "Campo novo entra com old nulo",
			original: map[string]any{"name": "Ana"},
			updated:  map[string]any{"name": "Ana", "tags": "gaming"},
			expected: map[string]domain.FieldChange{
				"tags": {Old: nil, New: "gaming"},
			},
		},
		{
			name:     "Campo removido entra com new nulo",
			original: map[string]any{"name": "Ana", "tags": "gaming"},
			updated:  map[string]any{"name": "Ana"},
			expected: map[string]domain.FieldChange{
				"tags": {Old: "gaming", New: nil},
			},
		},
		{
			name: "Campos de sistema ficam fora do diff nos dois sentidos",
			original: map[string]any{
				"id":         "c-1",
				"created_by": 1,
				"created_at": "2026-01-01T00:00:00Z",
				"name":       "Ana",
			},
			updated: map[string]any{
				"id":   "c-2",
				"name": "Ana",
			},
			expected: map[string]domain.FieldChange{},
		},
		{
			name:     "Campo numérico alterado entra no diff",
			original: map[string]any{"subscribers": 100},
			updated:  map[string]any{"subscribers": 250},
			expected: map[string]domain.FieldChange{
				"subscribers": {Old: 100, New: 250},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Diff(tt.original, tt.updated))
		})
	}
}
