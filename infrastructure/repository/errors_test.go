package repository

import (
	"database/sql"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStorageError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "Erro nulo passa direto",
			err:      nil,
			expected: nil,
		},
		{
			name:     "Permissão negada vira ErrUnauthenticated",
			err:      errors.New("pq: permission denied for table clients"),
			expected: ErrUnauthenticated,
		},
		{
			name:     "Violação de row-level security vira ErrUnauthenticated",
			err:      errors.New(`pq: new row violates row-level security policy for table "clients"`),
			expected: ErrUnauthenticated,
		},
		{
			name:     "Erro de JWT vira ErrUnauthenticated",
			err:      errors.New("pq: invalid JWT claims"),
			expected: ErrUnauthenticated,
		},
		{
			name:     "Relação inexistente vira ErrSchemaMissing",
			err:      errors.New(`pq: relation "clients" does not exist`),
			expected: ErrSchemaMissing,
		},
		{
			name:     "Coluna inexistente vira ErrSchemaMissing",
			err:      errors.New(`pq: column "lead_temperature" does not exist`),
			expected: ErrSchemaMissing,
		},
		{
			name:     "Função inexistente não é erro de esquema",
			err:      errors.New(`pq: function gen_random_uid() does not exist`),
			expected: nil,
		},
		{
			name:     "Demais erros passam embrulhados sem reclassificação",
			err:      errors.New("pq: deadlock detected"),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyStorageError(tt.err, "clients.List")

			if tt.err == nil {
				assert.NoError(t, result)
				return
			}

			if tt.expected != nil {
				assert.ErrorIs(t, result, tt.expected)
				// A operação entra na mensagem para rastreio nos logs
				assert.Contains(t, result.Error(), "clients.List")
				return
			}

			assert.NotErrorIs(t, result, ErrUnauthenticated)
			assert.NotErrorIs(t, result, ErrSchemaMissing)
			assert.Contains(t, result.Error(), tt.err.Error())
		})
	}
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(sql.ErrNoRows))
	assert.True(t, isNoRows(errors.Wrap(sql.ErrNoRows, "clients.GetByID")))
	assert.False(t, isNoRows(errors.New("outro erro")))
}

func TestIsPermissionDenied(t *testing.T) {
	classified := classifyStorageError(errors.New("pq: permission denied for table notes"), "notes.ListByClient")
	assert.True(t, isPermissionDenied(classified))
	assert.False(t, isPermissionDenied(errors.New("pq: deadlock detected")))
}
