package clients

import (
	"reflect"

	"github.com/vfg2006/godcrm-api/internal/domain"
)

// Campos de sistema excluídos da comparação nos dois sentidos
var immutableFields = map[string]struct{}{
	"id":         {},
	"created_by": {},
	"created_at": {},
}

// Diff calcula a diferença campo a campo entre o estado anterior e o novo
// estado de um cliente. Campos presentes apenas no original entram como
// {old, nil} (caso de remoção de campo). Um resultado vazio significa que
// nenhum registro de edição deve ser gravado.
func Diff(original, updated map[string]any) map[string]domain.FieldChange {
	changes := map[string]domain.FieldChange{}

	for field, newValue := range updated {
		if _, immutable := immutableFields[field]; immutable {
			continue
		}

		oldValue, exists := original[field]
		if !exists || !reflect.DeepEqual(oldValue, newValue) {
			changes[field] = domain.FieldChange{Old: oldValue, New: newValue}
		}
	}

	for field, oldValue := range original {
		if _, immutable := immutableFields[field]; immutable {
			continue
		}

		if _, exists := updated[field]; !exists {
			changes[field] = domain.FieldChange{Old: oldValue, New: nil}
		}
	}

	return changes
}
