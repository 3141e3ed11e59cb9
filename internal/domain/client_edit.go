package domain

import "time"

// FieldChange é o par antes/depois de um campo alterado
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// ClientEdit é um registro imutável do log de edições de um cliente.
// É criado uma única vez por salvamento que produziu ao menos um campo
// alterado e nunca é atualizado depois disso.
type ClientEdit struct {
	ID            string                 `json:"id"`
	ClientID      string                 `json:"client_id"`
	ChangedBy     int                    `json:"changed_by"`
	ChangedFields map[string]FieldChange `json:"changed_fields"`
	CreatedAt     time.Time              `json:"created_at"`
}
