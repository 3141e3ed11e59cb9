package repository

import (
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/godcrm-api/infrastructure/database/postgres"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

const clientEditsTable = "client_edits"

type ClientEditRepository interface {
	ListByClient(actorID int, clientID string) ([]*domain.ClientEdit, error)
	Create(actorID int, edit *domain.ClientEdit) (*domain.ClientEdit, error)
}

type clientEditRepository struct {
	conn *postgres.Connection
}

func NewClientEditRepository(conn *postgres.Connection) ClientEditRepository {
	return &clientEditRepository{
		conn: conn,
	}
}

func (r *clientEditRepository) ListByClient(actorID int, clientID string) ([]*domain.ClientEdit, error) {
	if actorID == 0 {
		return nil, nil
	}

	// O escopo de dono vem do cliente pai: registros de edição não carregam
	// created_by próprio, então o filtro entra pelo join com clients.
	queryBuilder := squirrel.
		Select("ce.id", "ce.client_id", "ce.changed_by", "ce.changed_fields", "ce.created_at").
		From(clientEditsTable + " ce").
		Join(clientsTable + " c ON c.id = ce.client_id").
		Where(squirrel.Eq{"ce.client_id": clientID, "c.created_by": actorID}).
		OrderBy("ce.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	editsSQL, editsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(editsSQL, editsArgs...)
	if err != nil {
		classified := classifyStorageError(err, "erro ao listar edições do cliente")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}
	defer rows.Close()

	var edits []*domain.ClientEdit
	for rows.Next() {
		var edit domain.ClientEdit
		var changedFields []byte
		if err := rows.Scan(&edit.ID, &edit.ClientID, &edit.ChangedBy, &changedFields, &edit.CreatedAt); err != nil {
			return nil, classifyStorageError(err, "erro ao processar edição")
		}
		if err := json.Unmarshal(changedFields, &edit.ChangedFields); err != nil {
			return nil, classifyStorageError(err, "erro ao decodificar campos alterados")
		}
		edits = append(edits, &edit)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStorageError(err, "erro durante iteração de edições")
	}

	return edits, nil
}

// Create grava um registro de edição. Registros de edição são imutáveis:
// não existe Update nem Delete neste repositório.
func (r *clientEditRepository) Create(actorID int, edit *domain.ClientEdit) (*domain.ClientEdit, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	changedFields, err := json.Marshal(edit.ChangedFields)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Insert(clientEditsTable).
		Columns("client_id", "changed_by", "changed_fields").
		Values(edit.ClientID, actorID, changedFields).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	editSQL, editArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(editSQL, editArgs...).Scan(&edit.ID, &edit.CreatedAt)
	if err != nil {
		return nil, classifyStorageError(err, "erro ao criar registro de edição")
	}

	edit.ChangedBy = actorID
	return edit, nil
}
