package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/godcrm-api/infrastructure/database/postgres"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

const notesTable = "notes"

type NoteRepository interface {
	ListByClient(actorID int, clientID string) ([]*domain.Note, error)
	Create(actorID int, note *domain.Note) (*domain.Note, error)
	Delete(actorID int, id string) error
}

type noteRepository struct {
	conn *postgres.Connection
}

func NewNoteRepository(conn *postgres.Connection) NoteRepository {
	return &noteRepository{
		conn: conn,
	}
}

func (r *noteRepository) ListByClient(actorID int, clientID string) ([]*domain.Note, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select("id", "client_id", "content", "created_by", "created_at").
		From(notesTable).
		Where(squirrel.Eq{"client_id": clientID, "created_by": actorID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	notesSQL, notesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(notesSQL, notesArgs...)
	if err != nil {
		classified := classifyStorageError(err, "erro ao listar notas")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.ClientID, &note.Content, &note.CreatedBy, &note.CreatedAt); err != nil {
			return nil, classifyStorageError(err, "erro ao processar nota")
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStorageError(err, "erro durante iteração de notas")
	}

	return notes, nil
}

func (r *noteRepository) Create(actorID int, note *domain.Note) (*domain.Note, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Insert(notesTable).
		Columns("client_id", "content", "created_by").
		Values(note.ClientID, note.Content, actorID).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	noteSQL, noteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(noteSQL, noteArgs...).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return nil, classifyStorageError(err, "erro ao criar nota")
	}

	note.CreatedBy = actorID
	return note, nil
}

func (r *noteRepository) Delete(actorID int, id string) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Delete(notesTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	noteSQL, noteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(noteSQL, noteArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao remover nota")
	}

	return nil
}
