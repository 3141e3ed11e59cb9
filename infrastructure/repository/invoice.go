package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/godcrm-api/infrastructure/database/postgres"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

const invoicesTable = "invoices"

type InvoiceRepository interface {
	ListByClosedClient(actorID int, closedClientID string) ([]*domain.Invoice, error)
	GetByID(actorID int, id string) (*domain.Invoice, error)
	Create(actorID int, invoice *domain.Invoice) (*domain.Invoice, error)
	UpdateStatus(actorID int, id string, status string) error
	Delete(actorID int, id string) error
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) ListByClosedClient(actorID int, closedClientID string) ([]*domain.Invoice, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select("id", "closed_client_id", "number", "amount", "description", "video_count",
			"status", "file_url", "file_name", "month", "created_by", "created_at").
		From(invoicesTable).
		Where(squirrel.Eq{"closed_client_id": closedClientID, "created_by": actorID}).
		OrderBy("month DESC, created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	invoicesSQL, invoicesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(invoicesSQL, invoicesArgs...)
	if err != nil {
		classified := classifyStorageError(err, "erro ao listar faturas")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		if err := rows.Scan(
			&invoice.ID,
			&invoice.ClosedClientID,
			&invoice.Number,
			&invoice.Amount,
			&invoice.Description,
			&invoice.VideoCount,
			&invoice.Status,
			&invoice.FileURL,
			&invoice.FileName,
			&invoice.Month,
			&invoice.CreatedBy,
			&invoice.CreatedAt,
		); err != nil {
			return nil, classifyStorageError(err, "erro ao processar fatura")
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStorageError(err, "erro durante iteração de faturas")
	}

	return invoices, nil
}

func (r *invoiceRepository) GetByID(actorID int, id string) (*domain.Invoice, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select("id", "closed_client_id", "number", "amount", "description", "video_count",
			"status", "file_url", "file_name", "month", "created_by", "created_at").
		From(invoicesTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	invoiceSQL, invoiceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var invoice domain.Invoice
	err = r.conn.QueryRow(invoiceSQL, invoiceArgs...).Scan(
		&invoice.ID,
		&invoice.ClosedClientID,
		&invoice.Number,
		&invoice.Amount,
		&invoice.Description,
		&invoice.VideoCount,
		&invoice.Status,
		&invoice.FileURL,
		&invoice.FileName,
		&invoice.Month,
		&invoice.CreatedBy,
		&invoice.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		classified := classifyStorageError(err, "erro ao buscar fatura")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}

	return &invoice, nil
}

func (r *invoiceRepository) Create(actorID int, invoice *domain.Invoice) (*domain.Invoice, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Insert(invoicesTable).
		Columns("closed_client_id", "number", "amount", "description", "video_count",
			"status", "file_url", "file_name", "month", "created_by").
		Values(invoice.ClosedClientID, invoice.Number, invoice.Amount, invoice.Description,
			invoice.VideoCount, invoice.Status, invoice.FileURL, invoice.FileName,
			invoice.Month, actorID).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	invoiceSQL, invoiceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(invoiceSQL, invoiceArgs...).Scan(&invoice.ID, &invoice.CreatedAt)
	if err != nil {
		return nil, classifyStorageError(err, "erro ao criar fatura")
	}

	invoice.CreatedBy = actorID
	return invoice, nil
}

func (r *invoiceRepository) UpdateStatus(actorID int, id string, status string) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Update(invoicesTable).
		Set("status", status).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	invoiceSQL, invoiceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(invoiceSQL, invoiceArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao atualizar status da fatura")
	}

	return nil
}

func (r *invoiceRepository) Delete(actorID int, id string) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Delete(invoicesTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	invoiceSQL, invoiceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(invoiceSQL, invoiceArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao remover fatura")
	}

	return nil
}
