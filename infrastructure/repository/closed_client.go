package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/godcrm-api/infrastructure/database/postgres"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

const closedClientsTable = "closedclients"

// O esquema da tabela closedclients usa colunas todas em minúsculas enquanto
// o modelo em memória usa camelCase. Esta é a única tabela de tradução entre
// os dois mundos: toda leitura e toda escrita passa por estas constantes.
// Não duplique os nomes de coluna em mais nenhum lugar.
const (
	colVideosPerMonth = "videospermonth"
	colChargePerVideo = "chargepervideo"
	colMonthlyRevenue = "monthlyrevenue"
)

type ClosedClientRepository interface {
	List(actorID int) ([]*domain.ClosedClient, error)
	GetByID(actorID int, id string) (*domain.ClosedClient, error)
	Create(actorID int, client *domain.ClosedClient) (*domain.ClosedClient, error)
	Update(actorID int, client *domain.ClosedClient) error
	Delete(actorID int, id string) error
	ListWithoutInvoiceForMonth(month string) ([]*domain.ClosedClient, error)
}

type closedClientRepository struct {
	conn *postgres.Connection
}

func NewClosedClientRepository(conn *postgres.Connection) ClosedClientRepository {
	return &closedClientRepository{
		conn: conn,
	}
}

func (r *closedClientRepository) List(actorID int) ([]*domain.ClosedClient, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select("id", "name", colVideosPerMonth, colChargePerVideo, colMonthlyRevenue, "created_by", "created_at").
		From(closedClientsTable).
		Where(squirrel.Eq{"created_by": actorID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	clientsSQL, clientsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientsSQL, clientsArgs...)
	if err != nil {
		classified := classifyStorageError(err, "erro ao listar clientes fechados")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}
	defer rows.Close()

	var clients []*domain.ClosedClient
	for rows.Next() {
		var client domain.ClosedClient
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.VideosPerMonth,
			&client.ChargePerVideo,
			&client.MonthlyRevenue,
			&client.CreatedBy,
			&client.CreatedAt,
		); err != nil {
			return nil, classifyStorageError(err, "erro ao processar cliente fechado")
		}
		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStorageError(err, "erro durante iteração de clientes fechados")
	}

	return clients, nil
}

func (r *closedClientRepository) GetByID(actorID int, id string) (*domain.ClosedClient, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select("id", "name", colVideosPerMonth, colChargePerVideo, colMonthlyRevenue, "created_by", "created_at").
		From(closedClientsTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var client domain.ClosedClient
	err = r.conn.QueryRow(clientSQL, clientArgs...).Scan(
		&client.ID,
		&client.Name,
		&client.VideosPerMonth,
		&client.ChargePerVideo,
		&client.MonthlyRevenue,
		&client.CreatedBy,
		&client.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		classified := classifyStorageError(err, "erro ao buscar cliente fechado")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}

	return &client, nil
}

func (r *closedClientRepository) Create(actorID int, client *domain.ClosedClient) (*domain.ClosedClient, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Insert(closedClientsTable).
		Columns("name", colVideosPerMonth, colChargePerVideo, colMonthlyRevenue, "created_by").
		Values(client.Name, client.VideosPerMonth, client.ChargePerVideo, client.MonthlyRevenue, actorID).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(clientSQL, clientArgs...).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		return nil, classifyStorageError(err, "erro ao criar cliente fechado")
	}

	client.CreatedBy = actorID
	return client, nil
}

func (r *closedClientRepository) Update(actorID int, client *domain.ClosedClient) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Update(closedClientsTable).
		Set("name", client.Name).
		Set(colVideosPerMonth, client.VideosPerMonth).
		Set(colChargePerVideo, client.ChargePerVideo).
		Set(colMonthlyRevenue, client.MonthlyRevenue).
		Where(squirrel.Eq{"id": client.ID, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(clientSQL, clientArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao atualizar cliente fechado")
	}

	return nil
}

func (r *closedClientRepository) Delete(actorID int, id string) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Delete(closedClientsTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	// Faturas são removidas em cascata pelo esquema, não pela aplicação
	_, err = r.conn.Exec(clientSQL, clientArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao remover cliente fechado")
	}

	return nil
}

// ListWithoutInvoiceForMonth retorna os clientes fechados, de todos os
// usuários, que ainda não possuem fatura no mês informado (YYYY-MM).
// Usado apenas pelo agendador de lembretes de fatura.
func (r *closedClientRepository) ListWithoutInvoiceForMonth(month string) ([]*domain.ClosedClient, error) {
	queryBuilder := squirrel.
		Select(
			"c.id", "c.name",
			"c."+colVideosPerMonth, "c."+colChargePerVideo, "c."+colMonthlyRevenue,
			"c.created_by", "c.created_at",
		).
		From(closedClientsTable+" c").
		LeftJoin(invoicesTable+" i ON i.closed_client_id = c.id AND i.month = ?", month).
		Where("i.id IS NULL").
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	clientsSQL, clientsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientsSQL, clientsArgs...)
	if err != nil {
		return nil, classifyStorageError(err, "erro ao listar clientes fechados sem fatura")
	}
	defer rows.Close()

	var clients []*domain.ClosedClient
	for rows.Next() {
		var client domain.ClosedClient
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.VideosPerMonth,
			&client.ChargePerVideo,
			&client.MonthlyRevenue,
			&client.CreatedBy,
			&client.CreatedAt,
		); err != nil {
			return nil, classifyStorageError(err, "erro ao processar cliente fechado")
		}
		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStorageError(err, "erro durante iteração de clientes fechados")
	}

	return clients, nil
}
