package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/godcrm-api/infrastructure/database/postgres"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

const clientsTable = "clients"

var clientColumns = []string{
	"id", "name", "email", "company", "contact",
	"youtube_link", "instagram_link", "tiktok_link", "twitter_link", "linkedin_link",
	"subscribers", "outreach_type", "outreach_platform", "outreach_date", "outreach_notes",
	"link_sent", "lead_temperature", "replied",
	"follow_up_status", "follow_up_count", "next_follow_up_at", "follow_up_platforms",
	"tags", "notes", "status", "created_by", "created_at", "updated_at",
}

type ClientRepository interface {
	List(actorID int) ([]*domain.Client, error)
	GetByID(actorID int, id string) (*domain.Client, error)
	Create(actorID int, client *domain.Client) (*domain.Client, error)
	Update(actorID int, client *domain.Client) error
	Delete(actorID int, id string) error
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

// List retorna os clientes do usuário autenticado. Sem sessão válida a
// listagem degrada para vazio, para que a tela renderize o estado vazio
// em vez de quebrar.
func (r *clientRepository) List(actorID int) ([]*domain.Client, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"created_by": actorID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	clientsSQL, clientsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientsSQL, clientsArgs...)
	if err != nil {
		classified := classifyStorageError(err, "erro ao listar clientes")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, classifyStorageError(err, "erro ao processar cliente")
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStorageError(err, "erro durante iteração de clientes")
	}

	return clients, nil
}

func (r *clientRepository) GetByID(actorID int, id string) (*domain.Client, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientSQL, clientArgs...)
	if err != nil {
		classified := classifyStorageError(err, "erro ao buscar cliente")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	client, err := scanClient(rows)
	if err != nil {
		return nil, classifyStorageError(err, "erro ao processar cliente")
	}

	return client, nil
}

func (r *clientRepository) Create(actorID int, client *domain.Client) (*domain.Client, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Insert(clientsTable).
		Columns(
			"name", "email", "company", "contact",
			"youtube_link", "instagram_link", "tiktok_link", "twitter_link", "linkedin_link",
			"subscribers", "outreach_type", "outreach_platform", "outreach_date", "outreach_notes",
			"link_sent", "lead_temperature", "replied",
			"follow_up_status", "follow_up_count", "next_follow_up_at", "follow_up_platforms",
			"tags", "notes", "status", "created_by",
		).
		Values(
			client.Name, client.Email, client.Company, client.Contact,
			client.YoutubeLink, client.InstagramLink, client.TiktokLink, client.TwitterLink, client.LinkedinLink,
			client.Subscribers, client.OutreachType, client.OutreachPlatform, client.OutreachDate, client.OutreachNotes,
			client.LinkSent, client.LeadTemperature, client.Replied,
			client.FollowUpStatus, client.FollowUpCount, client.NextFollowUpAt, client.FollowUpPlatforms,
			client.Tags, client.Notes, client.Status, actorID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(clientSQL, clientArgs...).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return nil, classifyStorageError(err, "erro ao criar cliente")
	}

	client.CreatedBy = actorID
	return client, nil
}

func (r *clientRepository) Update(actorID int, client *domain.Client) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Update(clientsTable).
		Set("name", client.Name).
		Set("email", client.Email).
		Set("company", client.Company).
		Set("contact", client.Contact).
		Set("youtube_link", client.YoutubeLink).
		Set("instagram_link", client.InstagramLink).
		Set("tiktok_link", client.TiktokLink).
		Set("twitter_link", client.TwitterLink).
		Set("linkedin_link", client.LinkedinLink).
		Set("subscribers", client.Subscribers).
		Set("outreach_type", client.OutreachType).
		Set("outreach_platform", client.OutreachPlatform).
		Set("outreach_date", client.OutreachDate).
		Set("outreach_notes", client.OutreachNotes).
		Set("link_sent", client.LinkSent).
		Set("lead_temperature", client.LeadTemperature).
		Set("replied", client.Replied).
		Set("follow_up_status", client.FollowUpStatus).
		Set("follow_up_count", client.FollowUpCount).
		Set("next_follow_up_at", client.NextFollowUpAt).
		Set("follow_up_platforms", client.FollowUpPlatforms).
		Set("tags", client.Tags).
		Set("notes", client.Notes).
		Set("status", client.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": client.ID, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(clientSQL, clientArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao atualizar cliente")
	}

	return nil
}

func (r *clientRepository) Delete(actorID int, id string) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Delete(clientsTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	// Notas, assets e registros de edição são removidos em cascata pelo
	// esquema (ON DELETE CASCADE), não pela aplicação.
	_, err = r.conn.Exec(clientSQL, clientArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao remover cliente")
	}

	return nil
}

func scanClient(rows *sql.Rows) (*domain.Client, error) {
	var client domain.Client
	err := rows.Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Company,
		&client.Contact,
		&client.YoutubeLink,
		&client.InstagramLink,
		&client.TiktokLink,
		&client.TwitterLink,
		&client.LinkedinLink,
		&client.Subscribers,
		&client.OutreachType,
		&client.OutreachPlatform,
		&client.OutreachDate,
		&client.OutreachNotes,
		&client.LinkSent,
		&client.LeadTemperature,
		&client.Replied,
		&client.FollowUpStatus,
		&client.FollowUpCount,
		&client.NextFollowUpAt,
		&client.FollowUpPlatforms,
		&client.Tags,
		&client.Notes,
		&client.Status,
		&client.CreatedBy,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}
