package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/godcrm-api/infrastructure/database/postgres"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

const assetsTable = "assets"

type AssetRepository interface {
	ListByClient(actorID int, clientID string) ([]*domain.Asset, error)
	Create(actorID int, asset *domain.Asset) (*domain.Asset, error)
	Delete(actorID int, id string) error
}

type assetRepository struct {
	conn *postgres.Connection
}

func NewAssetRepository(conn *postgres.Connection) AssetRepository {
	return &assetRepository{
		conn: conn,
	}
}

func (r *assetRepository) ListByClient(actorID int, clientID string) ([]*domain.Asset, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select("id", "client_id", "file_url", "file_name", "created_by", "created_at").
		From(assetsTable).
		Where(squirrel.Eq{"client_id": clientID, "created_by": actorID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	assetsSQL, assetsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(assetsSQL, assetsArgs...)
	if err != nil {
		classified := classifyStorageError(err, "erro ao listar assets")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		var asset domain.Asset
		if err := rows.Scan(&asset.ID, &asset.ClientID, &asset.FileURL, &asset.FileName, &asset.CreatedBy, &asset.CreatedAt); err != nil {
			return nil, classifyStorageError(err, "erro ao processar asset")
		}
		assets = append(assets, &asset)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStorageError(err, "erro durante iteração de assets")
	}

	return assets, nil
}

func (r *assetRepository) Create(actorID int, asset *domain.Asset) (*domain.Asset, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Insert(assetsTable).
		Columns("client_id", "file_url", "file_name", "created_by").
		Values(asset.ClientID, asset.FileURL, asset.FileName, actorID).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	assetSQL, assetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(assetSQL, assetArgs...).Scan(&asset.ID, &asset.CreatedAt)
	if err != nil {
		return nil, classifyStorageError(err, "erro ao criar asset")
	}

	asset.CreatedBy = actorID
	return asset, nil
}

func (r *assetRepository) Delete(actorID int, id string) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Delete(assetsTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	assetSQL, assetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(assetSQL, assetArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao remover asset")
	}

	return nil
}
