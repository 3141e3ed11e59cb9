package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/godcrm-api/infrastructure/database/postgres"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

const tweetsTable = "tweets"

type TweetRepository interface {
	List(actorID int) ([]*domain.Tweet, error)
	GetByID(actorID int, id int) (*domain.Tweet, error)
	Create(actorID int, tweet *domain.Tweet) (*domain.Tweet, error)
	Update(actorID int, tweet *domain.Tweet) error
	SaveAnalysis(actorID int, id int, analysis string) error
	Delete(actorID int, id int) error
}

type tweetRepository struct {
	conn *postgres.Connection
}

func NewTweetRepository(conn *postgres.Connection) TweetRepository {
	return &tweetRepository{
		conn: conn,
	}
}

func (r *tweetRepository) List(actorID int) ([]*domain.Tweet, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select("id", "url", "tweet_id", "author", "is_competitor", "analysis", "created_by", "created_at").
		From(tweetsTable).
		Where(squirrel.Eq{"created_by": actorID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	tweetsSQL, tweetsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(tweetsSQL, tweetsArgs...)
	if err != nil {
		classified := classifyStorageError(err, "erro ao listar tweets")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}
	defer rows.Close()

	var tweets []*domain.Tweet
	for rows.Next() {
		var tweet domain.Tweet
		if err := rows.Scan(
			&tweet.ID,
			&tweet.URL,
			&tweet.TweetID,
			&tweet.Author,
			&tweet.IsCompetitor,
			&tweet.Analysis,
			&tweet.CreatedBy,
			&tweet.CreatedAt,
		); err != nil {
			return nil, classifyStorageError(err, "erro ao processar tweet")
		}
		tweets = append(tweets, &tweet)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStorageError(err, "erro durante iteração de tweets")
	}

	return tweets, nil
}

func (r *tweetRepository) GetByID(actorID int, id int) (*domain.Tweet, error) {
	if actorID == 0 {
		return nil, nil
	}

	queryBuilder := squirrel.
		Select("id", "url", "tweet_id", "author", "is_competitor", "analysis", "created_by", "created_at").
		From(tweetsTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	tweetSQL, tweetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var tweet domain.Tweet
	err = r.conn.QueryRow(tweetSQL, tweetArgs...).Scan(
		&tweet.ID,
		&tweet.URL,
		&tweet.TweetID,
		&tweet.Author,
		&tweet.IsCompetitor,
		&tweet.Analysis,
		&tweet.CreatedBy,
		&tweet.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		classified := classifyStorageError(err, "erro ao buscar tweet")
		if isPermissionDenied(classified) {
			return nil, nil
		}
		return nil, classified
	}

	return &tweet, nil
}

func (r *tweetRepository) Create(actorID int, tweet *domain.Tweet) (*domain.Tweet, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Insert(tweetsTable).
		Columns("url", "tweet_id", "author", "is_competitor", "created_by").
		Values(tweet.URL, tweet.TweetID, tweet.Author, tweet.IsCompetitor, actorID).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	tweetSQL, tweetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(tweetSQL, tweetArgs...).Scan(&tweet.ID, &tweet.CreatedAt)
	if err != nil {
		return nil, classifyStorageError(err, "erro ao criar tweet")
	}

	tweet.CreatedBy = actorID
	return tweet, nil
}

func (r *tweetRepository) Update(actorID int, tweet *domain.Tweet) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Update(tweetsTable).
		Set("url", tweet.URL).
		Set("tweet_id", tweet.TweetID).
		Set("author", tweet.Author).
		Set("is_competitor", tweet.IsCompetitor).
		Where(squirrel.Eq{"id": tweet.ID, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	tweetSQL, tweetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(tweetSQL, tweetArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao atualizar tweet")
	}

	return nil
}

// SaveAnalysis persiste o resultado da análise já serializado em JSON
func (r *tweetRepository) SaveAnalysis(actorID int, id int, analysis string) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Update(tweetsTable).
		Set("analysis", analysis).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	tweetSQL, tweetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(tweetSQL, tweetArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao salvar análise do tweet")
	}

	return nil
}

func (r *tweetRepository) Delete(actorID int, id int) error {
	if actorID == 0 {
		return ErrUnauthenticated
	}

	queryBuilder := squirrel.
		Delete(tweetsTable).
		Where(squirrel.Eq{"id": id, "created_by": actorID}).
		PlaceholderFormat(squirrel.Dollar)

	tweetSQL, tweetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(tweetSQL, tweetArgs...)
	if err != nil {
		return classifyStorageError(err, "erro ao remover tweet")
	}

	return nil
}
