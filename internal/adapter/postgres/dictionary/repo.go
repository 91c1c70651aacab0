// Package dictionary stores named word lists in PostgreSQL.
// Words keep their file order through the position column.
package dictionary

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordfinder/internal/adapter/postgres"
	"github.com/heartmarshall/wordfinder/internal/domain"
)

const (
	dictionariesTable = "dictionaries"
	wordsTable        = "dictionary_words"
)

const insertWordSQL = `INSERT INTO dictionary_words (dictionary_id, position, word) VALUES ($1, $2, $3)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var dictionaryColumns = []string{"id", "name", "source", "word_count", "imported_at"}

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new dictionary repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// GetByName returns the dictionary metadata for name.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.DictionaryInfo, error) {
	query, args, err := psql.
		Select(dictionaryColumns...).
		From(dictionariesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return domain.DictionaryInfo{}, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	info, err := scanInfo(q.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.DictionaryInfo{}, postgres.MapError(err, "dictionary", name)
	}
	return info, nil
}

// List returns all stored dictionaries ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.DictionaryInfo, error) {
	query, args, err := psql.
		Select(dictionaryColumns...).
		From(dictionariesTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "dictionary", "*")
	}
	defer rows.Close()

	var out []domain.DictionaryInfo
	for rows.Next() {
		info, err := scanInfo(rows)
		if err != nil {
			return nil, postgres.MapError(err, "dictionary", "*")
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "dictionary", "*")
	}
	return out, nil
}

// Words returns the words of dictionary name in stored order.
// An unknown name yields an error wrapping domain.ErrNotFound; a known but
// empty dictionary yields an empty slice.
func (r *Repo) Words(ctx context.Context, name string) (domain.Dictionary, error) {
	info, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Select("word").
		From(wordsTable).
		Where(sq.Eq{"dictionary_id": info.ID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "dictionary_words", name)
	}

	words, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "dictionary_words", name)
	}

	out := make(domain.Dictionary, 0, len(words))
	return append(out, words...), nil
}

// Replace stores words as dictionary name, dropping any previous dictionary
// of the same name. Everything happens in one transaction; words are sent in
// pgx batches of batchSize rows.
func (r *Repo) Replace(ctx context.Context, name, source string, words []string, batchSize int) (domain.DictionaryInfo, error) {
	if batchSize < 1 {
		batchSize = 1
	}

	info := domain.DictionaryInfo{
		ID:         uuid.New(),
		Name:       name,
		Source:     source,
		WordCount:  len(words),
		ImportedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		q := postgres.QuerierFromCtx(txCtx, r.pool)

		if _, err := r.deleteByName(txCtx, q, name); err != nil {
			return err
		}

		insert, args, err := psql.
			Insert(dictionariesTable).
			Columns(dictionaryColumns...).
			Values(info.ID, info.Name, info.Source, info.WordCount, info.ImportedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := q.Exec(txCtx, insert, args...); err != nil {
			return postgres.MapError(err, "dictionary", name)
		}

		for start := 0; start < len(words); start += batchSize {
			end := min(start+batchSize, len(words))

			batch := &pgx.Batch{}
			for i := start; i < end; i++ {
				batch.Queue(insertWordSQL, info.ID, i, words[i])
			}
			if err := sendBatchExec(txCtx, q, batch); err != nil {
				return postgres.MapError(err, "dictionary_words", name)
			}
		}

		return nil
	})
	if err != nil {
		return domain.DictionaryInfo{}, err
	}

	return info, nil
}

// Delete removes dictionary name and its words.
// Deleting an unknown name yields an error wrapping domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, name string) error {
	n, err := r.deleteByName(ctx, postgres.QuerierFromCtx(ctx, r.pool), name)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("dictionary %s: %w", name, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) deleteByName(ctx context.Context, q postgres.Querier, name string) (int64, error) {
	query, args, err := psql.Delete(dictionariesTable).Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "dictionary", name)
	}
	return tag.RowsAffected(), nil
}

func sendBatchExec(ctx context.Context, q postgres.Querier, batch *pgx.Batch) error {
	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch exec %d: %w", i, err)
		}
	}
	return nil
}

func scanInfo(row pgx.Row) (domain.DictionaryInfo, error) {
	var info domain.DictionaryInfo
	err := row.Scan(&info.ID, &info.Name, &info.Source, &info.WordCount, &info.ImportedAt)
	return info, err
}

// Source serves one stored dictionary to the word finder.
type Source struct {
	repo *Repo
	name string
}

// NewSource creates a Source reading dictionary name from repo.
func NewSource(repo *Repo, name string) *Source {
	return &Source{repo: repo, name: name}
}

// Words loads the dictionary.
func (s *Source) Words(ctx context.Context) (domain.Dictionary, error) {
	return s.repo.Words(ctx, s.name)
}

// String describes the source for startup messages.
func (s *Source) String() string {
	return "postgres:" + s.name
}
