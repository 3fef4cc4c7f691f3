package store

import (
	"context"
	"errors"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createShortLinksTable = `
	CREATE TABLE IF NOT EXISTS short_links (
		code         TEXT PRIMARY KEY,
		original_url TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// PostgresStore is a PostgreSQL implementation of shortlink.Repository.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed short link store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the short_links table if it is missing.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, createShortLinksTable)

	return err
}

func (p *PostgresStore) Save(ctx context.Context, link *shortlink.ShortLink) error {
	query := `
		INSERT INTO short_links (code, original_url, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO NOTHING
	`

	tag, err := p.pool.Exec(ctx, query,
		string(link.Code),
		link.OriginalURL,
		link.CreatedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortlink.ErrCodeConflict
	}

	return nil
}

func (p *PostgresStore) GetByCode(ctx context.Context, code shortlink.Code) (*shortlink.ShortLink, error) {
	query := `
		SELECT code, original_url, created_at
		FROM short_links
		WHERE code = $1
	`

	var link shortlink.ShortLink

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(
		&link.Code,
		&link.OriginalURL,
		&link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortlink.ErrNotFound
		}

		return nil, err
	}

	return &link, nil
}

// Ping checks database connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

var _ shortlink.Repository = (*PostgresStore)(nil)
