package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kith-app/kith/pkg/domain"
)

// PostgresStore persists identities in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed identity store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, ident *Identity) error {
	const q = `
		INSERT INTO identities (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
		    password_hash = EXCLUDED.password_hash,
		    updated_at = EXCLUDED.updated_at`
	_, err := s.db.ExecContext(ctx, q,
		uuid.UUID(ident.ID), ident.Email, ident.PasswordHash, ident.CreatedAt, ident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save identity: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.UserID) (*Identity, error) {
	const q = `
		SELECT id, email, password_hash, created_at, updated_at
		FROM identities WHERE id = $1`
	var ident Identity
	var rawID uuid.UUID
	err := s.db.QueryRowContext(ctx, q, uuid.UUID(id)).Scan(
		&rawID, &ident.Email, &ident.PasswordHash, &ident.CreatedAt, &ident.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find identity: %w", err)
	}
	ident.ID = domain.UserID(rawID)
	return &ident, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id domain.UserID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM identities WHERE id = $1`, uuid.UUID(id))
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
