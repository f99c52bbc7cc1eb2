package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kith-app/kith/pkg/domain"
)

// PostgresStore runs the cascading delete inside a single transaction.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed purge store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// PurgeUserData deletes every owned child record and then the profile row
// for userID within one transaction.
//
// The profile row is locked first so the purge serializes against any
// concurrent write to the same user's data: a create racing the delete
// either commits before the lock is taken (and is then deleted) or blocks
// until the purge commits and fails its foreign key check.
func (s *PostgresStore) PurgeUserData(ctx context.Context, userID domain.UserID) (PurgeResult, error) {
	result := PurgeResult{RowsDeleted: make(map[string]int64, len(OwnedTables)+1)}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return PurgeResult{}, fmt.Errorf("begin purge transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var locked uuid.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT user_id FROM user_profiles WHERE user_id = $1 FOR UPDATE`,
		uuid.UUID(userID),
	).Scan(&locked)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return PurgeResult{}, fmt.Errorf("lock profile row: %w", err)
	}
	// sql.ErrNoRows means the profile is already gone; the deletes below
	// will each affect zero rows and the call succeeds as a no-op.

	for _, table := range OwnedTables {
		res, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, table),
			uuid.UUID(userID),
		)
		if err != nil {
			return PurgeResult{}, fmt.Errorf("delete from %s: %w", table, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return PurgeResult{}, fmt.Errorf("delete from %s: %w", table, err)
		}
		result.RowsDeleted[table] = affected
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM user_profiles WHERE user_id = $1`,
		uuid.UUID(userID),
	)
	if err != nil {
		return PurgeResult{}, fmt.Errorf("delete from %s: %w", ProfileTable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return PurgeResult{}, fmt.Errorf("delete from %s: %w", ProfileTable, err)
	}
	result.RowsDeleted[ProfileTable] = affected

	if err := tx.Commit(); err != nil {
		return PurgeResult{}, fmt.Errorf("commit purge transaction: %w", err)
	}
	return result, nil
}
