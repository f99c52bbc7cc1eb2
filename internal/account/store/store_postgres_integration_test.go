//go:build integration

package store_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kith-app/kith/internal/account/store"
	"github.com/kith-app/kith/pkg/domain"
	"github.com/kith-app/kith/pkg/testutil/containers"
)

type PostgresPurgeSuite struct {
	suite.Suite

	db    *sql.DB
	store *store.PostgresStore
}

func TestPostgresPurgeSuite(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	s := &PostgresPurgeSuite{db: pg.DB, store: store.NewPostgres(pg.DB)}
	suite.Run(t, s)
}

func (s *PostgresPurgeSuite) seedUser(n int) domain.UserID {
	ctx := context.Background()
	userID := domain.NewUserID()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_profiles (user_id) VALUES ($1)`, userID.String())
	s.Require().NoError(err)

	for i := 0; i < n; i++ {
		contactID := uuid.New()
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO contacts (id, user_id, name) VALUES ($1, $2, $3)`,
			contactID, userID.String(), "contact")
		s.Require().NoError(err)
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO reminders (id, user_id, contact_id, due_at) VALUES ($1, $2, $3, now())`,
			uuid.New(), userID.String(), contactID)
		s.Require().NoError(err)
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO scheduled_messages (id, user_id, contact_id, send_at, body) VALUES ($1, $2, $3, now(), 'hi')`,
			uuid.New(), userID.String(), contactID)
		s.Require().NoError(err)
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO stored_files (id, user_id, path) VALUES ($1, $2, $3)`,
			uuid.New(), userID.String(), "files/photo.jpg")
		s.Require().NoError(err)
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO analytics_events (user_id, event_name) VALUES ($1, $2)`,
			userID.String(), "app_open")
		s.Require().NoError(err)
	}
	return userID
}

func (s *PostgresPurgeSuite) countAll(userID domain.UserID) int64 {
	ctx := context.Background()
	tables := make([]string, 0, len(store.OwnedTables)+1)
	tables = append(tables, store.OwnedTables...)
	tables = append(tables, store.ProfileTable)

	var total int64
	for _, table := range tables {
		var n int64
		err := s.db.QueryRowContext(ctx,
			`SELECT count(*) FROM `+table+` WHERE user_id = $1`, userID.String()).Scan(&n)
		s.Require().NoError(err)
		total += n
	}
	return total
}

func (s *PostgresPurgeSuite) TestPurge_RemovesEveryOwnedRow() {
	ctx := context.Background()
	userID := s.seedUser(3)
	other := s.seedUser(2)

	result, err := s.store.PurgeUserData(ctx, userID)
	s.Require().NoError(err)

	s.EqualValues(3, result.RowsDeleted["contacts"])
	s.EqualValues(3, result.RowsDeleted["reminders"])
	s.EqualValues(3, result.RowsDeleted["scheduled_messages"])
	s.EqualValues(3, result.RowsDeleted["stored_files"])
	s.EqualValues(3, result.RowsDeleted["analytics_events"])
	s.EqualValues(1, result.RowsDeleted[store.ProfileTable])

	s.Zero(s.countAll(userID))
	s.EqualValues(2*5+1, s.countAll(other), "other users' rows survive")
}

func (s *PostgresPurgeSuite) TestPurge_UnknownUserIsSuccess() {
	result, err := s.store.PurgeUserData(context.Background(), domain.NewUserID())
	s.Require().NoError(err)
	s.Zero(result.Total())
}

func (s *PostgresPurgeSuite) TestPurge_Idempotent() {
	ctx := context.Background()
	userID := s.seedUser(2)

	first, err := s.store.PurgeUserData(ctx, userID)
	s.Require().NoError(err)
	s.NotZero(first.Total())

	second, err := s.store.PurgeUserData(ctx, userID)
	s.Require().NoError(err)
	s.Zero(second.Total())
}

func (s *PostgresPurgeSuite) TestPurge_ProfileOnly() {
	ctx := context.Background()
	userID := s.seedUser(0)

	result, err := s.store.PurgeUserData(ctx, userID)
	require.NoError(s.T(), err)
	s.EqualValues(1, result.Total())
	s.Zero(s.countAll(userID))
}
