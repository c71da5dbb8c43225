package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/infras/otel/mocks"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/archive/repository"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, repository.Archive, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	repo := repository.New(conn, mocks.NewOtel())

	return mock, repo, func() { db.Close() }
}

func TestArchiveRepository_RevenueSince(t *testing.T) {
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("sums totals completed at or after the cutoff", func(t *testing.T) {
		mock, repo, cleanup := setupMockDB(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"coalesce"}).AddRow(1234.56)

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM archived_bills WHERE completed_at >= \$1`).
			WithArgs(since).
			WillReturnRows(rows)

		revenue, err := repo.RevenueSince(context.Background(), since)

		require.NoError(t, err)
		assert.Equal(t, 1234.56, revenue)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no archived bills yields zero", func(t *testing.T) {
		mock, repo, cleanup := setupMockDB(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"coalesce"}).AddRow(float64(0))

		mock.ExpectQuery(`SELECT COALESCE`).
			WithArgs(since).
			WillReturnRows(rows)

		revenue, err := repo.RevenueSince(context.Background(), since)

		require.NoError(t, err)
		assert.Equal(t, float64(0), revenue)
	})

	t.Run("query failure", func(t *testing.T) {
		mock, repo, cleanup := setupMockDB(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COALESCE`).
			WithArgs(since).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.RevenueSince(context.Background(), since)

		assert.Error(t, err)
	})
}
