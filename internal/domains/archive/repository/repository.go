package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/archive/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Archive interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ArchivedBill, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.ArchivedBill) error
	RevenueSince(ctx context.Context, since time.Time) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ArchivedBill]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Archive {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ArchivedBill](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// RevenueSince sums archived bill totals completed at or after the given time.
func (repo *repositoryImpl) RevenueSince(ctx context.Context, since time.Time) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".archived_bill.RevenueSince")
	defer scope.End()

	query := fmt.Sprintf("SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s >= $1", model.FieldTotal, model.TableName, model.FieldCompletedAt)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var revenue float64

	err := repo.db.Read.GetContext(ctx, &revenue, query, since)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum archived bill totals: %w", err)
	}

	return revenue, nil
}
