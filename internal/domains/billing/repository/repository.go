package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/billing/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Bill interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bill, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Bill) error
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Bill, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type Item interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BillItem, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.BillItem) error
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]model.BillItem, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type billRepositoryImpl struct {
	gRepo.Repository[model.Bill]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBill(db *postgres.Connection, otel otel.Otel) Bill {
	return &billRepositoryImpl{
		Repository: gRepo.NewRepository[model.Bill](model.BillEntityName, model.BillTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type itemRepositoryImpl struct {
	gRepo.Repository[model.BillItem]
	db   *postgres.Connection
	otel otel.Otel
}

func NewItem(db *postgres.Connection, otel otel.Otel) Item {
	return &itemRepositoryImpl{
		Repository: gRepo.NewRepository[model.BillItem](model.ItemEntityName, model.ItemTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
