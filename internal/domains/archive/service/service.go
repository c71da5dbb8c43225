package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/archive/model/dto"
	"hotelier/internal/domains/archive/repository"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"

	"github.com/rs/zerolog/log"
)

type Archive interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetArchivedBillsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	RevenueSince(ctx context.Context, since time.Time) (float64, error)
}

type serviceImpl struct {
	repo repository.Archive
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Archive, cfg *config.Config, otel otel.Otel) Archive {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetArchivedBillsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count archived bills")

		return res, fmt.Errorf("failed to count archived bills: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get archived bills")

		return res, fmt.Errorf("failed to get archived bills: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count archived bills")

		return res, fmt.Errorf("failed to count archived bills: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) RevenueSince(ctx context.Context, since time.Time) (res float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevenueSince")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.RevenueSince(ctx, since)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum archived revenue")

		return res, fmt.Errorf("failed to sum archived revenue: %w", err)
	}

	return res, nil
}
