package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/dto"
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) ListAttractions(ctx context.Context, filters *dto.AttractionFilters) ([]*md.Attraction, error) {
	const op = "attractions.ListAttractions.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := buildAttractionListQuery(ctx, filters)
	if err != nil {
		return nil, err
	}

	res := make([]*md.Attraction, 0)
	if err = r.conn.SelectContext(ctx, &res, q, args...); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list attractions", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateAttraction(ctx context.Context, req *dto.CreateAttractionRequest) (uuid.UUID, error) {
	const op = "attractions.CreateAttraction.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		attractionCreateQ,
		req.Name,
		req.Description,
		req.Image,
		*req.Latitude,
		*req.Longitude,
		req.Category,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create attraction", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) DeleteAttractions(ctx context.Context, ids []uuid.UUID) error {
	const op = "attractions.DeleteAttractions.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := sqlx.In(attractionDeleteQ, ids)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to expand ids", zap.String("op", op), zap.Error(err))
		return err
	}

	if _, err = r.conn.ExecContext(ctx, r.conn.Rebind(q), args...); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete attractions", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}
