package db

import (
	"context"

	"github.com/JMURv/go-attractions/internal/config"
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) ListCategories(ctx context.Context) ([]*md.Category, error) {
	const op = "categories.ListCategories.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Category, 0)
	if err := r.conn.SelectContext(ctx, &res, categoryListQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list categories", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateCategory(ctx context.Context, name string) error {
	const op = "categories.CreateCategory.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, categoryCreateQ, name); err != nil {
		if pgErrCode(err) == uniqueViolation {
			return repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create category", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}
