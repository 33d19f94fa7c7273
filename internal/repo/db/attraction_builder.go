package db

import (
	"context"
	"strings"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/dto"
	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func buildAttractionListQuery(ctx context.Context, filters *dto.AttractionFilters) (string, []any, error) {
	const op = "attractions.buildAttractionListQuery.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select(
		"a.id",
		"a.name",
		"a.description",
		"COALESCE(a.image, '') AS image",
		"a.rating::float8 AS rating",
		"a.reviews",
		"c.name AS category",
		"a.latitude",
		"a.longitude",
	).
		From("attractions a").
		Join("categories c ON c.id = a.category_id").
		OrderBy("a.name").
		PlaceholderFormat(sq.Dollar)

	if filters != nil {
		if filters.Category != "" {
			query = query.Where(sq.Eq{"c.name": filters.Category})
		}

		if q := strings.TrimSpace(filters.Query); q != "" {
			pattern := "%" + q + "%"
			query = query.Where(
				sq.Or{
					sq.ILike{"a.name": pattern},
					sq.ILike{"a.description": pattern},
				},
			)
		}
	}

	q, args, err := query.ToSql()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build list query", zap.String("op", op), zap.Error(err))
		return "", nil, err
	}

	return q, args, nil
}
