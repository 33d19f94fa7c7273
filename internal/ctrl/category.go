package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/dto"
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
)

type categoryCtrl interface {
	ListCategories(ctx context.Context) ([]*md.Category, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) error
}

type categoryRepo interface {
	ListCategories(ctx context.Context) ([]*md.Category, error)
	CreateCategory(ctx context.Context, name string) error
}

const categoriesListKey = "categories-list"

func (c *Controller) ListCategories(ctx context.Context) ([]*md.Category, error) {
	const op = "categories.ListCategories.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var cached []*md.Category
	if err := c.cache.GetToStruct(ctx, categoriesListKey, &cached); err == nil {
		return cached, nil
	}

	seen := c.categoriesGen.Load()
	res, err := c.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.setIfCurrent(ctx, &c.categoriesGen, seen, config.DefaultCacheTime, categoriesListKey, bytes)
	}

	return res, nil
}

func (c *Controller) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) error {
	const op = "categories.CreateCategory.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.CreateCategory(ctx, req.Name); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return ErrAlreadyExists
		}
		return err
	}

	c.categoriesGen.Add(1)
	c.cache.Delete(ctx, categoriesListKey)
	return nil
}
