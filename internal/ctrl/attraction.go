package ctrl

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/dto"
	"github.com/JMURv/go-attractions/internal/geo"
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/JMURv/go-attractions/internal/repo/s3"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/opentracing/opentracing-go"
)

type attractionCtrl interface {
	ListAttractions(ctx context.Context, filters *dto.AttractionFilters) ([]*dto.AttractionResponse, error)
	CreateAttraction(ctx context.Context, req *dto.CreateAttractionRequest) (*dto.CreateAttractionResponse, error)
	DeleteAttractions(ctx context.Context, ids []uuid.UUID) error
	UploadAttractionImage(ctx context.Context, name string, file *s3.UploadFileRequest) (string, error)
}

type attractionRepo interface {
	ListAttractions(ctx context.Context, filters *dto.AttractionFilters) ([]*md.Attraction, error)
	CreateAttraction(ctx context.Context, req *dto.CreateAttractionRequest) (uuid.UUID, error)
	DeleteAttractions(ctx context.Context, ids []uuid.UUID) error
}

const (
	attractionsListKey = "attractions-list:%v:%v"
	attractionsPattern = "attractions-*"
	attractionImageKey = "attractions/%v-%v%v"
)

func (c *Controller) ListAttractions(
	ctx context.Context,
	filters *dto.AttractionFilters,
) ([]*dto.AttractionResponse, error) {
	const op = "attractions.ListAttractions.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if filters == nil {
		filters = &dto.AttractionFilters{}
	}

	var list []*md.Attraction
	cacheKey := fmt.Sprintf(attractionsListKey, filters.Category, strings.ToLower(strings.TrimSpace(filters.Query)))
	if err := c.cache.GetToStruct(ctx, cacheKey, &list); err != nil {
		seen := c.attractionsGen.Load()
		list, err = c.repo.ListAttractions(ctx, filters)
		if err != nil {
			return nil, err
		}

		bytes, err := json.Marshal(list)
		if err == nil {
			c.setIfCurrent(ctx, &c.attractionsGen, seen, config.DefaultCacheTime, cacheKey, bytes)
		}
	}

	return withDistances(list, filters), nil
}

// withDistances wraps the list and, when an origin is given, annotates,
// filters by MaxDistance and sorts by distance ascending.
func withDistances(list []*md.Attraction, filters *dto.AttractionFilters) []*dto.AttractionResponse {
	res := make([]*dto.AttractionResponse, 0, len(list))

	var origin *geo.Point
	if filters.Latitude != nil && filters.Longitude != nil {
		origin = &geo.Point{Latitude: *filters.Latitude, Longitude: *filters.Longitude}
	}

	for _, a := range list {
		item := &dto.AttractionResponse{Attraction: *a}
		if origin != nil {
			d := geo.Distance(origin, geo.Point{Latitude: a.Latitude, Longitude: a.Longitude})
			if filters.MaxDistance > 0 && d > filters.MaxDistance {
				continue
			}
			item.Distance = &d
		}
		res = append(res, item)
	}

	if origin != nil {
		slices.SortStableFunc(
			res, func(a, b *dto.AttractionResponse) int {
				return cmp.Compare(*a.Distance, *b.Distance)
			},
		)
	}

	return res
}

func (c *Controller) CreateAttraction(
	ctx context.Context,
	req *dto.CreateAttractionRequest,
) (*dto.CreateAttractionResponse, error) {
	const op = "attractions.CreateAttraction.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.CreateAttraction(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, err
	}

	c.invalidateAttractions(ctx)

	return &dto.CreateAttractionResponse{ID: id}, nil
}

func (c *Controller) DeleteAttractions(ctx context.Context, ids []uuid.UUID) error {
	const op = "attractions.DeleteAttractions.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if len(ids) == 0 {
		return ErrNoIDs
	}

	if err := c.repo.DeleteAttractions(ctx, ids); err != nil {
		return err
	}

	c.invalidateAttractions(ctx)

	return nil
}

func (c *Controller) invalidateAttractions(ctx context.Context) {
	c.attractionsGen.Add(1)
	c.cache.InvalidateKeysByPattern(context.WithoutCancel(ctx), attractionsPattern)
}

// UploadAttractionImage stores an image under a key derived from the attraction name.
func (c *Controller) UploadAttractionImage(
	ctx context.Context,
	name string,
	file *s3.UploadFileRequest,
) (string, error) {
	const op = "attractions.UploadAttractionImage.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	file.Filename = fmt.Sprintf(
		attractionImageKey,
		slug.Make(name),
		uuid.New(),
		strings.ToLower(path.Ext(file.Filename)),
	)

	return c.s3.UploadFile(ctx, file)
}
