package ctrl

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/JMURv/go-attractions/internal/auth"
	"github.com/JMURv/go-attractions/internal/repo/s3"
)

type AppRepo interface {
	userRepo
	attractionRepo
	categoryRepo
}

type AppCtrl interface {
	authCtrl
	userCtrl
	attractionCtrl
	categoryCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type S3Service interface {
	UploadFile(ctx context.Context, req *s3.UploadFileRequest) (string, error)
}

type EmailService interface {
	SendWelcome(toEmail, name string) error
}

type Controller struct {
	au    auth.Core
	repo  AppRepo
	cache CacheService
	s3    S3Service
	smtp  EmailService

	// bumped by writes, so a list read that raced a write is not cached
	attractionsGen atomic.Uint64
	categoriesGen  atomic.Uint64
}

func New(au auth.Core, repo AppRepo, cache CacheService, s3 S3Service, smtp EmailService) *Controller {
	return &Controller{
		au:    au,
		repo:  repo,
		cache: cache,
		s3:    s3,
		smtp:  smtp,
	}
}

// setIfCurrent caches val only while gen still equals seen, the value
// loaded before the repository read. A write that lands between the check
// and Set is caught by the second load.
func (c *Controller) setIfCurrent(
	ctx context.Context,
	gen *atomic.Uint64,
	seen uint64,
	t time.Duration,
	key string,
	val any,
) {
	if gen.Load() != seen {
		return
	}

	c.cache.Set(ctx, t, key, val)
	if gen.Load() != seen {
		c.cache.Delete(ctx, key)
	}
}
