package ctrl

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/dto"
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/JMURv/go-attractions/internal/repo/s3"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type userCtrl interface {
	GetBiometrics(ctx context.Context, uid uuid.UUID) (bool, error)
	SetBiometrics(ctx context.Context, uid uuid.UUID, enabled bool) (bool, error)
	UpdateAvatar(ctx context.Context, uid uuid.UUID, avatar string) error
	UploadAvatar(ctx context.Context, uid uuid.UUID, file *s3.UploadFileRequest) (string, error)
}

type userRepo interface {
	CreateUser(ctx context.Context, email, password, name string) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	UpdateAvatar(ctx context.Context, uid uuid.UUID, avatar string) error
	GetBiometrics(ctx context.Context, uid uuid.UUID) (bool, error)
	SetBiometrics(ctx context.Context, uid uuid.UUID, enabled bool) (bool, error)
}

const (
	biometricsCacheKey = "biometrics:%v"
	avatarKey          = "avatars/%v-%v%v"
)

func (c *Controller) GetBiometrics(ctx context.Context, uid uuid.UUID) (bool, error) {
	const op = "users.GetBiometrics.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.BiometricsResponse{}
	cacheKey := fmt.Sprintf(biometricsCacheKey, uid)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached.Enabled, nil
	}

	enabled, err := c.repo.GetBiometrics(ctx, uid)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return false, err
	}

	bytes, err := json.Marshal(&dto.BiometricsResponse{Enabled: enabled})
	if err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return enabled, nil
}

func (c *Controller) SetBiometrics(ctx context.Context, uid uuid.UUID, enabled bool) (bool, error) {
	const op = "users.SetBiometrics.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.SetBiometrics(ctx, uid, enabled)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	c.cache.Delete(ctx, fmt.Sprintf(biometricsCacheKey, uid))
	return res, nil
}

func (c *Controller) UpdateAvatar(ctx context.Context, uid uuid.UUID, avatar string) error {
	const op = "users.UpdateAvatar.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.UpdateAvatar(ctx, uid, avatar); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

// UploadAvatar stores the image and records its URL as the user's avatar.
func (c *Controller) UploadAvatar(ctx context.Context, uid uuid.UUID, file *s3.UploadFileRequest) (string, error) {
	const op = "users.UploadAvatar.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	file.Filename = fmt.Sprintf(avatarKey, uid, uuid.New(), strings.ToLower(path.Ext(file.Filename)))
	url, err := c.s3.UploadFile(ctx, file)
	if err != nil {
		return "", err
	}

	if err = c.UpdateAvatar(ctx, uid, url); err != nil {
		return "", err
	}

	return url, nil
}
