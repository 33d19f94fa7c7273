package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JMURv/go-attractions/internal/config"
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) CreateUser(ctx context.Context, email, password, name string) (uuid.UUID, error) {
	const op = "users.CreateUser.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to begin transaction", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			zap.L().Error("failed to rollback transaction", zap.String("op", op), zap.Error(err))
		}
	}()

	var id uuid.UUID
	err = tx.QueryRowContext(ctx, userCreateQ, email, password, name).Scan(&id)
	if err != nil {
		if pgErrCode(err) == uniqueViolation {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create user", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit transaction", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	const op = "users.GetUserByEmail.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByEmailQ, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get user by email", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) UpdateAvatar(ctx context.Context, uid uuid.UUID, avatar string) error {
	const op = "users.UpdateAvatar.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userUpdateAvatarQ, avatar, uid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to update avatar", zap.String("op", op), zap.Error(err))
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get affected rows", zap.String("op", op), zap.Error(err))
		return err
	}

	if aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) GetBiometrics(ctx context.Context, uid uuid.UUID) (bool, error) {
	const op = "users.GetBiometrics.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var enabled bool
	err := r.conn.QueryRowContext(ctx, biometricsGetQ, uid).Scan(&enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get biometrics", zap.String("op", op), zap.Error(err))
		return false, err
	}

	return enabled, nil
}

func (r *Repository) SetBiometrics(ctx context.Context, uid uuid.UUID, enabled bool) (bool, error) {
	const op = "users.SetBiometrics.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var res bool
	err := r.conn.QueryRowContext(ctx, biometricsUpsertQ, uid, enabled).Scan(&res)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return false, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to set biometrics", zap.String("op", op), zap.Error(err))
		return false, err
	}

	return res, nil
}
