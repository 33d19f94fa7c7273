package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/go-attractions/internal/auth"
	"github.com/JMURv/go-attractions/internal/dto"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type authCtrl interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

func (c *Controller) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	const op = "auth.Register.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	hashed, err := c.au.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	id, err := c.repo.CreateUser(ctx, req.Email, hashed, req.Name)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	res := &dto.RegisterResponse{
		User: dto.PublicUser{
			ID:    id,
			Email: req.Email,
			Name:  req.Name,
		},
	}

	// The account already exists at this point, so a signing failure only drops the token.
	token, err := c.au.NewToken(ctx, id)
	if err != nil {
		zap.L().Warn(
			"Failed to issue token after registration",
			zap.String("op", op),
			zap.String("uid", id.String()),
			zap.Error(err),
		)
	} else {
		res.Token = token
	}

	if c.smtp != nil {
		go c.sendWelcome(req.Email, req.Name)
	}

	return res, nil
}

func (c *Controller) sendWelcome(email, name string) {
	if err := c.smtp.SendWelcome(email, name); err != nil {
		zap.L().Warn("Failed to send welcome email", zap.String("email", email), zap.Error(err))
	}
}

func (c *Controller) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	const op = "auth.Login.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err = c.au.ComparePasswords([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	u.Password = ""

	token, err := c.au.NewToken(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User:  u,
		Token: token,
	}, nil
}
