package auth

import (
	"context"

	"github.com/JMURv/go-attractions/internal/auth/jwt"
	"github.com/JMURv/go-attractions/internal/config"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

type Core interface {
	Hash(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
	NewToken(ctx context.Context, uid uuid.UUID) (string, error)
	ParseClaims(ctx context.Context, token string) (jwt.Claims, error)
}

type Auth struct {
	jwt *jwt.Core
}

func New(conf config.Config) *Auth {
	return &Auth{jwt: jwt.New(conf)}
}

func (a *Auth) Hash(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), hashCost)
	if err != nil {
		zap.L().Error("Failed to hash password", zap.Error(err))
		return "", err
	}
	return string(bytes), nil
}

func (a *Auth) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (a *Auth) NewToken(ctx context.Context, uid uuid.UUID) (string, error) {
	const op = "auth.NewToken.auth"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return a.jwt.NewToken(ctx, uid, config.AccessTokenDuration)
}

func (a *Auth) ParseClaims(ctx context.Context, token string) (jwt.Claims, error) {
	const op = "auth.ParseClaims.auth"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := a.jwt.ParseClaims(ctx, token)
	if err != nil {
		return claims, ErrInvalidToken
	}
	return claims, nil
}
