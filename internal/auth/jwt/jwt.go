package jwt

import (
	"context"
	"time"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Core struct {
	secret []byte
	issuer string
}

type Claims struct {
	UID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

func New(conf config.Config) *Core {
	return &Core{secret: []byte(conf.Auth.Secret), issuer: conf.Auth.Issuer}
}

func (c *Core) NewToken(ctx context.Context, uid uuid.UUID, d time.Duration) (string, error) {
	const op = "auth.NewToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := time.Now()
	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			UID: uid,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uid.String(),
				ExpiresAt: jwt.NewNumericDate(now.Add(d)),
				IssuedAt:  jwt.NewNumericDate(now),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)
		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}
			return c.secret, nil
		},
		jwt.WithIssuer(c.issuer),
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)
		return claims, err
	}

	if !token.Valid || claims.UID == uuid.Nil {
		return claims, ErrInvalidToken
	}

	return claims, nil
}
