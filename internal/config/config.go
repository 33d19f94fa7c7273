package config

import (
	"errors"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"attractions"`
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	S3          S3Config
	Auth        AuthConfig
	RateLimit   RateLimitConfig
	Email       EmailConfig
	Jaeger      JaegerConfig
}

type ServerConfig struct {
	Mode   string `env:"SERVER_MODE"   envDefault:"dev"`
	Port   int    `env:"SERVER_PORT"   envDefault:"3001"`
	Scheme string `env:"SERVER_SCHEME" envDefault:"http"`
	Domain string `env:"SERVER_DOMAIN" envDefault:"localhost"`
}

type DBConfig struct {
	Host         string `env:"DB_HOST"           envDefault:"localhost"`
	Port         int    `env:"DB_PORT"           envDefault:"5432"`
	User         string `env:"DB_USER"           envDefault:"postgres"`
	Password     string `env:"DB_PASSWORD"       envDefault:"postgres"`
	Database     string `env:"DB_NAME"           envDefault:"attractions"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Pass string `env:"REDIS_PASS"`
	DB   int    `env:"REDIS_DB"   envDefault:"0"`
}

type S3Config struct {
	Endpoint  string `env:"S3_ENDPOINT"   envDefault:"localhost:9000"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	Bucket    string `env:"S3_BUCKET"     envDefault:"attractions"`
	UseSSL    bool   `env:"S3_USE_SSL"    envDefault:"false"`
}

type AuthConfig struct {
	Secret  string `env:"AUTH_SECRET"`
	Issuer  string `env:"AUTH_ISSUER"  envDefault:"attractions"`
	Enforce bool   `env:"AUTH_ENFORCE" envDefault:"false"`
}

type RateLimitConfig struct {
	AuthRPS   float64 `env:"RATE_LIMIT_AUTH_RPS"   envDefault:"5"`
	AuthBurst int     `env:"RATE_LIMIT_AUTH_BURST" envDefault:"10"`
}

type EmailConfig struct {
	Enabled bool   `env:"EMAIL_ENABLED" envDefault:"false"`
	Server  string `env:"EMAIL_SERVER"`
	Port    int    `env:"EMAIL_PORT"    envDefault:"587"`
	User    string `env:"EMAIL_USER"`
	Pass    string `env:"EMAIL_PASS"`
}

type JaegerConfig struct {
	Sampler  SamplerConfig
	Reporter ReporterConfig
}

type SamplerConfig struct {
	Type  string  `env:"JAEGER_SAMPLER_TYPE"  envDefault:"const"`
	Param float64 `env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
}

type ReporterConfig struct {
	LogSpans           bool   `env:"JAEGER_REPORTER_LOG_SPANS"       envDefault:"false"`
	LocalAgentHostPort string `env:"JAEGER_REPORTER_AGENT_HOST_PORT" envDefault:"localhost:6831"`
}

// MustLoad reads an optional dotenv file at path and then parses the
// environment into Config. Values already present in the environment win.
func MustLoad(path string) Config {
	if err := godotenv.Load(path); err != nil {
		zap.L().Debug("dotenv file not loaded", zap.String("path", path), zap.Error(err))
	}

	var conf Config
	if err := env.Parse(&conf); err != nil {
		panic(err)
	}

	if err := conf.validate(); err != nil {
		panic(err)
	}

	return conf
}

var ErrMissingAuthSecret = errors.New("AUTH_SECRET must be set when SERVER_MODE is prod")

// devAuthSecret signs tokens outside prod when AUTH_SECRET is unset.
const devAuthSecret = "secret"

func (c *Config) validate() error {
	if c.Auth.Secret != "" {
		return nil
	}

	if c.Server.Mode == "prod" {
		return ErrMissingAuthSecret
	}

	zap.L().Warn("AUTH_SECRET is not set, using the development secret")
	c.Auth.Secret = devAuthSecret
	return nil
}
