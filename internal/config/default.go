package config

import "time"

type ctxKey string

const (
	UidKey ctxKey = "uid"
)

const ErrorSpanTag = "error"

const (
	DefaultCacheTime = time.Hour
	MinCacheTime     = time.Minute * 5
	MaxMemory        = 10 << 20 // 10 MB
)

const (
	AccessTokenDuration = time.Hour * 24 * 7
	ShutdownTimeout     = time.Second * 10
)
