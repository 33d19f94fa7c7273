package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/JMURv/go-attractions/internal/auth"
	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/hdl"
	"github.com/JMURv/go-attractions/internal/hdl/http/utils"
	metrics "github.com/JMURv/go-attractions/internal/observability/metrics/prometheus"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type AuthOpts struct {
	// CheckOwner requires the token uid to match the {id} path parameter.
	CheckOwner bool
}

// Auth validates a bearer token and stores its uid in the request context.
// When enforce is false requests without a token pass through untouched.
func Auth(au auth.Core, enforce bool, opts AuthOpts) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token, ok := bearerToken(r)
				if !ok {
					if enforce {
						utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
						return
					}
					next.ServeHTTP(w, r)
					return
				}

				claims, err := au.ParseClaims(r.Context(), token)
				if err != nil {
					utils.ErrResponse(w, http.StatusUnauthorized, err)
					return
				}

				if opts.CheckOwner && claims.UID.String() != strings.ToLower(chi.URLParam(r, "id")) {
					utils.ErrResponse(w, http.StatusForbidden, auth.ErrTokenSubjectMismatch)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, claims.UID)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// UID returns the token uid stored by Auth, if the request carried one.
func UID(ctx context.Context) (uuid.UUID, bool) {
	uid, ok := ctx.Value(config.UidKey).(uuid.UUID)
	return uid, ok
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(h, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// RateLimit applies a token bucket per client IP.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[ip] = l
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				if !limiterFor(clientIP(r)).Allow() {
					utils.ErrResponse(w, http.StatusTooManyRequests, hdl.ErrTooManyRequests)
					return
				}
				next.ServeHTTP(w, r)
			},
		)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// Prometheus labels requests by route pattern to keep label cardinality bounded.
func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)

			op := r.Method + " " + r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				op = r.Method + " " + rctx.RoutePattern()
			}
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), r.Method+" "+r.URL.Path)
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
