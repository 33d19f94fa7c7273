package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/JMURv/go-attractions/api/rest/v1"
	"github.com/JMURv/go-attractions/internal/auth"
	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/ctrl"
	mid "github.com/JMURv/go-attractions/internal/hdl/http/middleware"
	"github.com/JMURv/go-attractions/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	Router *chi.Mux
	au     auth.Core
	ctrl   ctrl.AppCtrl
	srv    *http.Server
	conf   config.Config
}

func New(au auth.Core, ctrl ctrl.AppCtrl, conf config.Config) *Handler {
	h := &Handler{
		Router: chi.NewRouter(),
		au:     au,
		ctrl:   ctrl,
		conf:   conf,
	}
	h.setup()
	return h
}

func (h *Handler) setup() {
	h.Router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		cors.Handler(
			cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{
					http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
				},
				AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
				MaxAge:         300,
			},
		),
		mid.Prometheus,
		mid.OT,
	)

	h.Router.NotFound(
		func(w http.ResponseWriter, r *http.Request) {
			utils.ErrResponse(w, http.StatusNotFound, errors.New("route not found"))
		},
	)
	h.Router.MethodNotAllowed(
		func(w http.ResponseWriter, r *http.Request) {
			utils.ErrResponse(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		},
	)

	h.RegisterRoutes()
	h.Router.Get("/swagger/*", httpSwagger.WrapHandler)
	h.Router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)
}

func (h *Handler) Start(port int) {
	h.srv = &http.Server{
		Handler:      h.Router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
