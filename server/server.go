// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves the teammatch service over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/someonegg/teammatch/config"
	"github.com/someonegg/teammatch/observe"
	"github.com/someonegg/teammatch/service"
)

type Server struct {
	cfg     *config.Config
	svc     *service.Service
	logger  *zap.Logger
	metrics *observe.PromCollector // nil when metrics are disabled
	gather  prometheus.Gatherer
}

// New creates a server. metrics and gather may be nil, in which case no
// request metrics are counted and no metrics endpoint is mounted.
func New(cfg *config.Config, svc *service.Service, logger *zap.Logger,
	metrics *observe.PromCollector, gather prometheus.Gatherer) *Server {
	return &Server{
		cfg:     cfg,
		svc:     svc,
		logger:  logger,
		metrics: metrics,
		gather:  gather,
	}
}

func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(chimiddleware.RealIP)
	router.Use(s.accessLog)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", chimiddleware.RequestIDHeader},
		ExposedHeaders: []string{chimiddleware.RequestIDHeader},
		MaxAge:         300,
	}))

	router.Get("/health", s.health)
	router.Post("/merge_teams", s.mergeTeams)
	router.Post("/swap_team_members", s.swapTeamMembers)

	if s.cfg.Metrics.Enabled && s.gather != nil {
		router.Method(http.MethodGet, s.cfg.Metrics.Path,
			promhttp.HandlerFor(s.gather, promhttp.HandlerOpts{}))
	}

	return router
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
