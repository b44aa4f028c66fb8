// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/someonegg/teammatch"
	"github.com/someonegg/teammatch/config"
	"github.com/someonegg/teammatch/kmeans"
	"github.com/someonegg/teammatch/observe"
	"github.com/someonegg/teammatch/server"
	"github.com/someonegg/teammatch/service"
)

const metricsNamespace = "teammatch"

func doServe(ctx context.Context, configFile, addr, logLevel string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observe.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("create logger failed: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	var (
		sinks   = []teammatch.Collector{observe.NewLogCollector(logger)}
		metrics *observe.PromCollector
		gather  prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics, err = observe.NewPromCollector(metricsNamespace, reg)
		if err != nil {
			return fmt.Errorf("register metrics failed: %w", err)
		}
		sinks = append(sinks, metrics)
		gather = reg
	}

	svc := service.New(kmeans.New(cfg.Clustering.MaxIterations), observe.Multi(sinks...))
	srv := server.New(cfg, svc, logger, metrics, gather)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
