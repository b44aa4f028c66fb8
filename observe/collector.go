// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observe

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/someonegg/teammatch"
)

// LogCollector writes events to a zap logger.
type LogCollector struct {
	logger *zap.Logger
}

func NewLogCollector(logger *zap.Logger) *LogCollector {
	return &LogCollector{logger: logger}
}

func (c *LogCollector) UnbidUsers(pids []teammatch.PID) {
	ss := make([]string, len(pids))
	for i, p := range pids {
		ss[i] = string(p)
	}
	c.logger.Info("users without bids",
		zap.Int("count", len(pids)),
		zap.Strings("pids", ss),
	)
}

func (c *LogCollector) TradeRound(round, cycles, moved int) {
	c.logger.Debug("trading round resolved",
		zap.Int("round", round),
		zap.Int("cycles", cycles),
		zap.Int("moved", moved),
	)
}

// PromCollector counts events with prometheus metrics.
type PromCollector struct {
	unbid    prometheus.Counter
	rounds   prometheus.Counter
	cycles   prometheus.Counter
	moved    prometheus.Counter
	requests *prometheus.CounterVec
}

// NewPromCollector creates the metrics under namespace and registers them
// with reg.
func NewPromCollector(namespace string, reg prometheus.Registerer) (*PromCollector, error) {
	c := &PromCollector{
		unbid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unbid_users_total",
			Help:      "Total number of users who ranked no topic",
		}),
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trade_rounds_total",
			Help:      "Total number of resolved trading rounds",
		}),
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trade_cycles_total",
			Help:      "Total number of resolved trading cycles",
		}),
		moved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traded_users_total",
			Help:      "Total number of users moved by trading",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
	}

	for _, m := range []prometheus.Collector{c.unbid, c.rounds, c.cycles, c.moved, c.requests} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *PromCollector) UnbidUsers(pids []teammatch.PID) {
	c.unbid.Add(float64(len(pids)))
}

func (c *PromCollector) TradeRound(round, cycles, moved int) {
	c.rounds.Inc()
	c.cycles.Add(float64(cycles))
	c.moved.Add(float64(moved))
}

// Request counts one served HTTP request.
func (c *PromCollector) Request(method, route string, status int) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

type multiCollector []teammatch.Collector

// Multi fans every event out to all cs, skipping nils.
func Multi(cs ...teammatch.Collector) teammatch.Collector {
	var m multiCollector
	for _, c := range cs {
		if c != nil {
			m = append(m, c)
		}
	}
	return m
}

func (m multiCollector) UnbidUsers(pids []teammatch.PID) {
	for _, c := range m {
		c.UnbidUsers(pids)
	}
}

func (m multiCollector) TradeRound(round, cycles, moved int) {
	for _, c := range m {
		c.TradeRound(round, cycles, moved)
	}
}
