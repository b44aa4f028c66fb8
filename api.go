// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package teammatch provides team formation and member trading algorithms
// that respect topic preferences and collaboration history.
package teammatch

// PID identifies a user. It is opaque to the algorithms.
type PID string

// Clusterer splits points into at most k groups and returns their centroids.
// It may return fewer than k centroids (or an error) when the points collapse;
// callers fall back to an order-preserving bisection in that case.
type Clusterer interface {
	Centroids(points [][]float64, k int) ([][]float64, error)
}

// Collector receives observability events from the algorithms.
type Collector interface {
	// UnbidUsers reports the users whose utility vector is all zero.
	UnbidUsers(pids []PID)
	// TradeRound reports one resolved round of top trading cycles.
	TradeRound(round, cycles, moved int)
}

type nopCollector struct{}

func (nopCollector) UnbidUsers([]PID)        {}
func (nopCollector) TradeRound(int, int, int) {}

// NopCollector discards all events.
var NopCollector Collector = nopCollector{}

type Former interface {
	// Form partitions users into teams. The users must be weighted already.
	Form(users []*User) []*Team
}

type Trader interface {
	// Trade swaps pawned members between teams in place.
	Trade(teams []*Team)
}
