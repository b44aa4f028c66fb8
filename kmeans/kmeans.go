// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kmeans implements a deterministic k-means clusterer.
//
// Seeds are picked farthest-first: the point farthest from the mean of all
// points, then repeatedly the point farthest from every seed chosen so far.
// Lloyd iterations follow until the centroids stop moving. Clusters that
// run empty are dropped, and seeding stops early when the points collapse,
// so fewer than k centroids may be returned.
package kmeans

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

const DefaultMaxIterations = 100

var (
	ErrNoPoints  = errors.New("kmeans: no points")
	ErrInvalidK  = errors.New("kmeans: k must be positive")
	ErrDimension = errors.New("kmeans: points differ in dimension")
)

type Clusterer struct {
	// MaxIterations caps the Lloyd iterations, DefaultMaxIterations if <= 0.
	MaxIterations int
}

func New(maxIterations int) *Clusterer {
	return &Clusterer{MaxIterations: maxIterations}
}

func (c *Clusterer) maxIterations() int {
	if c == nil || c.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return c.MaxIterations
}

// Centroids returns at most k centroids of points.
func (c *Clusterer) Centroids(points [][]float64, k int) ([][]float64, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	dim := len(points[0])
	for _, p := range points {
		if len(p) != dim {
			return nil, ErrDimension
		}
	}

	centroids := seeds(points, k)
	assign := make([]int, len(points))
	for iter := 0; iter < c.maxIterations(); iter++ {
		for i, p := range points {
			assign[i] = nearest(centroids, p)
		}
		next, dropped := means(points, assign, len(centroids))
		converged := !dropped && sameCentroids(next, centroids)
		centroids = next
		if converged {
			break
		}
	}
	return centroids, nil
}

func seeds(points [][]float64, k int) [][]float64 {
	mean := make([]float64, len(points[0]))
	for _, p := range points {
		floats.Add(mean, p)
	}
	floats.Scale(1/float64(len(points)), mean)

	first, far := 0, -1.0
	for i, p := range points {
		if d := floats.Distance(mean, p, 2); d > far {
			first, far = i, d
		}
	}
	chosen := [][]float64{points[first]}

	for len(chosen) < k {
		best, bestDist := -1, 0.0
		for i, p := range points {
			d := floats.Distance(chosen[nearest(chosen, p)], p, 2)
			if d > bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			break // every point coincides with a seed
		}
		chosen = append(chosen, points[best])
	}

	out := make([][]float64, len(chosen))
	for i, s := range chosen {
		out[i] = append([]float64(nil), s...)
	}
	return out
}

// nearest returns the index of the centroid closest to p, the lowest index
// on ties.
func nearest(centroids [][]float64, p []float64) int {
	best, bestDist := 0, floats.Distance(centroids[0], p, 2)
	for i := 1; i < len(centroids); i++ {
		if d := floats.Distance(centroids[i], p, 2); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func means(points [][]float64, assign []int, k int) (centroids [][]float64, dropped bool) {
	sums := make([][]float64, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assign[i]
		if sums[c] == nil {
			sums[c] = make([]float64, len(p))
		}
		floats.Add(sums[c], p)
		counts[c]++
	}
	for c := range sums {
		if counts[c] == 0 {
			dropped = true
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		centroids = append(centroids, sums[c])
	}
	return centroids, dropped
}

func sameCentroids(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
