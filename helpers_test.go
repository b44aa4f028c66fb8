// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

import (
	"errors"
	"strings"
)

func makeUser(pid string, vec []float64, history ...string) *User {
	h := make([]PID, len(history))
	for i, p := range history {
		h[i] = PID(p)
	}
	return NewUser(PID(pid), vec, h)
}

func pidsOf(teams []*Team) [][]string {
	out := make([][]string, len(teams))
	for i, t := range teams {
		out[i] = strings.Split(t.String(), ",")
		if t.Len() == 0 {
			out[i] = []string{}
		}
	}
	return out
}

// The four users of the reference scenario, in input order.
var (
	scenarioPIDs  = []string{"1023", "4535", "1363", "9841"}
	scenarioRanks = [][]int{
		{1, 0, 2, 3},
		{1, 2, 0, 3},
		{0, 2, 3, 1},
		{2, 1, 0, 3},
	}
	scenarioHistory = [][]string{
		{"4535", "9841", "9843"},
		{"1023", "9843", "8542"},
		{"3649", "9841", "9843"},
		{"1363", "1023", "3649"},
	}
)

func scenarioUsers(maxTeamSize int, withHistory bool) []*User {
	w := FindWeights(scenarioRanks, maxTeamSize)
	users := make([]*User, len(scenarioPIDs))
	for i, pid := range scenarioPIDs {
		var history []string
		if withHistory {
			history = scenarioHistory[i]
		}
		users[i] = makeUser(pid, w.Apply(scenarioRanks[i]), history...)
	}
	return users
}

// recordCollector keeps every event it receives.
type recordCollector struct {
	unbid  [][]PID
	rounds [][3]int
}

func (c *recordCollector) UnbidUsers(pids []PID) {
	c.unbid = append(c.unbid, pids)
}

func (c *recordCollector) TradeRound(round, cycles, moved int) {
	c.rounds = append(c.rounds, [3]int{round, cycles, moved})
}

// oneCentroid always collapses to a single centroid.
type oneCentroid struct{ calls int }

func (c *oneCentroid) Centroids(points [][]float64, k int) ([][]float64, error) {
	c.calls++
	return [][]float64{points[0]}, nil
}

type failingClusterer struct{}

func (failingClusterer) Centroids([][]float64, int) ([][]float64, error) {
	return nil, errors.New("no convergence")
}

// fixedCentroids returns the same centroids whatever the points.
type fixedCentroids [][]float64

func (c fixedCentroids) Centroids([][]float64, int) ([][]float64, error) {
	return c, nil
}
