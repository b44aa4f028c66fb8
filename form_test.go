// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/someonegg/teammatch/kmeans"
)

func TestClusterFormer_Scenario(t *testing.T) {
	t.Run("TeamsOfTwo", func(t *testing.T) {
		former := ClusterFormer(2, kmeans.New(0), nil)
		teams := former.Form(scenarioUsers(2, false))
		assert.Equal(t, [][]string{{"1363", "9841"}, {"1023", "4535"}}, pidsOf(teams))
	})

	t.Run("TeamOfFour", func(t *testing.T) {
		former := ClusterFormer(4, kmeans.New(0), nil)
		teams := former.Form(scenarioUsers(4, false))
		assert.Equal(t, [][]string{{"1023", "4535", "1363", "9841"}}, pidsOf(teams))
	})
}

func TestClusterFormer_Partition(t *testing.T) {
	const (
		n           = 23
		maxTeamSize = 4
	)

	ranks := make([][]int, n)
	for i := range ranks {
		ranks[i] = make([]int, 5)
		for j := range ranks[i] {
			ranks[i][j] = (i*7 + j*3) % 5
		}
	}
	w := FindWeights(ranks, maxTeamSize)

	users := make([]*User, n)
	for i := range users {
		users[i] = makeUser(string(rune('A'+i)), w.Apply(ranks[i]))
	}

	teams := ClusterFormer(maxTeamSize, kmeans.New(0), nil).Form(users)

	seen := make(map[*User]int)
	for i, a := range teams {
		assert.LessOrEqual(t, a.Len(), maxTeamSize)
		for _, m := range a.Members {
			seen[m]++
		}
		for _, b := range teams[i+1:] {
			assert.Greater(t, a.Len()+b.Len(), maxTeamSize)
		}
	}
	require.Len(t, seen, n)
	for u, count := range seen {
		assert.Equal(t, 1, count, "user %v placed %d times", u, count)
	}
}

func TestClusterFormer_Degenerate(t *testing.T) {
	users := make([]*User, 10)
	for i := range users {
		users[i] = makeUser(string(rune('a'+i)), []float64{1, 1})
	}

	teams := ClusterFormer(3, &oneCentroid{}, nil).Form(users)
	total := 0
	for _, team := range teams {
		assert.LessOrEqual(t, team.Len(), 3)
		total += team.Len()
	}
	assert.Equal(t, 10, total)
}

func TestClusterFormer_Options(t *testing.T) {
	t.Run("UnbidReported", func(t *testing.T) {
		rec := &recordCollector{}
		users := []*User{
			makeUser("u1", []float64{0, 0}),
			makeUser("u2", []float64{1, 0}),
			makeUser("u3", []float64{0, 0}),
		}
		teams := ClusterFormer(3, kmeans.New(0), rec).Form(users)
		assert.Equal(t, [][]PID{{"u1", "u3"}}, rec.unbid)
		assert.Equal(t, [][]string{{"u1", "u2", "u3"}}, pidsOf(teams))
	})

	t.Run("NothingUnbid", func(t *testing.T) {
		rec := &recordCollector{}
		ClusterFormer(2, kmeans.New(0), rec).Form(scenarioUsers(2, false))
		require.Len(t, rec.unbid, 1)
		assert.Empty(t, rec.unbid[0])
	})

	t.Run("SizeClamped", func(t *testing.T) {
		users := []*User{
			makeUser("a", []float64{1}),
			makeUser("b", []float64{2}),
			makeUser("c", []float64{3}),
		}
		teams := ClusterFormer(0, kmeans.New(0), nil).Form(users)
		assert.Len(t, teams, 3)
	})

	t.Run("NoUsers", func(t *testing.T) {
		assert.Empty(t, ClusterFormer(2, kmeans.New(0), nil).Form(nil))
	})
}
