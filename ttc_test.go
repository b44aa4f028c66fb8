// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/someonegg/teammatch/kmeans"
)

func TestTTCTrader_Scenario(t *testing.T) {
	users := scenarioUsers(2, true)
	teams := []*Team{
		NewTeam(UserWithPID(users, "1363"), UserWithPID(users, "9841")),
		NewTeam(UserWithPID(users, "1023"), UserWithPID(users, "4535")),
	}
	assert.Equal(t, 4, CountPawned(teams))

	rec := &recordCollector{}
	TTCTrader(rec).Trade(teams)

	assert.Equal(t, [][]string{{"9841", "4535"}, {"1023", "1363"}}, pidsOf(teams))
	assert.Equal(t, 0, CountPawned(teams))
	assert.Equal(t, [][3]int{{1, 1, 2}}, rec.rounds)
}

func TestTTCTrader_FormThenTrade(t *testing.T) {
	teams := ClusterFormer(2, kmeans.New(0), nil).Form(scenarioUsers(2, true))
	TTCTrader(nil).Trade(teams)
	assert.Equal(t, [][]string{{"9841", "4535"}, {"1023", "1363"}}, pidsOf(teams))
}

// threeTeams places a pair of users at each of the positions. Within each
// pair the first user has worked with the second.
func threeTeams(pos [3]float64) (teams []*Team, users map[string]*User) {
	users = make(map[string]*User)
	for i, prefix := range []string{"a", "b", "c"} {
		first, second := prefix+"1", prefix+"2"
		users[first] = makeUser(first, []float64{pos[i]}, second)
		users[second] = makeUser(second, []float64{pos[i]})
		teams = append(teams, NewTeam(users[first], users[second]))
	}
	return teams, users
}

func TestTTCTrader_ThreeCycle(t *testing.T) {
	teams, users := threeTeams([3]float64{0, 1, 3})
	// b2 blocks the a pair from team b, c2 blocks the b pair from team c
	users["b2"].History = map[PID]struct{}{"a1": {}, "a2": {}}
	users["c2"].History = map[PID]struct{}{"b1": {}, "b2": {}}
	assert.Equal(t, 3, CountPawned(teams))

	rec := &recordCollector{}
	TTCTrader(rec).Trade(teams)

	assert.Equal(t, [][]string{{"a2", "b1"}, {"b2", "c1"}, {"c2", "a1"}}, pidsOf(teams))
	assert.Equal(t, 0, CountPawned(teams))
	assert.Equal(t, [][3]int{{1, 1, 3}}, rec.rounds)
}

func TestTTCTrader_LeftOver(t *testing.T) {
	teams, _ := threeTeams([3]float64{0, 10, 20})

	rec := &recordCollector{}
	TTCTrader(rec).Trade(teams)

	assert.Equal(t, [][]string{{"a2", "b1"}, {"b2", "a1"}, {"c1", "c2"}}, pidsOf(teams))
	assert.Equal(t, 1, CountPawned(teams))
	assert.Equal(t, [][3]int{{1, 1, 2}}, rec.rounds)
}

func TestTTCTrader_NoTrade(t *testing.T) {
	t.Run("NobodyPawned", func(t *testing.T) {
		teams := []*Team{
			NewTeam(makeUser("a", []float64{0}), makeUser("b", []float64{1})),
			NewTeam(makeUser("c", []float64{2}), makeUser("d", []float64{3})),
		}
		rec := &recordCollector{}
		TTCTrader(rec).Trade(teams)
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, pidsOf(teams))
		assert.Empty(t, rec.rounds)
	})

	t.Run("EveryTargetPawns", func(t *testing.T) {
		teams := []*Team{
			NewTeam(makeUser("a", []float64{0}, "b", "c", "d"), makeUser("b", []float64{1}, "c", "d")),
			NewTeam(makeUser("c", []float64{2}, "d"), makeUser("d", []float64{3})),
		}
		rec := &recordCollector{}
		TTCTrader(rec).Trade(teams)
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, pidsOf(teams))
		assert.Empty(t, rec.rounds)
	})

	t.Run("Empty", func(t *testing.T) {
		TTCTrader(nil).Trade(nil)
	})
}

func namedTeam(pid string) *Team {
	return NewTeam(makeUser(pid, []float64{0}))
}

func TestDetectCycles(t *testing.T) {
	a, b, c, d := namedTeam("a"), namedTeam("b"), namedTeam("c"), namedTeam("d")
	teams := []*Team{a, b, c, d}

	t.Run("TailIntoCycle", func(t *testing.T) {
		graph := map[*Team]tradeEdge{
			a: {owner: b}, b: {owner: c}, c: {owner: b}, d: {owner: a},
		}
		assert.Equal(t, [][]*Team{{b, c}}, detectCycles(teams, graph))
	})

	t.Run("Disjoint", func(t *testing.T) {
		graph := map[*Team]tradeEdge{
			a: {owner: b}, b: {owner: a}, c: {owner: d}, d: {owner: c},
		}
		assert.Equal(t, [][]*Team{{a, b}, {c, d}}, detectCycles(teams, graph))
	})

	t.Run("Chain", func(t *testing.T) {
		graph := map[*Team]tradeEdge{
			a: {owner: b}, b: {owner: c}, c: {owner: d},
		}
		assert.Empty(t, detectCycles(teams, graph))
	})
}

func TestWithoutTeams(t *testing.T) {
	a, b, c := namedTeam("a"), namedTeam("b"), namedTeam("c")
	assert.Equal(t, []*Team{b}, withoutTeams([]*Team{a, b, c}, [][]*Team{{c, a}}))
}
