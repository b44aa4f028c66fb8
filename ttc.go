// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

type ttcTrader struct {
	collector Collector
}

// TTCTrader returns a Trader running top trading cycles over the teams that
// hold pawned users. Pawned users that never join a cycle stay where they
// are. A nil collector discards events.
func TTCTrader(collector Collector) Trader {
	if collector == nil {
		collector = NopCollector
	}
	return ttcTrader{collector}
}

// tradeEdge is a team's pointer: the user it wants and the team owning it.
type tradeEdge struct {
	owner *Team
	user  *User
}

func (tr ttcTrader) Trade(teams []*Team) {
	var (
		auctTeams []*Team
		auctUsers []*User
	)
	for _, t := range teams {
		if pawned := t.Pawned(); len(pawned) > 0 {
			auctUsers = append(auctUsers, pawned...)
			auctTeams = append(auctTeams, t)
		}
	}
	tr.topTradingCycles(auctTeams, auctUsers)
}

func (tr ttcTrader) topTradingCycles(teams []*Team, users []*User) {
	for round := 1; len(teams) > 0; round++ {
		graph := tradeGraph(teams, users)
		cycles := detectCycles(teams, graph)
		if len(cycles) == 0 {
			return
		}

		moved := 0
		for _, cycle := range cycles {
			for _, t := range cycle {
				e := graph[t]
				if t.TakeUserFrom(e.owner, e.user) {
					moved++
				}
			}
		}
		teams = withoutTeams(teams, cycles)

		tr.collector.TradeRound(round, len(cycles), moved)
	}
}

// tradeGraph points every team at the first user in its preference order
// that is owned by another team still trading and that pawns nobody in it.
// Teams without such a user get no edge.
func tradeGraph(teams []*Team, users []*User) map[*Team]tradeEdge {
	graph := make(map[*Team]tradeEdge, len(teams))
	for _, t := range teams {
		for _, u := range t.UserPrefs(users) {
			owner := TeamWithUser(teams, u)
			if owner == nil || owner == t || t.wouldPawn(u) {
				continue
			}
			graph[t] = tradeEdge{owner, u}
			break
		}
	}
	return graph
}

// detectCycles walks the functional graph from every team in order. A walk
// stops at a team without an edge, at a team seen by an earlier walk, or at
// a team on its own path, in which case the rest of the path is a cycle.
// Every cycle is thus reported once, starting at the team it was entered by.
func detectCycles(teams []*Team, graph map[*Team]tradeEdge) [][]*Team {
	visited := make(map[*Team]bool, len(teams))
	var cycles [][]*Team

	for _, start := range teams {
		if visited[start] {
			continue
		}
		onPath := make(map[*Team]int)
		var path []*Team
		for t := start; ; {
			if i, ok := onPath[t]; ok {
				cycles = append(cycles, path[i:])
				break
			}
			if visited[t] {
				break
			}
			visited[t] = true
			onPath[t] = len(path)
			path = append(path, t)

			e, ok := graph[t]
			if !ok {
				break
			}
			t = e.owner
		}
	}
	return cycles
}

func withoutTeams(teams []*Team, cycles [][]*Team) []*Team {
	done := make(map[*Team]bool)
	for _, cycle := range cycles {
		for _, t := range cycle {
			done[t] = true
		}
	}
	rest := make([]*Team, 0, len(teams))
	for _, t := range teams {
		if !done[t] {
			rest = append(rest, t)
		}
	}
	return rest
}

// CountPawned returns the number of pawned users across teams.
func CountPawned(teams []*Team) int {
	n := 0
	for _, t := range teams {
		n += len(t.Pawned())
	}
	return n
}
