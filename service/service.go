// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package service

import (
	"github.com/someonegg/teammatch"
	"github.com/someonegg/teammatch/kmeans"
)

// Service is safe for concurrent use: every call builds its own users and
// teams, and only the clusterer and collector are shared.
type Service struct {
	Clusterer teammatch.Clusterer // kmeans with default options if nil
	Collector teammatch.Collector // discards events if nil
}

func New(clusterer teammatch.Clusterer, collector teammatch.Collector) *Service {
	return &Service{
		Clusterer: clusterer,
		Collector: collector,
	}
}

func (s *Service) clusterer() teammatch.Clusterer {
	if s.Clusterer == nil {
		return kmeans.New(kmeans.DefaultMaxIterations)
	}
	return s.Clusterer
}

func (s *Service) collector() teammatch.Collector {
	if s.Collector == nil {
		return teammatch.NopCollector
	}
	return s.Collector
}

// MergeTeams forms teams of at most req.MaxTeamSize users.
func (s *Service) MergeTeams(req *MergeRequest) (*Response, Summary, error) {
	if err := validateStruct(req); err != nil {
		return nil, Summary{}, err
	}
	ranks, err := rankMatrix(req.Users)
	if err != nil {
		return nil, Summary{}, err
	}

	users := genUsers(req.Users, ranks, teammatch.FindWeights(ranks, req.MaxTeamSize))
	teams := teammatch.ClusterFormer(req.MaxTeamSize, s.clusterer(), s.collector()).Form(users)

	summ := summarize(users, teams)
	summ.PawnedBefore = summ.PawnedAfter
	return &Response{Teams: teamPIDs(teams), Users: req.Users}, summ, nil
}

// SwapTeamMembers trades pawned members between the teams of req.
func (s *Service) SwapTeamMembers(req *SwapRequest) (*Response, Summary, error) {
	if err := validateStruct(req); err != nil {
		return nil, Summary{}, err
	}
	for i, u := range req.Users {
		if u.History == nil {
			return nil, Summary{}, invalidf("users[%d].history is required", i)
		}
	}
	ranks, err := rankMatrix(req.Users)
	if err != nil {
		return nil, Summary{}, err
	}

	maxTeamSize := 0
	for _, t := range req.Teams {
		if len(t) > maxTeamSize {
			maxTeamSize = len(t)
		}
	}
	users := genUsers(req.Users, ranks, teammatch.FindWeights(ranks, maxTeamSize))
	teams, err := genTeams(req.Teams, users)
	if err != nil {
		return nil, Summary{}, err
	}

	before := teammatch.CountPawned(teams)
	teammatch.TTCTrader(s.collector()).Trade(teams)

	summ := summarize(users, teams)
	summ.PawnedBefore = before
	return &Response{Teams: teamPIDs(teams), Users: req.Users}, summ, nil
}

// rankMatrix checks that pids are unique and rank vectors share a length.
func rankMatrix(users []User) ([][]int, error) {
	seen := make(map[PID]int, len(users))
	ranks := make([][]int, len(users))
	for i, u := range users {
		if j, ok := seen[u.PID]; ok {
			return nil, invalidf("users[%d] and users[%d] share pid %s", j, i, u.PID)
		}
		seen[u.PID] = i
		if len(u.Ranks) != len(users[0].Ranks) {
			return nil, invalidf("users[%d] ranks %d topics, users[0] ranks %d",
				i, len(u.Ranks), len(users[0].Ranks))
		}
		ranks[i] = u.Ranks
	}
	return ranks, nil
}

func genUsers(us []User, ranks [][]int, weights teammatch.Weights) []*teammatch.User {
	users := make([]*teammatch.User, len(us))
	for i, u := range us {
		history := make([]teammatch.PID, len(u.History))
		for j, h := range u.History {
			history[j] = teammatch.PID(h)
		}
		users[i] = teammatch.NewUser(teammatch.PID(u.PID), weights.Apply(ranks[i]), history)
	}
	return users
}

// genTeams resolves the pids of a partition. Every user must sit in
// exactly one team.
func genTeams(partition [][]PID, users []*teammatch.User) ([]*teammatch.Team, error) {
	placed := make(map[teammatch.PID]bool, len(users))
	teams := make([]*teammatch.Team, len(partition))
	for i, pids := range partition {
		members := make([]*teammatch.User, len(pids))
		for j, pid := range pids {
			u := teammatch.UserWithPID(users, teammatch.PID(pid))
			if u == nil {
				return nil, invalidf("teams[%d] names unknown user %s", i, pid)
			}
			if placed[u.PID] {
				return nil, invalidf("user %s is placed in more than one team", pid)
			}
			placed[u.PID] = true
			members[j] = u
		}
		teams[i] = teammatch.NewTeam(members...)
	}
	for _, u := range users {
		if !placed[u.PID] {
			return nil, invalidf("user %s is not placed in any team", u.PID)
		}
	}
	return teams, nil
}

func teamPIDs(teams []*teammatch.Team) [][]PID {
	out := make([][]PID, len(teams))
	for i, t := range teams {
		out[i] = make([]PID, t.Len())
		for j, pid := range t.PIDs() {
			out[i][j] = PID(pid)
		}
	}
	return out
}

func summarize(users []*teammatch.User, teams []*teammatch.Team) Summary {
	summ := Summary{
		Users:       len(users),
		Teams:       len(teams),
		PawnedAfter: teammatch.CountPawned(teams),
	}
	for _, u := range users {
		if u.Unbid() {
			summ.UnbidUsers++
		}
	}
	return summ
}
