// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

type clusterFormer struct {
	maxSize   int
	clusterer Clusterer
	collector Collector
}

// ClusterFormer returns a Former that bisects users with clusterer until
// every team fits maxTeamSize, then merges undersized teams. A nil collector
// discards events.
func ClusterFormer(maxTeamSize int, clusterer Clusterer, collector Collector) Former {
	if maxTeamSize < 1 {
		maxTeamSize = 1
	}
	if collector == nil {
		collector = NopCollector
	}
	return clusterFormer{maxTeamSize, clusterer, collector}
}

func (f clusterFormer) Form(users []*User) []*Team {
	var unbid []PID
	points := make([]point, len(users))
	for i, u := range users {
		if u.Unbid() {
			unbid = append(unbid, u.PID)
		}
		points[i] = point{vec: u.TopicRank, idx: i}
	}
	f.collector.UnbidUsers(unbid)

	groups := buildGroups(f.clusterer, points, f.maxSize, nil)

	teams := make([]*Team, len(groups))
	for i, g := range groups {
		members := make([]*User, len(g))
		for j, p := range g {
			members[j] = users[p.idx]
		}
		teams[i] = NewTeam(members...)
	}

	return Consolidate(teams, f.maxSize)
}
