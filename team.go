// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Team holds non-owning references to its members. A user belongs to
// exactly one team at a time; moves go through TakeUserFrom and MergeWith,
// which remove the user from the source before adding it here.
type Team struct {
	Members []*User
}

func NewTeam(members ...*User) *Team {
	return &Team{Members: members}
}

func (t *Team) String() string {
	return joinPIDs(t.Members)
}

func (t *Team) Len() int {
	return len(t.Members)
}

func (t *Team) PIDs() []PID {
	pids := make([]PID, len(t.Members))
	for i, m := range t.Members {
		pids[i] = m.PID
	}
	return pids
}

// Distance returns the Euclidean distance between a and b.
// It panics if the lengths differ.
func Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Centroid returns the element-wise mean of the members' utility vectors.
// It panics on an empty team.
func (t *Team) Centroid() []float64 {
	if len(t.Members) == 0 {
		panic("teammatch: centroid of an empty team")
	}
	c := make([]float64, len(t.Members[0].TopicRank))
	for _, m := range t.Members {
		floats.Add(c, m.TopicRank)
	}
	floats.Scale(1/float64(len(t.Members)), c)
	return c
}

// Pawned returns the users of t plus extra who have worked with another
// user of that combined set before.
func (t *Team) Pawned(extra ...*User) []*User {
	combined := make([]*User, 0, len(t.Members)+len(extra))
	combined = append(combined, t.Members...)
	combined = append(combined, extra...)

	var pawned []*User
	for _, u := range combined {
		if u == nil {
			continue
		}
		for _, o := range combined {
			if o == nil || o.PID == u.PID {
				continue
			}
			if u.WorkedWith(o) {
				pawned = append(pawned, u)
				break
			}
		}
	}
	return pawned
}

// wouldPawn reports whether pairing u with t re-creates a past
// collaboration, in either direction as stored.
func (t *Team) wouldPawn(u *User) bool {
	for _, m := range t.Members {
		if m.PID == u.PID {
			continue
		}
		if u.WorkedWith(m) || m.WorkedWith(u) {
			return true
		}
	}
	return false
}

// UserPrefs returns users ordered by how much t wants them: nearest to the
// centroid first, and on equal distance the ones that pawn nobody first.
// The order is stable.
func (t *Team) UserPrefs(users []*User) []*User {
	type pref struct {
		user  *User
		dist  float64
		pawns bool
	}

	c := t.Centroid()
	ps := make([]pref, len(users))
	for i, u := range users {
		ps[i] = pref{u, Distance(c, u.TopicRank), t.wouldPawn(u)}
	}

	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].dist < ps[j].dist ||
			ps[i].dist == ps[j].dist && !ps[i].pawns && ps[j].pawns
	})

	sorted := make([]*User, len(ps))
	for i := range ps {
		sorted[i] = ps[i].user
	}
	return sorted
}

// TeamPrefs returns teams ordered by centroid distance to t, nearest first.
// The order is stable.
func (t *Team) TeamPrefs(teams []*Team) []*Team {
	c := t.Centroid()
	dist := make(map[*Team]float64, len(teams))
	for _, o := range teams {
		dist[o] = Distance(c, o.Centroid())
	}

	sorted := make([]*Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dist[sorted[i]] < dist[sorted[j]]
	})
	return sorted
}

func (t *Team) indexOf(u *User) int {
	for i, m := range t.Members {
		if m == u {
			return i
		}
	}
	return -1
}

// TakeUserFrom moves u from src to the end of t. It reports false, and
// changes nothing, if u is not a member of src.
func (t *Team) TakeUserFrom(src *Team, u *User) bool {
	i := src.indexOf(u)
	if i < 0 {
		return false
	}
	src.Members = append(src.Members[:i], src.Members[i+1:]...)
	t.Members = append(t.Members, u)
	return true
}

// MergeWith moves all members of other to the end of t, leaving other empty.
func (t *Team) MergeWith(other *Team) {
	members := other.Members
	other.Members = nil
	t.Members = append(t.Members, members...)
}

// TeamWithUser returns the team in teams that holds u, or nil.
func TeamWithUser(teams []*Team, u *User) *Team {
	for _, t := range teams {
		if t.indexOf(u) >= 0 {
			return t
		}
	}
	return nil
}
