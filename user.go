// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

import "strings"

// User is a person to be placed in a team.
type User struct {
	PID PID
	// TopicRank holds one utility weight per topic, see Weights.Apply.
	TopicRank []float64
	History   map[PID]struct{}
}

func NewUser(pid PID, topicRank []float64, history []PID) *User {
	h := make(map[PID]struct{}, len(history))
	for _, p := range history {
		h[p] = struct{}{}
	}
	return &User{
		PID:       pid,
		TopicRank: topicRank,
		History:   h,
	}
}

func (u *User) String() string {
	return string(u.PID)
}

// WorkedWith reports whether other is in u's history. The check is one way.
func (u *User) WorkedWith(other *User) bool {
	_, ok := u.History[other.PID]
	return ok
}

// Unbid reports whether u has no utility for any topic.
func (u *User) Unbid() bool {
	for _, v := range u.TopicRank {
		if v != 0 {
			return false
		}
	}
	return true
}

// UserWithPID returns the user with the given pid, or nil.
func UserWithPID(users []*User, pid PID) *User {
	for _, u := range users {
		if u.PID == pid {
			return u
		}
	}
	return nil
}

func joinPIDs(users []*User) string {
	ss := make([]string, len(users))
	for i, u := range users {
		ss[i] = string(u.PID)
	}
	return strings.Join(ss, ",")
}
