// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package service uses teammatch to form teams and trade team members for
// decoded job requests.
package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidRequest marks requests rejected before reaching the algorithms.
var ErrInvalidRequest = errors.New("invalid request")

// PID keeps the JSON text of an identifier, so numbers and strings come
// back exactly as they were sent.
type PID string

func (p *PID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}

	switch c := b[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*p = ""
			return nil
		}
	case c == '-' || c >= '0' && c <= '9':
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
	default:
		return fmt.Errorf("pid must be a number or a string, got %s", b)
	}

	*p = PID(b)
	return nil
}

func (p PID) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("null"), nil
	}
	return []byte(p), nil
}

type User struct {
	PID     PID   `json:"pid" validate:"required"`
	Ranks   []int `json:"ranks" validate:"required,min=1,dive,gte=0"`
	History []PID `json:"history,omitempty"`
}

// MergeRequest asks for an initial partition of users.
type MergeRequest struct {
	Users       []User `json:"users" validate:"required,dive"`
	MaxTeamSize int    `json:"max_team_size" validate:"required,gte=1"`
}

// SwapRequest asks to trade members of an existing partition. Every user
// must carry a history, possibly empty.
type SwapRequest struct {
	Users []User  `json:"users" validate:"required,dive"`
	Teams [][]PID `json:"teams" validate:"required,dive,min=1,dive,required"`
}

// Response is the resulting partition, teams in order and members in
// insertion order, together with the users as received.
type Response struct {
	Teams [][]PID `json:"teams"`
	Users []User  `json:"users"`
}

type Summary struct {
	Users        int `json:"users"`
	Teams        int `json:"teams"`
	UnbidUsers   int `json:"unbid_users"`
	PawnedBefore int `json:"pawned_before"`
	PawnedAfter  int `json:"pawned_after"`
}
