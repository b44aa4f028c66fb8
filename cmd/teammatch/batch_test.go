// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/someonegg/teammatch/service"
)

const scenarioUsers = `[
	{"pid": 1023, "ranks": [1, 0, 2, 3], "history": [4535, 9841, 9843]},
	{"pid": 4535, "ranks": [1, 2, 0, 3], "history": [1023, 9843, 8542]},
	{"pid": 1363, "ranks": [0, 2, 3, 1], "history": [3649, 9841, 9843]},
	{"pid": 9841, "ranks": [2, 1, 0, 3], "history": [1363, 1023, 3649]}
]`

func readTeams(t *testing.T, file string) [][]int {
	t.Helper()
	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var resp struct {
		Teams [][]int `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp.Teams
}

func TestDoForm(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "request.json")
	out := filepath.Join(dir, "teams.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"users": `+scenarioUsers+`, "max_team_size": 4}`), 0644))

	require.NoError(t, doForm(in, out, 0, false))
	assert.Equal(t, [][]int{{1023, 4535, 1363, 9841}}, readTeams(t, out))

	require.NoError(t, doForm(in, out, 2, false))
	assert.Equal(t, [][]int{{1363, 9841}, {1023, 4535}}, readTeams(t, out))
}

func TestDoSwap(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "request.json")
	out := filepath.Join(dir, "teams.json")

	require.NoError(t, os.WriteFile(in, []byte(`{"users": `+scenarioUsers+`, "teams": [[1363, 9841], [1023, 4535]]}`), 0644))
	require.NoError(t, doSwap(in, out, false))
	assert.Equal(t, [][]int{{9841, 4535}, {1023, 1363}}, readTeams(t, out))

	require.NoError(t, os.WriteFile(in, []byte(`{"users": `+scenarioUsers+`, "teams": [[1023, 2549]]}`), 0644))
	assert.ErrorIs(t, doSwap(in, out, false), service.ErrInvalidRequest)

	assert.Error(t, doSwap(filepath.Join(dir, "missing.json"), out, false))
}
