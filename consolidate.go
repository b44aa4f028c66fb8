// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

// Consolidate greedily merges undersized teams. Each team, in list order,
// absorbs the other teams in order of centroid proximity whenever the merged
// size stays within maxTeamSize. Absorbed teams are removed from the list.
// When it returns no two remaining teams fit together.
func Consolidate(teams []*Team, maxTeamSize int) []*Team {
	for i := 0; i < len(teams); i++ {
		team := teams[i]
		for _, other := range team.TeamPrefs(teams) {
			if other == team || team.Len()+other.Len() > maxTeamSize {
				continue
			}
			j := teamIndex(teams, other)
			if j < 0 {
				continue
			}
			team.MergeWith(other)
			teams = append(teams[:j], teams[j+1:]...)
			if j < i {
				i--
			}
		}
	}
	return teams
}

func teamIndex(teams []*Team, t *Team) int {
	for i, o := range teams {
		if o == t {
			return i
		}
	}
	return -1
}
