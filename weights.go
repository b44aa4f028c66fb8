// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

import "math"

// Weights maps a rank level to its utility weight; Weights[r-1] is the
// weight of rank r. Ranks outside 1..len(Weights) weigh 0.
type Weights []float64

// Of returns the weight of rank.
func (w Weights) Of(rank int) float64 {
	if rank < 1 || rank > len(w) {
		return 0
	}
	return w[rank-1]
}

// Apply maps a user's raw ranks to a utility vector.
func (w Weights) Apply(ranks []int) []float64 {
	v := make([]float64, len(ranks))
	for i, r := range ranks {
		v[i] = w.Of(r)
	}
	return v
}

// FindWeights derives a weight for every rank level seen in ranks, where
// ranks[u][t] is user u's rank of topic t (1 is the most preferred, 0 is
// unranked). A level is worth its benefit divided by its cost.
func FindWeights(ranks [][]int, maxTeamSize int) Weights {
	maxRank, topics := 0, 0
	for _, row := range ranks {
		if len(row) > topics {
			topics = len(row)
		}
		for _, r := range row {
			if r > maxRank {
				maxRank = r
			}
		}
	}
	if maxRank == 0 || topics == 0 || maxTeamSize < 1 {
		return Weights{}
	}

	// votes[level-1][topic]
	votes := make([][]int, maxRank)
	for i := range votes {
		votes[i] = make([]int, topics)
	}
	for _, row := range ranks {
		for t, r := range row {
			if r >= 1 {
				votes[r-1][t]++
			}
		}
	}

	w := make(Weights, maxRank)
	for i := range w {
		level := i + 1
		w[i] = rankBenefit(votes[i], level, maxRank, maxTeamSize) /
			rankCost(votes[i], maxTeamSize)
	}
	return w
}

// rankCost measures how far the topics voted at one level are from filling
// exactly one team each.
func rankCost(votes []int, maxTeamSize int) float64 {
	sum, n := 0, 0
	for _, c := range votes {
		if c > 0 {
			sum += int(math.Abs(float64(maxTeamSize - c)))
			n++
		}
	}
	if sum == 0 {
		sum = 1
		n++
	}
	return float64(sum) / float64(maxTeamSize*n)
}

// rankBenefit averages the votes at one level across topics, capped at one
// team per topic, and scales earlier levels up.
func rankBenefit(votes []int, level, maxRank, maxTeamSize int) float64 {
	sum := 0
	for _, c := range votes {
		if c > maxTeamSize {
			c = maxTeamSize
		}
		sum += c
	}
	return float64(maxRank) / float64(level) * float64(sum) / float64(len(votes))
}
