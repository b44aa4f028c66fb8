// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teammatch

// point is a utility vector tagged with the index of its user.
type point struct {
	vec []float64
	idx int
}

// buildGroups splits points recursively until every group holds at most
// maxSize points, appending the groups to groups in depth-first order.
func buildGroups(c Clusterer, points []point, maxSize int, groups [][]point) [][]point {
	if len(points) == 0 {
		return groups
	}
	if len(points) <= maxSize {
		return append(groups, points)
	}
	c1, c2 := splitGroup(c, points)
	groups = buildGroups(c, c1, maxSize, groups)
	return buildGroups(c, c2, maxSize, groups)
}

// splitGroup divides points between the two centroids returned by c. A
// point equidistant from both joins the second. When c yields fewer than two
// centroids, fails, or leaves one side empty, the points are halved by order.
func splitGroup(c Clusterer, points []point) ([]point, []point) {
	vecs := make([][]float64, len(points))
	for i, p := range points {
		vecs[i] = p.vec
	}

	centroids, err := c.Centroids(vecs, 2)
	if err == nil && len(centroids) >= 2 {
		var c1, c2 []point
		for _, p := range points {
			if Distance(centroids[0], p.vec) < Distance(centroids[1], p.vec) {
				c1 = append(c1, p)
			} else {
				c2 = append(c2, p)
			}
		}
		if len(c1) > 0 && len(c2) > 0 {
			return c1, c2
		}
	}

	split := len(points) / 2
	return points[:split:split], points[split:]
}
