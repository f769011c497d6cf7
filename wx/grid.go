// wx/grid.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import (
	"slices"

	"github.com/mmp/preflight/math"
)

// StationWinds holds one station's forecast: its location and its wind
// layers, sorted by altitude.
type StationWinds struct {
	ID       string
	Location math.Point2LL
	Layers   []WindLayer
}

type windTreeNode struct {
	Children  [2]*windTreeNode
	Station   StationWinds
	SplitAxis int
}

// WindGrid holds the decoded winds aloft forecast for one planning
// session: a kd-tree over the forecast stations for nearest-station
// lookups. It is built once from fetched forecast text and read-only
// afterwards, so it may be shared freely while a plan is computed.
type WindGrid struct {
	root      *windTreeNode
	byStation map[string]*windTreeNode
}

// MakeWindGrid builds a grid from the given stations' forecasts. The
// layers of each station are sorted by altitude; stations without any
// layers are dropped.
func MakeWindGrid(stations []StationWinds) *WindGrid {
	g := &WindGrid{byStation: make(map[string]*windTreeNode)}

	var nodes []*windTreeNode
	for _, st := range stations {
		if len(st.Layers) == 0 {
			continue
		}
		st.Layers = slices.Clone(st.Layers)
		slices.SortFunc(st.Layers, func(a, b WindLayer) int { return int(a.Altitude - b.Altitude) })

		n := &windTreeNode{Station: st}
		nodes = append(nodes, n)
		g.byStation[st.ID] = n
	}

	var buildTree func(nodes []*windTreeNode, axis int) *windTreeNode
	buildTree = func(nodes []*windTreeNode, axis int) *windTreeNode {
		if len(nodes) == 0 {
			return nil
		}

		cur := nodes[0]

		// Partition
		var n0, n1 []*windTreeNode
		for _, node := range nodes[1:] {
			if node.Station.Location[axis] < cur.Station.Location[axis] {
				n0 = append(n0, node)
			} else {
				n1 = append(n1, node)
			}
		}

		cur.SplitAxis = axis
		cur.Children[0] = buildTree(n0, (axis+1)%2)
		cur.Children[1] = buildTree(n1, (axis+1)%2)

		return cur
	}
	g.root = buildTree(nodes, 0)

	return g
}

func (g *WindGrid) HaveStation(id string) bool {
	_, ok := g.byStation[id]
	return ok
}

// StationWindAt returns the wind at the given altitude from a single
// station's forecast, with no spatial blending.
func (g *WindGrid) StationWindAt(id string, alt float32) (Wind, error) {
	n, ok := g.byStation[id]
	if !ok {
		return Wind{}, ErrUnknownStation
	}
	w := interpolateLayers(alt, n.Station.Layers)
	w.Station = id
	return w, nil
}

// WindAt returns the forecast wind at the given position and altitude.
// The two nearest stations are found and their altitude-interpolated
// winds blended, weighted by inverse distance; if only one station is
// available its wind is used directly.
func (g *WindGrid) WindAt(p math.Point2LL, alt float32) (Wind, error) {
	if g.root == nil {
		return Wind{}, ErrNoWindData
	}

	nmPerLongitude := math.NMPerLongitudeAt(p)

	// Find the two nearest stations.
	const nw = 2
	var near [nw]*windTreeNode
	var dist [nw]float32
	var search func(node *windTreeNode)
	search = func(node *windTreeNode) {
		if node == nil {
			return
		}

		d := math.NMDistance2LLFast(p, node.Station.Location, nmPerLongitude)
		for i := range nw {
			if near[i] == nil || d < dist[i] {
				// Sort by distance, low to high
				for j := nw - 1; j > i; j-- {
					near[j], dist[j] = near[j-1], dist[j-1]
				}
				near[i] = node
				dist[i] = d
				break
			}
		}

		// Always recurse on the side of the lookup point; do this first to
		// try to bring down the maximum distance.
		below := p[node.SplitAxis] < node.Station.Location[node.SplitAxis]
		if below {
			search(node.Children[0])
		} else {
			search(node.Children[1])
		}

		// Recurse on the other side if near[]/dist[] aren't yet filled and
		// otherwise depending on the maximum distance to what we have
		// found compared to the distance to the split plane.
		recurse := near[nw-1] == nil ||
			math.Abs(p[node.SplitAxis]-node.Station.Location[node.SplitAxis])*nmPerLongitude < dist[nw-1]
		if recurse && below {
			search(node.Children[1])
		} else if recurse {
			search(node.Children[0])
		}
	}
	search(g.root)

	w0 := interpolateLayers(alt, near[0].Station.Layers)
	w0.Station = near[0].Station.ID
	if near[1] == nil {
		return w0, nil
	}

	w1 := interpolateLayers(alt, near[1].Station.Layers)

	// Inverse-distance weights; t is the share of the farther station.
	wt0, wt1 := 1/max(0.01, dist[0]), 1/max(0.01, dist[1])
	t := wt1 / (wt0 + wt1)

	blended := Wind{
		Speed:   math.Lerp(t, w0.Speed, w1.Speed),
		Clamped: w0.Clamped || w1.Clamped,
		Station: w0.Station,
	}
	switch {
	case w0.Variable && w1.Variable:
		blended.Variable = true
	case w0.Variable:
		blended.Direction = w1.Direction
	case w1.Variable:
		blended.Direction = w0.Direction
	default:
		blended.Direction = math.LerpHeading(t, w0.Direction, w1.Direction)
	}
	if w0.TempValid && w1.TempValid {
		blended.Temperature = math.Lerp(t, w0.Temperature, w1.Temperature)
		blended.TempValid = true
	} else if w0.TempValid {
		blended.Temperature = w0.Temperature
		blended.TempValid = true
	} else if w1.TempValid {
		blended.Temperature = w1.Temperature
		blended.TempValid = true
	}

	return blended, nil
}
