// SPDX-License-Identifier: MIT

package tilemap

import "container/list"

// Networks finds every connected group of road tiles. Each network is a
// slice of row-major tile indices in BFS order; networks are ordered by their
// first tile in scan order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (m *Map) Networks() [][]int {
	seen := make([]bool, m.Width*m.Height)
	var nets [][]int

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i0 := m.index(x, y)
			if !m.IsRoad(x, y) || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := m.Coordinate(queue[qi])
				for _, d := range m.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !m.IsRoad(vx, vy) {
						continue
					}
					if vi := m.index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			nets = append(nets, queue)
		}
	}
	return nets
}

// Connect finds the fewest ground tiles to pave so that network src joins
// network dst, as numbered by Networks. It returns the tile path from a src
// tile to a dst tile, both included, and the number of ground tiles on it.
//
// Multi-source 0–1 BFS from every src tile:
//   - stepping onto a road tile costs 0 (pushed to the front);
//   - stepping onto ground costs 1 (pushed to the back).
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (m *Map) Connect(src, dst int) (path []int, cost int, err error) {
	nets := m.Networks()
	if src < 0 || src >= len(nets) || dst < 0 || dst >= len(nets) {
		return nil, 0, ErrNetworkIndex
	}
	target := make(map[int]bool, len(nets[dst]))
	for _, i := range nets[dst] {
		target[i] = true
	}

	n := m.Width * m.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i], prev[i] = inf, -1
	}

	dq := list.New()
	for _, i := range nets[src] {
		dist[i] = 0
		dq.PushFront(i)
	}

	found := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if target[u] {
			found = u
			break
		}
		ux, uy := m.Coordinate(u)
		for _, d := range m.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !m.InBounds(vx, vy) {
				continue
			}
			v := m.index(vx, vy)
			step := 1
			if m.IsRoad(vx, vy) {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v], prev[v] = nd, u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if found < 0 {
		return nil, 0, ErrNoPath
	}
	for at := found; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[found], nil
}

// Pave returns a copy of m with every tile in path set to RoadThreshold when
// it is not road already. Out-of-range indices are ignored.
func (m *Map) Pave(path []int) *Map {
	out, _ := New(m.Cells, m.opts)
	for _, i := range path {
		if i < 0 || i >= m.Width*m.Height {
			continue
		}
		x, y := m.Coordinate(i)
		if !out.IsRoad(x, y) {
			out.Cells[y][x] = m.opts.RoadThreshold
		}
	}
	return out
}
