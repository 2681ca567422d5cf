package gridgraph

import (
	"container/list"
)

// ExpandIsland finds a minimum-conversion path of water cells connecting
// any cell of island srcIdx to any cell of island dstIdx, as numbered by
// Islands(). Each water cell on the path costs 1.
// Returns the path (including the start and end land cells) and its cost.
//
// Behavior:
//  1. Validate island indices (ErrComponentIndex).
//  2. Multi-source 0-1 BFS from every srcIdx cell:
//     • moving into a land cell  → cost 0
//     • moving into a water cell → cost 1
//  3. Stop when any dstIdx cell is dequeued.
//  4. Reconstruct the path from predecessor links.
//
// Complexity: O(W·H·d), Memory: O(W·H).
func (g *Grid) ExpandIsland(srcIdx, dstIdx int) (path []Cell, cost int, err error) {
	islands := g.Islands()
	if srcIdx < 0 || srcIdx >= len(islands) || dstIdx < 0 || dstIdx >= len(islands) {
		return nil, 0, ErrComponentIndex
	}

	dstSet := make(map[int]struct{}, len(islands[dstIdx]))
	for _, c := range islands[dstIdx] {
		dstSet[g.index(c.Row, c.Col)] = struct{}{}
	}

	n := g.width * len(g.rows)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back
	dq := list.New()
	for _, c := range islands[srcIdx] {
		i := g.index(c.Row, c.Col)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		uc := g.cell(u)
		for _, d := range g.neighborOffsets {
			vr, vc := uc.Row+d[0], uc.Col+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			v := g.index(vr, vc)
			step := 0
			if g.rows[vr][vc] == g.water {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if target < 0 {
		return nil, 0, ErrNoPath
	}

	for at := target; at >= 0; at = prev[at] {
		path = append([]Cell{g.cell(at)}, path...)
	}

	return path, dist[target], nil
}
