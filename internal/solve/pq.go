package solve

import "github.com/Paralands/maze-searcher/internal/core"

type frontierItem struct {
	cell core.Cell
	g    int
	f    int
	seq  int
	idx  int
}

// frontier is a min-heap ordered by (f, g, insertion order). The insertion
// sequence makes tie-breaking deterministic for a fixed maze.
type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].idx = i
	q[j].idx = j
}

func (q *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.idx = len(*q)
	*q = append(*q, item)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
