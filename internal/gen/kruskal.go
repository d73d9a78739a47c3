package gen

import "github.com/Paralands/maze-searcher/internal/core"

type wallEdge struct {
	wall, a, b core.Cell
}

// Kruskal builds a maze by shuffling the full list of walls between adjacent
// lattice cells and carving every wall whose endpoints are not yet connected.
// Edges joining already-connected cells are skipped internally within the same
// step, so every emitted snapshot shows a new carve; one extra final snapshot
// is emitted at exhaustion.
type Kruskal struct {
	size  int
	grid  *core.Grid
	edges []wallEdge
	sets  *unionFind
	idx   int
	final bool
}

// NewKruskal returns a Kruskal generator for an n×n grid.
func NewKruskal(n int, rng core.Rand) *Kruskal {
	k := &Kruskal{size: n, grid: core.NewGrid(n)}
	// Every lattice cell starts as a path in its own set.
	for r := 1; r < n; r += 2 {
		for c := 1; c < n; c += 2 {
			k.grid.Set(r, c, core.Path)
		}
	}
	k.sets = newUnionFind((n / 2) * (n / 2))
	for r := 1; r < n; r += 2 {
		for c := 1; c < n; c += 2 {
			if r < n-2 {
				k.edges = append(k.edges, wallEdge{
					wall: core.Cell{Row: r + 1, Col: c},
					a:    core.Cell{Row: r, Col: c},
					b:    core.Cell{Row: r + 2, Col: c},
				})
			}
			if c < n-2 {
				k.edges = append(k.edges, wallEdge{
					wall: core.Cell{Row: r, Col: c + 1},
					a:    core.Cell{Row: r, Col: c},
					b:    core.Cell{Row: r, Col: c + 2},
				})
			}
		}
	}
	rng.Shuffle(len(k.edges), func(i, j int) {
		k.edges[i], k.edges[j] = k.edges[j], k.edges[i]
	})
	return k
}

// Next carves the next connecting wall, or emits the final snapshot once the
// edge list is exhausted.
func (k *Kruskal) Next() (*core.Grid, bool) {
	for k.idx < len(k.edges) {
		e := k.edges[k.idx]
		k.idx++
		if k.sets.union(k.latticeIndex(e.a), k.latticeIndex(e.b)) {
			k.grid.Set(e.wall.Row, e.wall.Col, core.Path)
			return k.grid.Clone(), true
		}
	}
	if !k.final {
		k.final = true
		return k.grid.Clone(), true
	}
	return nil, false
}

// latticeIndex linearizes an odd-indexed lattice coordinate.
func (k *Kruskal) latticeIndex(c core.Cell) int {
	return (c.Row-1)/2*(k.size/2) + (c.Col-1)/2
}

// unionFind is a disjoint-set forest stored as dense integer arenas, with
// path compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union merges the sets holding a and b and reports whether they were
// previously disjoint.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true
}

func init() {
	core.RegisterGenerator("kruskal", func(size int, rng core.Rand) core.Stepper {
		return NewKruskal(size, rng)
	})
}
