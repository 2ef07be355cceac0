package galaxygen

// unionFind is a standard disjoint-set over system indices with iterative
// path compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
	sets   int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{
		parent: parent,
		rank:   make([]int, n),
		sets:   n,
	}
}

func (u *unionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

// Union merges the sets of x and y; returns false when they were already in
// the same set.
func (u *unionFind) Union(x, y int) bool {
	px, py := u.Find(x), u.Find(y)
	if px == py {
		return false
	}
	switch {
	case u.rank[px] < u.rank[py]:
		u.parent[px] = py
	case u.rank[px] > u.rank[py]:
		u.parent[py] = px
	default:
		u.parent[py] = px
		u.rank[px]++
	}
	u.sets--
	return true
}

// Components returns the number of disjoint sets.
func (u *unionFind) Components() int {
	return u.sets
}
