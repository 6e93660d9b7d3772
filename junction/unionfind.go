package junction

// disjointSet is a union-find forest over identities [0, n) with path
// halving and union by size.
type disjointSet struct {
	parent []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds
}

// find returns the root of u's tree. Iterative to avoid deep recursion.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		// Point u at its grandparent while walking up.
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union links the trees rooted at ru and rv (both must be roots) and
// returns the surviving root. The larger tree keeps its root.
func (ds *disjointSet) union(ru, rv int) int {
	if ru == rv {
		return ru
	}
	if ds.size[ru] < ds.size[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	ds.size[ru] += ds.size[rv]

	return ru
}
