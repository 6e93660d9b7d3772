package junction

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Circuit is a connected group of boxes: its member identities plus the
// links recorded between them. Links are symmetric: if a is linked to b,
// b is linked to a.
type Circuit struct {
	members mapset.Set[int]
	links   map[int]mapset.Set[int]
}

func newCircuit() *Circuit {
	return &Circuit{
		members: mapset.NewThreadUnsafeSet[int](),
		links:   make(map[int]mapset.Set[int]),
	}
}

// Singleton returns a circuit holding only id, without links.
func Singleton(id int) *Circuit {
	c := newCircuit()
	c.members.Add(id)

	return c
}

// Merge returns a new circuit whose members and links are the unions of
// the inputs'. The inputs are left untouched.
// Returns ErrEmptyMerge when called without circuits.
func Merge(circuits ...*Circuit) (*Circuit, error) {
	if len(circuits) == 0 {
		return nil, ErrEmptyMerge
	}
	merged := newCircuit()
	for _, c := range circuits {
		merged.absorb(c)
	}

	return merged, nil
}

// Size returns the member count.
func (c *Circuit) Size() int {
	return c.members.Cardinality()
}

// Contains reports whether id is a member. O(1) expected.
func (c *Circuit) Contains(id int) bool {
	return c.members.Contains(id)
}

// Connect adds a and b as members and links them both ways.
// Connecting a box to itself only adds the member.
func (c *Circuit) Connect(a, b int) {
	c.members.Add(a)
	c.members.Add(b)
	if a == b {
		return
	}
	c.link(a, b)
	c.link(b, a)
}

// Linked reports whether a direct link between a and b was recorded.
func (c *Circuit) Linked(a, b int) bool {
	adj, ok := c.links[a]
	return ok && adj.Contains(b)
}

// Members returns the member identities in ascending order.
func (c *Circuit) Members() []int {
	out := c.members.ToSlice()
	sort.Ints(out)

	return out
}

// Neighbors returns the identities directly linked to id, ascending.
func (c *Circuit) Neighbors(id int) []int {
	adj, ok := c.links[id]
	if !ok {
		return nil
	}
	out := adj.ToSlice()
	sort.Ints(out)

	return out
}

// Links returns the number of distinct undirected links.
func (c *Circuit) Links() int {
	total := 0
	for _, adj := range c.links {
		total += adj.Cardinality()
	}
	return total / 2
}

// Reachable returns every identity reachable from id through recorded
// links, id included, in ascending order. Returns nil if id is not a member.
// For circuits built by a Connector this equals Members().
func (c *Circuit) Reachable(id int) []int {
	if !c.members.Contains(id) {
		return nil
	}
	seen := map[int]bool{id: true}
	queue := []int{id}
	for qi := 0; qi < len(queue); qi++ {
		adj, ok := c.links[queue[qi]]
		if !ok {
			continue
		}
		adj.Each(func(next int) bool {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
			return false
		})
	}
	sort.Ints(queue)

	return queue
}

// smallest returns the lowest member identity, or -1 for an empty circuit.
func (c *Circuit) smallest() int {
	low := -1
	c.members.Each(func(id int) bool {
		if low < 0 || id < low {
			low = id
		}
		return false
	})
	return low
}

func (c *Circuit) link(from, to int) {
	adj, ok := c.links[from]
	if !ok {
		adj = mapset.NewThreadUnsafeSet[int]()
		c.links[from] = adj
	}
	adj.Add(to)
}

// absorb adds other's members and links to c in place.
func (c *Circuit) absorb(other *Circuit) {
	other.members.Each(func(id int) bool {
		c.members.Add(id)
		return false
	})
	for from, adj := range other.links {
		adj.Each(func(to int) bool {
			c.link(from, to)
			return false
		})
	}
}
