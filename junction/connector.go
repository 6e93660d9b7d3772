package junction

import (
	"sort"

	"github.com/pkg/errors"
)

// Connector maintains the partition of boxes [0, n) into disjoint circuits
// while pairs are applied. It exclusively owns its circuits; each policy run
// needs its own Connector.
//
// Circuits are resolved through a disjoint-set forest and merged
// smaller-into-larger in place. The observable sizes, memberships and links
// are those of rebuilding the collection with Merge after every pair.
type Connector struct {
	forest   *disjointSet
	circuits map[int]*Circuit // keyed by forest root
}

// NewConnector returns a Connector with n singleton circuits.
func NewConnector(n int) *Connector {
	c := &Connector{
		forest:   newDisjointSet(n),
		circuits: make(map[int]*Circuit, n),
	}
	for id := 0; id < n; id++ {
		c.circuits[id] = Singleton(id)
	}

	return c
}

// ApplyEdge links a and b.
//
// Steps:
//  1. Resolve the circuits holding a and b.
//  2. Same circuit: record the link; the circuit count is unchanged.
//  3. Different circuits: merge them into one circuit carrying the new
//     link; the circuit count drops by one.
//
// Returns joined=true in case 3, and ErrIdentityOutOfRange for invalid ids.
func (c *Connector) ApplyEdge(a, b int) (joined bool, err error) {
	if err = c.check(a); err != nil {
		return false, err
	}
	if err = c.check(b); err != nil {
		return false, err
	}

	ra, rb := c.forest.find(a), c.forest.find(b)
	if ra == rb {
		c.circuits[ra].Connect(a, b)
		return false, nil
	}

	// Merge the smaller circuit into the larger one.
	big, small := c.circuits[ra], c.circuits[rb]
	if big.Size() < small.Size() {
		big, small = small, big
	}
	big.absorb(small)
	big.Connect(a, b)

	delete(c.circuits, ra)
	delete(c.circuits, rb)
	c.circuits[c.forest.union(ra, rb)] = big

	return true, nil
}

// Len returns the current number of circuits.
func (c *Connector) Len() int {
	return len(c.circuits)
}

// Sizes returns the circuit sizes, largest first.
func (c *Connector) Sizes() []int {
	sizes := make([]int, 0, len(c.circuits))
	for _, circuit := range c.circuits {
		sizes = append(sizes, circuit.Size())
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// Circuits returns the current circuits ordered by their smallest member.
// The circuits stay owned by the Connector and change with later edges.
func (c *Connector) Circuits() []*Circuit {
	out := make([]*Circuit, 0, len(c.circuits))
	for _, circuit := range c.circuits {
		out = append(out, circuit)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].smallest() < out[j].smallest()
	})

	return out
}

// CircuitOf returns the circuit holding id.
func (c *Connector) CircuitOf(id int) (*Circuit, error) {
	if err := c.check(id); err != nil {
		return nil, err
	}
	return c.circuits[c.forest.find(id)], nil
}

func (c *Connector) check(id int) error {
	if id < 0 || id >= len(c.forest.parent) {
		return errors.Wrapf(ErrIdentityOutOfRange, "id %d, %d boxes", id, len(c.forest.parent))
	}
	return nil
}
