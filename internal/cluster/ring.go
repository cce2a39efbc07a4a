// Package cluster handles the distributed side of a node: the consistent-hash
// ring that decides key ownership, the pool of RPC channels to peers, and the
// coordinator that routes and replicates each request.
package cluster

import (
	"fmt"
	"sort"

	"github.com/spaolacci/murmur3"
)

// DefaultVnodes is the number of ring positions each physical node
// contributes. More positions smooth the key distribution across nodes.
const DefaultVnodes = 64

// Ring is the consistent-hash partitioner. It is built once at boot from the
// ordered membership list and never mutated afterwards, so it can be shared
// by reference across every request without locking. All nodes that build
// from the same membership list hold byte-identical rings; that agreement is
// what lets a node forward a request exactly one hop.
type Ring struct {
	vnodes    int
	members   []string
	positions []position
}

// position is one virtual node: where it hashes on the 64-bit ring, which
// physical node it belongs to, and the pre-hash label used to break the
// (astronomically rare) tie of two labels hashing to the same point.
type position struct {
	hash  uint64
	node  string
	label string
}

// BuildRing constructs a ring from the ordered membership list. Each member
// is inserted at vnodes positions obtained by hashing "member#i". Membership
// must be non-empty and free of duplicates; vnodes <= 0 selects
// DefaultVnodes.
func BuildRing(members []string, vnodes int) (*Ring, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("ring: empty membership list")
	}
	if vnodes <= 0 {
		vnodes = DefaultVnodes
	}

	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if m == "" {
			return nil, fmt.Errorf("ring: empty member id")
		}
		if seen[m] {
			return nil, fmt.Errorf("ring: duplicate member %q", m)
		}
		seen[m] = true
	}

	r := &Ring{
		vnodes:    vnodes,
		members:   append([]string(nil), members...),
		positions: make([]position, 0, len(members)*vnodes),
	}
	for _, m := range members {
		for i := 0; i < vnodes; i++ {
			label := fmt.Sprintf("%s#%d", m, i)
			r.positions = append(r.positions, position{
				hash:  hash64(label),
				node:  m,
				label: label,
			})
		}
	}
	sort.Slice(r.positions, func(i, j int) bool {
		a, b := r.positions[i], r.positions[j]
		if a.hash != b.hash {
			return a.hash < b.hash
		}
		return a.label < b.label
	})
	return r, nil
}

// Owner returns the primary owner of key: the node at the first ring
// position clockwise from the key's hash.
func (r *Ring) Owner(key string) string {
	return r.Successors(key, 1)[0]
}

// Successors returns the first min(count, |members|) distinct physical nodes
// clockwise from the key's position. The first entry is the owner. The result
// is deterministic and identical on every node holding the same ring.
func (r *Ring) Successors(key string, count int) []string {
	if count > len(r.members) {
		count = len(r.members)
	}

	h := hash64(key)
	idx := sort.Search(len(r.positions), func(i int) bool {
		return r.positions[i].hash >= h
	})
	if idx == len(r.positions) {
		idx = 0 // wrap past the top of the hash space
	}

	seen := make(map[string]bool, count)
	out := make([]string, 0, count)
	for i := 0; i < len(r.positions) && len(out) < count; i++ {
		node := r.positions[(idx+i)%len(r.positions)].node
		if !seen[node] {
			seen[node] = true
			out = append(out, node)
		}
	}
	return out
}

// Members returns the membership list the ring was built from.
func (r *Ring) Members() []string {
	return append([]string(nil), r.members...)
}

// Size returns the number of physical nodes.
func (r *Ring) Size() int {
	return len(r.members)
}

// hash64 is the ring's hash function: murmur3 x64 128-bit, low word. It is
// used both for vnode placement and for key lookup, and must never change
// independently on one node.
func hash64(s string) uint64 {
	h, _ := murmur3.Sum128([]byte(s))
	return h
}
