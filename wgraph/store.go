package wgraph

import (
	"fmt"
	"sync"

	"github.com/waresys/pickpath/core"
)

// Store is the in-memory Graph Store: a *core.Graph for CONNECTED_TO
// topology plus an independent inventory ledger. It is safe for
// concurrent use; reads never block other reads, and the two concerns
// (topology, inventory) are guarded by separate locks so a ShortestDistances
// call never contends with an inventory lookup.
type Store struct {
	g *core.Graph

	muInv     sync.RWMutex
	inventory map[string]map[string]int64 // storageID -> productID -> quantity
}

// NewStore constructs an empty Graph Store. The underlying graph is
// directed and weighted: CONNECTED_TO edges are one-way unless the
// caller adds both directions explicitly (§3: "not assumed symmetric").
func NewStore() *Store {
	return &Store{
		g:         core.NewGraph(core.WithDirected(true), core.WithWeighted()),
		inventory: make(map[string]map[string]int64),
	}
}

// AddNode registers a node with its kind and coordinates.
// Returns ErrEmptyID or ErrNodeExists.
func (s *Store) AddNode(id string, kind NodeKind, coord Coordinate) error {
	if id == "" {
		return ErrEmptyID
	}
	if s.g.HasVertex(id) {
		return fmt.Errorf("AddNode(%s): %w", id, ErrNodeExists)
	}
	if err := s.g.AddVertex(id); err != nil {
		return fmt.Errorf("AddNode(%s): %w", id, err)
	}
	v, ok := s.g.VerticesMap()[id]
	if !ok {
		return fmt.Errorf("AddNode(%s): %w", id, ErrNodeNotFound)
	}
	v.Metadata[metaKey] = vertexMeta{kind: kind, coord: coord}

	return nil
}

// AddEdge registers one directed CONNECTED_TO edge of the given distance.
// Callers that want a mirrored (bidirectional) connection call AddEdge
// twice, once per direction — the Store never infers symmetry.
func (s *Store) AddEdge(fromID, toID string, distance int64) error {
	if distance < 0 {
		return fmt.Errorf("AddEdge(%s,%s): %w", fromID, toID, ErrNegativeQuantity)
	}
	if _, err := s.g.AddEdge(fromID, toID, distance); err != nil {
		return fmt.Errorf("AddEdge(%s,%s): %w", fromID, toID, err)
	}

	return nil
}

// AddInventory records that storageID holds quantity units of productID,
// merging with any existing quantity at that (storage, product) pair.
// Returns ErrNegativeQuantity if quantity <= 0, per §3's positive-integer
// invariant on CONTAINS.
func (s *Store) AddInventory(storageID, productID string, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("AddInventory(%s,%s): %w", storageID, productID, ErrNegativeQuantity)
	}
	if !s.g.HasVertex(storageID) {
		return fmt.Errorf("AddInventory(%s,%s): %w", storageID, productID, ErrNodeNotFound)
	}

	s.muInv.Lock()
	defer s.muInv.Unlock()

	bucket, ok := s.inventory[storageID]
	if !ok {
		bucket = make(map[string]int64)
		s.inventory[storageID] = bucket
	}
	bucket[productID] += quantity

	return nil
}

// NodeCount returns the number of nodes currently registered in the Graph
// Store's topology.
func (s *Store) NodeCount() int {
	return s.g.VertexCount()
}

// Kind returns the NodeKind registered for id.
func (s *Store) Kind(id string) (NodeKind, error) {
	meta, err := s.meta(id)
	if err != nil {
		return 0, err
	}

	return meta.kind, nil
}

// Coordinate returns the (x,y,z) position registered for id.
func (s *Store) Coordinate(id string) (Coordinate, error) {
	meta, err := s.meta(id)
	if err != nil {
		return Coordinate{}, err
	}

	return meta.coord, nil
}

func (s *Store) meta(id string) (vertexMeta, error) {
	v, ok := s.g.VerticesMap()[id]
	if !ok {
		return vertexMeta{}, fmt.Errorf("meta(%s): %w", id, ErrNodeNotFound)
	}
	meta, ok := v.Metadata[metaKey].(vertexMeta)
	if !ok {
		return vertexMeta{}, fmt.Errorf("meta(%s): %w", id, ErrNodeNotFound)
	}

	return meta, nil
}

// StoragesHolding returns every storage id that currently holds a
// positive quantity of productID, mapped to that quantity.
// Complexity: O(S) where S = number of storages with any inventory.
func (s *Store) StoragesHolding(productID string) map[string]int64 {
	s.muInv.RLock()
	defer s.muInv.RUnlock()

	out := make(map[string]int64)
	for storageID, products := range s.inventory {
		if q, ok := products[productID]; ok && q > 0 {
			out[storageID] = q
		}
	}

	return out
}

// SufficientOffer sums, per product id, the total quantity held across
// every storage — Graph Store operation (1) of §4.A.
func (s *Store) SufficientOffer(productIDs []string) map[string]int64 {
	s.muInv.RLock()
	defer s.muInv.RUnlock()

	totals := make(map[string]int64, len(productIDs))
	for _, pid := range productIDs {
		totals[pid] = 0
	}
	for _, products := range s.inventory {
		for pid, q := range products {
			if _, wanted := totals[pid]; wanted {
				totals[pid] += q
			}
		}
	}

	return totals
}

// QuantityAt returns the current quantity of productID at storageID.
func (s *Store) QuantityAt(storageID, productID string) int64 {
	s.muInv.RLock()
	defer s.muInv.RUnlock()

	return s.inventory[storageID][productID]
}
