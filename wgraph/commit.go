package wgraph

import "fmt"

// Commit applies a completed pick: for each (storageID, productID) entry
// it decrements the recorded quantity by item.Take, provided the current
// quantity still equals item.QuantityAtStorage (optimistic concurrency
// check per §4.G) — otherwise it returns ErrInventoryDrift and leaves
// every entry in summary untouched (all-or-nothing).
func (s *Store) Commit(summary map[string]map[string]OrderItem) error {
	s.muInv.Lock()
	defer s.muInv.Unlock()

	for storageID, products := range summary {
		for productID, item := range products {
			current := s.inventory[storageID][productID]
			if current != item.QuantityAtStorage {
				return fmt.Errorf("Commit(%s,%s): want=%d got=%d: %w",
					storageID, productID, item.QuantityAtStorage, current, ErrInventoryDrift)
			}
		}
	}

	for storageID, products := range summary {
		for productID, item := range products {
			remaining := s.inventory[storageID][productID] - item.Take
			if remaining <= 0 {
				delete(s.inventory[storageID], productID)
				continue
			}
			s.inventory[storageID][productID] = remaining
		}
	}

	return nil
}

// Restore idempotently resets quantity back to item.QuantityAtStorage for
// every (storageID, productID) entry in summary — applying it twice
// leaves the graph identical (property 11).
func (s *Store) Restore(summary map[string]map[string]OrderItem) error {
	s.muInv.Lock()
	defer s.muInv.Unlock()

	for storageID, products := range summary {
		for productID, item := range products {
			if item.QuantityAtStorage <= 0 {
				delete(s.inventory[storageID], productID)
				continue
			}
			if s.inventory[storageID] == nil {
				s.inventory[storageID] = make(map[string]int64)
			}
			s.inventory[storageID][productID] = item.QuantityAtStorage
		}
	}

	return nil
}
