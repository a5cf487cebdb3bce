package summarizer

import (
	"sort"

	"github.com/waresys/pickpath/allocator"
	"github.com/waresys/pickpath/routing"
)

// PickSheetEntry is one line of a pick sheet: how much of a product to take
// from a storage, and how much was on hand there at allocation time.
type PickSheetEntry struct {
	StorageID         string
	ProductID         string
	QuantityAtStorage int64
	Take              int64
}

// PickSheet is the ordered list of pick instructions for a single route.
// Entries appear in visit rank order (§4.F); within a storage visited for
// multiple products, entries are ordered by product id for determinism.
type PickSheet struct {
	Entries []PickSheetEntry
}

// Summarize builds one PickSheet from a route's visit order and the full
// allocation list, keeping only the allocations whose storage the route
// actually visits.
//
// Complexity: O(A log A + V) where A = len(allocations), V = len(route.NodeIDs).
func Summarize(route routing.Route, allocations []allocator.Allocation) PickSheet {
	byStorage := make(map[string][]allocator.Allocation, len(allocations))
	for _, a := range allocations {
		byStorage[a.StorageID] = append(byStorage[a.StorageID], a)
	}
	for _, group := range byStorage {
		sort.Slice(group, func(i, j int) bool { return group[i].ProductID < group[j].ProductID })
	}

	var sheet PickSheet
	visited := make(map[string]struct{}, len(route.NodeIDs))
	for _, storageID := range route.NodeIDs {
		if _, dup := visited[storageID]; dup {
			continue
		}
		visited[storageID] = struct{}{}

		for _, a := range byStorage[storageID] {
			sheet.Entries = append(sheet.Entries, PickSheetEntry{
				StorageID:         a.StorageID,
				ProductID:         a.ProductID,
				QuantityAtStorage: a.QuantityAtStorage,
				Take:              a.Take,
			})
		}
	}

	return sheet
}

// SummarizeAll builds one PickSheet per route in a plan, preserving order.
func SummarizeAll(plan routing.Plan, allocations []allocator.Allocation) []PickSheet {
	out := make([]PickSheet, len(plan.Routes))
	for i, r := range plan.Routes {
		out[i] = Summarize(r, allocations)
	}

	return out
}
