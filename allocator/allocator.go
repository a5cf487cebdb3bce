package allocator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/waresys/pickpath/wgraph"
)

// Sentinel errors for allocation failures (§7).
var (
	// ErrInsufficientOffer indicates total supply for a product is below
	// the requested demand.
	ErrInsufficientOffer = errors.New("allocator: insufficient offer")

	// ErrUnsatisfiedDemand indicates the draw-down walk finished without
	// covering demand — a defensive post-condition failure that should
	// not occur once ErrInsufficientOffer has already been ruled out.
	ErrUnsatisfiedDemand = errors.New("allocator: unsatisfied demand")
)

// Demand maps product id to the requested positive quantity.
type Demand map[string]int64

// Allocation is one decision to draw Take units of Product from Storage.
type Allocation struct {
	ProductID         string
	StorageID         string
	QuantityAtStorage int64
	Take              int64
}

// InsufficientOfferError carries the per-product shortfall detail
// required by §7's error surface (`map product → {need, available}`).
type InsufficientOfferError struct {
	Need      map[string]int64
	Available map[string]int64
}

func (e *InsufficientOfferError) Error() string {
	return fmt.Sprintf("allocator: insufficient offer for %d product(s)", len(e.Need))
}

func (e *InsufficientOfferError) Unwrap() error { return ErrInsufficientOffer }

// Allocate runs §4.B's algorithm: for every product in demand, enumerate
// candidate storages, sort by (proximity key ascending, quantity
// descending, storage id ascending), then draw down greedily until the
// demand is met.
//
// Complexity: O(P·S·log S) where P = len(demand), S = max candidates per
// product.
func Allocate(store *wgraph.Store, demand Demand, startID string) ([]Allocation, error) {
	productIDs := sortedKeys(demand)

	offer := store.SufficientOffer(productIDs)
	need, available := map[string]int64{}, map[string]int64{}
	for _, pid := range productIDs {
		if offer[pid] < demand[pid] {
			need[pid] = demand[pid]
			available[pid] = offer[pid]
		}
	}
	if len(need) > 0 {
		return nil, &InsufficientOfferError{Need: need, Available: available}
	}

	startCoord, err := store.Coordinate(startID)
	if err != nil {
		return nil, fmt.Errorf("Allocate: start %s: %w", startID, err)
	}

	var out []Allocation
	for _, pid := range productIDs {
		candidates := store.StoragesHolding(pid)
		ordered := orderCandidates(store, startCoord, candidates)

		remaining := demand[pid]
		for _, c := range ordered {
			if remaining <= 0 {
				break
			}
			take := c.quantity
			if take > remaining {
				take = remaining
			}
			if take <= 0 {
				continue
			}
			out = append(out, Allocation{
				ProductID:         pid,
				StorageID:         c.storageID,
				QuantityAtStorage: c.quantity,
				Take:              take,
			})
			remaining -= take
		}
		if remaining > 0 {
			return nil, fmt.Errorf("Allocate(%s): need=%d took=%d: %w",
				pid, demand[pid], demand[pid]-remaining, ErrUnsatisfiedDemand)
		}
	}

	return out, nil
}

type candidate struct {
	storageID string
	quantity  int64
	proximity float64
}

// orderCandidates sorts storages holding a product by the proximity key
// (Manhattan x/y, vertical heavily penalized), then quantity descending,
// then storage id ascending as a deterministic tie-break (§4.B steps 2-3).
func orderCandidates(store *wgraph.Store, start wgraph.Coordinate, storages map[string]int64) []candidate {
	out := make([]candidate, 0, len(storages))
	for storageID, qty := range storages {
		coord, err := store.Coordinate(storageID)
		if err != nil {
			continue // unregistered storage id; skip defensively
		}
		out = append(out, candidate{
			storageID: storageID,
			quantity:  qty,
			proximity: proximityKey(start, coord),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].proximity != out[j].proximity {
			return out[i].proximity < out[j].proximity
		}
		if out[i].quantity != out[j].quantity {
			return out[i].quantity > out[j].quantity
		}

		return out[i].storageID < out[j].storageID
	})

	return out
}

// proximityKey computes the weighted-Manhattan ordering scalar from §4.B:
// |s.x-σ.x| + |s.y-σ.y| + 100·|s.z-σ.z|. It is an ordering key only,
// never a routing cost.
func proximityKey(s, sigma wgraph.Coordinate) float64 {
	return math.Abs(s.X-sigma.X) + math.Abs(s.Y-sigma.Y) + 100*math.Abs(s.Z-sigma.Z)
}

func sortedKeys(demand Demand) []string {
	out := make([]string, 0, len(demand))
	for k := range demand {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
