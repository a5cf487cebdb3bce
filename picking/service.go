package picking

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/waresys/pickpath/allocator"
	"github.com/waresys/pickpath/auditlog"
	"github.com/waresys/pickpath/metricbuilder"
	"github.com/waresys/pickpath/pathexpander"
	"github.com/waresys/pickpath/routing"
	"github.com/waresys/pickpath/summarizer"
	"github.com/waresys/pickpath/wgraph"
)

// PickingSolution is §4.G's orchestrator output: one path and one pick
// sheet per planned route, plus per-stage timing.
type PickingSolution struct {
	Paths              [][]wgraph.Leg
	Summaries          []summarizer.PickSheet
	PerformanceMetrics map[string]time.Duration
	CorrelationID      string
}

// PickingService wires the Graph Store to the domain pipeline and the
// audit trail. Logger is used only at stage boundaries; the wired
// components (allocator, metricbuilder, routing, pathexpander,
// summarizer) stay silent and return errors.
type PickingService struct {
	Store  *wgraph.Store
	Audit  *auditlog.Log
	Logger *slog.Logger
}

// NewService constructs a PickingService, defaulting Logger to
// slog.Default() when nil.
func NewService(store *wgraph.Store, audit *auditlog.Log, logger *slog.Logger) *PickingService {
	if logger == nil {
		logger = slog.Default()
	}

	return &PickingService{Store: store, Audit: audit, Logger: logger}
}

// Optimize runs B→C→D→E/F for a demand bag and returns the resulting
// per-route paths and pick sheets (§4.G).
//
// Complexity: dominated by metricbuilder.Build's shortest-distance fan-out
// and routing.Solve's O(V²) assignment/local-search.
func (p *PickingService) Optimize(ctx context.Context, demand allocator.Demand, cfg Config) (PickingSolution, error) {
	correlationID := uuid.NewString()
	debug := cfg.debugEnabled()
	metrics := map[string]time.Duration{}

	if err := p.checkKnownProducts(demand); err != nil {
		return PickingSolution{}, err
	}

	stop := stageTimer(metrics, "location_search", p.Logger, debug, correlationID)
	allocations, err := allocator.Allocate(p.Store, demand, cfg.StartID)
	stop()
	if err != nil {
		return PickingSolution{}, fmt.Errorf("Optimize: %w", err)
	}

	stop = stageTimer(metrics, "distance_matrix", p.Logger, debug, correlationID)
	metric, err := metricbuilder.Build(ctx, p.Store, allocations, cfg.StartID, cfg.DestID)
	stop()
	if err != nil {
		return PickingSolution{}, fmt.Errorf("Optimize: %w", err)
	}

	stop = stageTimer(metrics, "tour_optimization", p.Logger, debug, correlationID)
	plan, err := routing.Solve(metric, cfg.NumRoutes)
	stop()
	if err != nil {
		return PickingSolution{}, fmt.Errorf("Optimize: %w", err)
	}

	paths := make([][]wgraph.Leg, len(plan.Routes))
	summaries := make([]summarizer.PickSheet, len(plan.Routes))
	for i, route := range plan.Routes {
		stop = stageTimer(metrics, "path_finding", p.Logger, debug, correlationID)
		legs, err := pathexpander.Expand(p.Store, route)
		stop()
		if err != nil {
			return PickingSolution{}, fmt.Errorf("Optimize: %w", err)
		}
		paths[i] = legs

		stop = stageTimer(metrics, "summary_generation", p.Logger, debug, correlationID)
		summaries[i] = summarizer.Summarize(route, allocations)
		stop()
	}

	solution := PickingSolution{
		Paths:         paths,
		Summaries:     summaries,
		CorrelationID: correlationID,
	}
	if cfg.IsTesting {
		solution.PerformanceMetrics = metrics
	}

	if p.Audit != nil {
		p.Audit.Append(auditlog.KindOptimize, fmt.Sprintf(
			`{"correlation_id":%q,"routes":%d,"products":%d}`,
			correlationID, len(plan.Routes), len(demand),
		))
	}

	return solution, nil
}

// checkKnownProducts returns UnknownProductError for any demanded product
// held by no storage in the graph at all.
func (p *PickingService) checkKnownProducts(demand allocator.Demand) error {
	var unknown []string
	for pid := range demand {
		if len(p.Store.StoragesHolding(pid)) == 0 {
			unknown = append(unknown, pid)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	return &UnknownProductError{ProductIDs: unknown}
}

// ProcessOrderSummary commits the pick sheets' take quantities against the
// Graph Store's inventory under optimistic concurrency and appends an audit
// entry. A quantity mismatch surfaces wgraph.ErrInventoryDrift.
func (p *PickingService) ProcessOrderSummary(summaries []summarizer.PickSheet) error {
	order := toOrderSummary(summaries)
	if err := p.Store.Commit(order); err != nil {
		return fmt.Errorf("ProcessOrderSummary: %w", err)
	}
	if p.Audit != nil {
		p.Audit.Append(auditlog.KindCommit, fmt.Sprintf(`{"storages":%d}`, len(order)))
	}

	return nil
}

// RestoreOrderSummary reverts a prior commit, restoring each storage's
// quantity to the value it held at allocation time. Idempotent.
func (p *PickingService) RestoreOrderSummary(summaries []summarizer.PickSheet) error {
	order := toOrderSummary(summaries)
	if err := p.Store.Restore(order); err != nil {
		return fmt.Errorf("RestoreOrderSummary: %w", err)
	}
	if p.Audit != nil {
		p.Audit.Append(auditlog.KindRestore, fmt.Sprintf(`{"storages":%d}`, len(order)))
	}

	return nil
}

func toOrderSummary(summaries []summarizer.PickSheet) map[string]map[string]wgraph.OrderItem {
	out := map[string]map[string]wgraph.OrderItem{}
	for _, sheet := range summaries {
		for _, e := range sheet.Entries {
			if _, ok := out[e.StorageID]; !ok {
				out[e.StorageID] = map[string]wgraph.OrderItem{}
			}
			out[e.StorageID][e.ProductID] = wgraph.OrderItem{
				QuantityAtStorage: e.QuantityAtStorage,
				Take:              e.Take,
			}
		}
	}

	return out
}
