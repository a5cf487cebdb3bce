package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/waresys/pickpath/allocator"
)

// parseDemand parses a comma-separated "product:qty" list, e.g.
// "widget:30,gadget:10", into a Demand bag.
func parseDemand(raw string) (allocator.Demand, error) {
	demand := allocator.Demand{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, ":", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("demand: %q is not product:qty", part)
		}
		productID := strings.TrimSpace(fields[0])
		qty, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("demand: %q has an invalid quantity", part)
		}
		demand[productID] = qty
	}
	if len(demand) == 0 {
		return nil, fmt.Errorf("demand: empty")
	}

	return demand, nil
}
