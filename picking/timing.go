package picking

import (
	"log/slog"
	"time"
)

// stageTimer is the Go shape of §9's "scoped timing decorator": a deferred
// close over a start time, instead of a ported context-manager. Call start
// at the top of a stage and defer the returned func to record its duration.
func stageTimer(metrics map[string]time.Duration, name string, logger *slog.Logger, debug bool, correlationID string) func() {
	begin := time.Now()

	return func() {
		d := time.Since(begin)
		metrics[name] += d
		if debug {
			logger.Info("picking: stage complete", "correlation_id", correlationID, "stage", name, "duration", d)
		}
	}
}
