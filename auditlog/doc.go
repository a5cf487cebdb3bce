// Package auditlog persists a best-effort, append-only record of picking
// and inventory-commit events to SQLite. It is never on the critical path:
// a failed write is logged and swallowed, never surfaced to the caller of
// the orchestrator.
package auditlog
