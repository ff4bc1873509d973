// Package inspector coordinates shader compiler invocations for an editor
// host. It is structured into small files by concern:
//
//   - session.go: Session type, Compile/RepeatLast, the locate → merge → build →
//     execute → report pipeline and the single output surface.
//   - config.go: SessionConfig and defaults; NewWithConfig applies them.
//   - types.go: State, Request, Result.
//   - document.go: Document interface with file-backed and untitled implementations.
//   - flows.go: document-level commands (compile from declaration block,
//     interactive compile, add sample declaration).
//   - prompt.go: Prompter and the field-by-field interactive procedure.
//   - persist.go: optional on-disk record of the last request for short-lived hosts.
//   - events.go, eventpub_memory.go: lifecycle events.
//   - metrics.go: Prometheus collectors.
//   - errors.go: error types and IsXxx helpers.
//
// A Session owns all mutable state (last request, surface handle, state cell)
// behind one mutex. Compiles themselves are not serialized; hosts that need
// one-at-a-time semantics must queue calls.
package inspector
