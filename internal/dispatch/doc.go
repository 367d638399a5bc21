// Package dispatch maps the fixed set of registered operation names onto
// forwarding calls against the external toolkit.
//
// The dispatcher is a table: each operation carries its name, description,
// parameter schema, and a handler closure. Invoke performs a lookup,
// validates required parameters, runs the handler, and normalizes the
// outcome into the uniform response envelope.
//
// Invariants:
//   - Unknown operation names fail before any toolkit call
//   - Missing or ill-typed required parameters fail before any toolkit call
//   - Toolkit errors are classified, never propagated raw
//   - One invocation's failure never affects subsequent invocations
//   - The dispatcher holds no cross-request mutable state beyond the
//     best-effort in-flight tracker, which is observability only
//
// Each invocation is synchronous and independent; cancellation and
// concurrency policy belong to the transport layer.
package dispatch
