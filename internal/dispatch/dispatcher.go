package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/ovtools/ovmcp/internal/envelope"
	"github.com/ovtools/ovmcp/internal/log"
	"github.com/ovtools/ovmcp/internal/query"
	"github.com/ovtools/ovmcp/internal/toolkit"
)

// Dispatcher routes operation invocations to the external toolkit.
type Dispatcher struct {
	registry *Registry
	tk       toolkit.Toolkit
	queries  *query.Executor
	inflight *Tracker
	logger   *slog.Logger
}

// New creates a Dispatcher with the full operation set registered.
func New(tk toolkit.Toolkit, queries *query.Executor) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		tk:       tk,
		queries:  queries,
		inflight: NewTracker(),
		logger:   log.WithComponent("dispatch"),
	}
	d.registerOperations()
	return d
}

// Operations returns the registered operation set for discovery listings.
func (d *Dispatcher) Operations() []*Operation {
	return d.registry.All()
}

// InFlight returns a snapshot of currently running invocations.
func (d *Dispatcher) InFlight() []Invocation {
	return d.inflight.List()
}

// Invoke executes one named operation. Every outcome is an envelope; no
// error escapes as a raw failure, and a failed invocation leaves the
// dispatcher fully able to serve the next one.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) envelope.Result {
	op, ok := d.registry.Get(name)
	if !ok {
		return envelope.Fail(envelope.UnknownOperation, "unknown operation: "+name)
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := checkRequired(op, args); err != nil {
		return envelope.FromError(err)
	}

	id := d.inflight.Begin(name)
	defer d.inflight.End(id)

	logger := d.logger.With("operation", name, "request_id", id)
	logger.Info("invoking operation")
	start := time.Now()

	data, err := op.Handler(ctx, Args(args))
	if err != nil {
		res := envelope.FromError(err)
		logger.Warn("operation failed",
			"category", string(res.Error.Category),
			"error", res.Error.Message,
			"elapsed", time.Since(start))
		return res
	}

	logger.Info("operation succeeded", "elapsed", time.Since(start))
	return envelope.OK(data)
}

// checkRequired verifies presence of every required parameter before the
// handler (and so the toolkit) is reached.
func checkRequired(op *Operation, args map[string]any) error {
	for _, key := range op.Required {
		if v, ok := args[key]; !ok || v == nil {
			return envelope.Errorf(envelope.InvalidParameters,
				"missing required parameter: %s", key)
		}
	}
	return nil
}
