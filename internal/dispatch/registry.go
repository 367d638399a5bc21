package dispatch

import "context"

// HandlerFunc executes one operation against the external toolkit and
// returns its success payload.
type HandlerFunc func(ctx context.Context, args Args) (any, error)

// Operation is one registered, externally invokable action.
type Operation struct {
	Name        string
	Description string
	// InputSchema is the JSON-schema object advertised to clients.
	InputSchema map[string]any
	// Required lists parameter keys checked before the handler runs.
	Required []string
	Handler  HandlerFunc
}

// Registry holds the fixed operation set in registration order.
type Registry struct {
	order []string
	ops   map[string]*Operation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]*Operation)}
}

// Register adds an operation. Duplicate names are a programming error and
// panic at startup rather than shadowing silently.
func (r *Registry) Register(op *Operation) {
	if _, exists := r.ops[op.Name]; exists {
		panic("dispatch: duplicate operation " + op.Name)
	}
	r.order = append(r.order, op.Name)
	r.ops[op.Name] = op
}

// Get looks up an operation by name.
func (r *Registry) Get(name string) (*Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// All returns the operations in registration order.
func (r *Registry) All() []*Operation {
	out := make([]*Operation, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.ops[name])
	}
	return out
}

// Len reports the number of registered operations.
func (r *Registry) Len() int {
	return len(r.ops)
}

// schema helpers keep the operation table readable.

func objectSchema(properties map[string]any, required ...string) map[string]any {
	if required == nil {
		required = []string{}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func boolProp(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description, "default": false}
}

func intProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func stringListProp(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}
