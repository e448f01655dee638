// Package subjects adapts the example entities to a uniform interface so a
// walkthrough can construct them by kind and invoke their operations by name.
package subjects

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownKind is returned when no factory is registered for a kind.
	ErrUnknownKind = errors.New("unknown subject kind")
	// ErrUnknownOperation is returned when a subject does not support an operation.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Subject is a live example entity driven by a walkthrough.
type Subject interface {
	// Kind returns the registry name the subject was created under.
	Kind() string

	// Invoke runs the named operation. Domain invariant violations are
	// returned unchanged so callers can inspect their rule.
	Invoke(op string, args Args) (interface{}, error)

	// Snapshot returns the subject's observable state, read through its accessors.
	Snapshot() map[string]interface{}
}

// Factory constructs a subject from creation arguments.
type Factory func(args Args) (Subject, error)

// Registry maps subject kinds to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding every example entity.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("counter", newCounterSubject)
	r.Register("person", newPersonSubject)
	r.Register("bank_account", newBankAccountSubject)
	r.Register("car", newCarSubject)
	r.Register("employee", newEmployeeSubject)
	r.Register("student", newStudentSubject)
	r.Register("person_builder", newPersonBuilderSubject)
	r.Register("immutable_person", newImmutablePersonSubject)
	return r
}

// Register adds or replaces the factory for kind.
func (r *Registry) Register(kind string, factory Factory) {
	r.factories[kind] = factory
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	_, ok := r.factories[kind]
	return ok
}

// Create constructs a subject of the given kind.
func (r *Registry) Create(kind string, args Args) (Subject, error) {
	factory, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s (known: %v)", ErrUnknownKind, kind, r.Kinds())
	}
	return factory(args)
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func unknownOperation(kind, op string) error {
	return fmt.Errorf("%w: %s does not support %q", ErrUnknownOperation, kind, op)
}
