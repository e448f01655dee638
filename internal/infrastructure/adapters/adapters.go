// Package adapters provides infrastructure adapters that implement application ports.
// These adapters wrap existing infrastructure components to satisfy port interfaces.
package adapters

import (
	"fmt"

	"github.com/encapsulab/encapsulab/internal/application/ports"
	"github.com/encapsulab/encapsulab/internal/application/subjects"
	"github.com/encapsulab/encapsulab/internal/config"
	infraconfig "github.com/encapsulab/encapsulab/internal/infrastructure/config"
)

// Ensure adapters implement ports at compile time
var (
	_ ports.WalkthroughLoader = (*WalkthroughLoaderAdapter)(nil)
	_ ports.SubjectFactory    = (*subjects.Registry)(nil)
)

// WalkthroughLoaderAdapter adapts the walkthrough loader to the port interface.
type WalkthroughLoaderAdapter struct {
	substitutor *infraconfig.VariableSubstitutor
}

// NewWalkthroughLoaderAdapter creates a new walkthrough loader adapter.
func NewWalkthroughLoaderAdapter() *WalkthroughLoaderAdapter {
	return &WalkthroughLoaderAdapter{
		substitutor: infraconfig.NewVariableSubstitutor(),
	}
}

// LoadWalkthrough loads, validates and substitutes variables in a walkthrough.
func (a *WalkthroughLoaderAdapter) LoadWalkthrough(path string) (*config.Walkthrough, error) {
	w, err := config.LoadWalkthrough(path)
	if err != nil {
		return nil, err
	}

	if err := a.substitutor.Substitute(w); err != nil {
		return nil, fmt.Errorf("variable substitution failed: %w", err)
	}

	return w, nil
}
