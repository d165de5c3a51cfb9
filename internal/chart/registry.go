// Package chart renders dashboard charts to the terminal and owns the live
// renderer per named slot.
package chart

import (
	"fmt"
	"io"
	"sort"
)

// Renderer draws one chart. A closed Renderer must not be rendered again.
type Renderer interface {
	Render(w io.Writer) error
	Close() error
}

// Registry owns at most one live Renderer per slot name. Replacing a slot
// closes the previous renderer first; this is the only mutual-exclusion
// discipline the client needs.
type Registry struct {
	slots map[string]Renderer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]Renderer)}
}

// Replace installs r into the named slot, closing the previous occupant
// first. The close and install are a single operation from the caller's
// point of view.
func (g *Registry) Replace(slot string, r Renderer) error {
	if prev, ok := g.slots[slot]; ok {
		if err := prev.Close(); err != nil {
			return fmt.Errorf("closing chart %s: %w", slot, err)
		}
	}
	g.slots[slot] = r
	return nil
}

// Get returns the live renderer for a slot.
func (g *Registry) Get(slot string) (Renderer, bool) {
	r, ok := g.slots[slot]
	return r, ok
}

// Render draws the named slot to w.
func (g *Registry) Render(slot string, w io.Writer) error {
	r, ok := g.slots[slot]
	if !ok {
		return fmt.Errorf("no chart in slot %s", slot)
	}
	return r.Render(w)
}

// Close disposes the named slot.
func (g *Registry) Close(slot string) error {
	r, ok := g.slots[slot]
	if !ok {
		return nil
	}
	delete(g.slots, slot)
	return r.Close()
}

// CloseAll disposes every slot.
func (g *Registry) CloseAll() error {
	names := make([]string, 0, len(g.slots))
	for name := range g.slots {
		names = append(names, name)
	}
	sort.Strings(names)

	var firstErr error
	for _, name := range names {
		if err := g.Close(name); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
