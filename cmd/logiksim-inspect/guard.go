package main

import (
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/vocab"
	"github.com/tebeka/atexit"
)

// selectionGuard scopes the lifetime of a Modifier-owned selection:
// release destroys it, and is also registered with atexit, which runs it
// when the process exits through atexit.Exit. A log.Fatal or os.Exit exit
// skips both that callback and the deferred release.
type selectionGuard struct {
	m        *modifier.Modifier
	id       vocab.SelectionID
	released bool
}

func newSelectionGuard(m *modifier.Modifier) *selectionGuard {
	g := &selectionGuard{m: m, id: m.CreateSelection()}
	atexit.Register(g.release)
	return g
}

func (g *selectionGuard) release() {
	if g.released {
		return
	}
	g.released = true
	_ = g.m.DestroySelection(g.id)
}
