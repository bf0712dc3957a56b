// Package guard provides port.RunGuard implementations.
package guard

import (
	"context"
	"sync"
)

// Local is an in-process run guard.
type Local struct {
	mu   sync.Mutex
	held bool
}

func NewLocal() *Local {
	return &Local{}
}

// TryAcquire implements port.RunGuard.
func (g *Local) TryAcquire(context.Context) (func(), bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held {
		return nil, false, nil
	}
	g.held = true

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.held = false
			g.mu.Unlock()
		})
	}, true, nil
}
