package async

import "context"

// Gate bounds the number of in-flight external provider calls across all
// workers. A zero or negative limit means unbounded.
type Gate struct {
	slots chan struct{}
}

func NewGate(limit int) *Gate {
	if limit <= 0 {
		return &Gate{}
	}
	return &Gate{slots: make(chan struct{}, limit)}
}

// Acquire blocks until a slot is free or ctx is done.
func (g *Gate) Acquire(ctx context.Context) error {
	if g == nil || g.slots == nil {
		return ctx.Err()
	}
	select {
	case g.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot taken by Acquire.
func (g *Gate) Release() {
	if g == nil || g.slots == nil {
		return
	}
	<-g.slots
}
