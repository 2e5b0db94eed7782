// Package display is the shared read model behind every board: the kitchen
// display, the ready-for-pickup board, and the public status board. Each
// board starts from a REST snapshot and then folds the live event stream into
// it; the merge rules here are the single source of those semantics, so no
// board re-derives them.
package display

import (
	"sync"

	"orderboard/entity"
	"orderboard/events"
)

// Projection reconstructs the current set of active orders from a snapshot
// plus incremental events. Safe for concurrent use.
type Projection struct {
	mu     sync.RWMutex
	orders []entity.Order // newest first, position preserved on update
}

func NewProjection() *Projection {
	return &Projection{}
}

// Reset replaces the working set with a fresh snapshot, newest first.
func (p *Projection) Reset(orders []entity.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = make([]entity.Order, len(orders))
	copy(p.orders, orders)
}

// Apply folds one event into the working set.
//
//   - order:created          prepend unless the id is already known (idempotent)
//   - order:status-updated / order:ready
//     replace in place when present; when absent but
//     still active, insert (covers a missed create)
//   - order:deleted / order:taken
//     remove by id; absence is not an error
func (p *Projection) Apply(ev events.Event) {
	switch ev.Type {
	case events.OrderCreated:
		o, ok := ev.Payload.(entity.Order)
		if !ok {
			return
		}
		p.mu.Lock()
		if p.indexOf(o.OrderID) < 0 {
			p.orders = append([]entity.Order{o}, p.orders...)
		}
		p.mu.Unlock()

	case events.OrderUpdated, events.OrderReady:
		o, ok := ev.Payload.(entity.Order)
		if !ok {
			return
		}
		p.mu.Lock()
		if i := p.indexOf(o.OrderID); i >= 0 {
			p.orders[i] = o
		} else if o.Status.Valid() {
			p.orders = append([]entity.Order{o}, p.orders...)
		}
		p.mu.Unlock()

	case events.OrderDeleted:
		ref, ok := ev.Payload.(events.OrderRef)
		if !ok {
			return
		}
		p.remove(ref.OrderID)

	case events.OrderTaken:
		ref, ok := ev.Payload.(events.TakenRef)
		if !ok {
			return
		}
		p.remove(ref.OrderID)
	}
}

func (p *Projection) remove(orderID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.indexOf(orderID); i >= 0 {
		p.orders = append(p.orders[:i], p.orders[i+1:]...)
	}
}

// indexOf must be called with the lock held.
func (p *Projection) indexOf(orderID string) int {
	for i, o := range p.orders {
		if o.OrderID == orderID {
			return i
		}
	}
	return -1
}

// Orders returns a copy of the working set, newest first.
func (p *Projection) Orders() []entity.Order {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]entity.Order, len(p.orders))
	copy(out, p.orders)
	return out
}

// Buckets is what the boards actually render. COMPLETED is grouped with
// STARTED as "still preparing", not with READY.
type Buckets struct {
	Pending   []entity.Order `json:"pending"`
	Preparing []entity.Order `json:"preparing"`
	Ready     []entity.Order `json:"ready"`
}

func (p *Projection) Buckets() Buckets {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var b Buckets
	for _, o := range p.orders {
		switch o.Status {
		case entity.StatusPending:
			b.Pending = append(b.Pending, o)
		case entity.StatusStarted, entity.StatusCompleted:
			b.Preparing = append(b.Preparing, o)
		case entity.StatusReady:
			b.Ready = append(b.Ready, o)
		}
	}
	return b
}
