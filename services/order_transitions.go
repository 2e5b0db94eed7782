package services

import (
	"fmt"

	"orderboard/entity"
	"orderboard/events"

	"gorm.io/gorm"
)

// Status transition engine. Every successful transition persists the new
// status, then publishes order:status-updated with the full order, plus a
// distinguished order:ready event when the new status is READY. A rejected
// transition changes nothing and publishes nothing.

// Advance moves the order one step along the PENDING -> STARTED -> COMPLETED
// -> READY chain. READY has no forward transition, so advancing it fails.
func (s *OrderService) Advance(orderID string) (*entity.Order, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	next, ok := o.Status.Next()
	if !ok {
		return nil, fmt.Errorf("%w: order is %s", ErrNoNextStatus, o.Status)
	}
	return s.applyStatus(o, next)
}

// SetStatus is the unconditional override used by the kitchen dropdown and by
// revert-to-active. Any of the four enum values is accepted from any current
// state; reachability is not checked. Concurrent calls on one order are
// last-write-wins, exactly as the persistence layer orders them.
func (s *OrderService) SetStatus(orderID, status string) (*entity.Order, error) {
	st, ok := entity.ParseStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: PENDING, STARTED, COMPLETED, READY)", ErrInvalidStatus, status)
	}
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	return s.applyStatus(o, st)
}

func (s *OrderService) applyStatus(o *entity.Order, st entity.Status) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, o.ID, st)
	})
	if err != nil {
		return nil, err
	}

	// Reload so the broadcast carries the committed state and timestamp.
	updated, err := s.Get(o.OrderID)
	if err != nil {
		return nil, err
	}

	s.Bus.Publish(events.NewOrderEvent(events.OrderUpdated, *updated))
	if updated.Status == entity.StatusReady {
		s.Bus.Publish(events.NewOrderEvent(events.OrderReady, *updated))
	}
	return updated, nil
}
