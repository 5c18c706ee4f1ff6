package order

import (
	"errors"
	"fmt"
	"slices"
)

// ErrObserverIsRequired is returned when registering a nil observer.
var ErrObserverIsRequired = errors.New("observer is required")

// Observer is notified after every status change of the order it is
// registered with. It runs synchronously on the caller's goroutine.
type Observer interface {
	OrderChanged(o *Order) error
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(o *Order) error

func (f ObserverFunc) OrderChanged(o *Order) error {
	return f(o)
}

// Subscription identifies one registration of an observer on one order.
type Subscription uint64

type subscription struct {
	id       Subscription
	observer Observer
}

// AddObserver registers obs and returns the handle to remove it with.
// Registering the same observer twice notifies it twice.
func (o *Order) AddObserver(obs Observer) (Subscription, error) {
	if obs == nil {
		return 0, ErrObserverIsRequired
	}

	o.lastSubscription++
	o.observers = append(o.observers, subscription{id: o.lastSubscription, observer: obs})
	return o.lastSubscription, nil
}

// RemoveObserver unregisters the observer behind sub. It reports false when
// sub is not registered.
func (o *Order) RemoveObserver(sub Subscription) bool {
	idx := slices.IndexFunc(o.observers, func(s subscription) bool { return s.id == sub })
	if idx < 0 {
		return false
	}
	o.observers = slices.Delete(o.observers, idx, idx+1)
	return true
}

// notifyObservers calls every observer registered when the notification
// starts, in registration order. A failing observer does not stop the rest;
// all failures are joined into the returned error.
func (o *Order) notifyObservers() error {
	var errList []error
	for _, s := range slices.Clone(o.observers) {
		if err := s.observer.OrderChanged(o); err != nil {
			errList = append(errList, fmt.Errorf("observer %d: %w", s.id, err))
		}
	}
	return errors.Join(errList...)
}
