package tieredlog

// Observer receives store mutation events. Callbacks run synchronously on
// the mutating goroutine, after the monitor lock has been released, so an
// observer may call back into the store.
type Observer[T any] interface {
	// OnAdded fires after records were appended to the buffer tier.
	OnAdded(items []T)
	// OnFlushed fires after records were promoted from buffer to file.
	// auto is true when the cycle ran on the background auto-flush task.
	OnFlushed(items []T, auto bool)
	// OnRemoved fires after records left the store, either through an
	// explicit Remove (auto false) or threshold-driven eviction.
	OnRemoved(items []T, auto bool)
}

// RegisterObserver appends o to the ordered observer set. Every registered
// observer is notified, in registration order. A nil observer is ignored.
func (l *Log[T, K]) RegisterObserver(o Observer[T]) {
	if o == nil {
		return
	}
	l.mu.Lock()
	l.observers = append(l.observers, o)
	l.mu.Unlock()
}

// observerSnapshot copies the observer set for notification outside the
// monitor lock. Callers must hold mu.
func (l *Log[T, K]) observerSnapshot() []Observer[T] {
	if len(l.observers) == 0 {
		return nil
	}
	return append([]Observer[T](nil), l.observers...)
}

func notifyAdded[T any](obs []Observer[T], items []T) {
	for _, o := range obs {
		o.OnAdded(items)
	}
}

func notifyFlushed[T any](obs []Observer[T], items []T, auto bool) {
	for _, o := range obs {
		o.OnFlushed(items, auto)
	}
}

func notifyRemoved[T any](obs []Observer[T], items []T, auto bool) {
	for _, o := range obs {
		o.OnRemoved(items, auto)
	}
}
