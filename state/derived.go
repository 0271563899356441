package state

// Derived is a read-only value recomputed whenever a source changes.
type Derived[T any] struct {
	*Signal[T]
	compute func() T
	stops   []func()
}

// Derive computes a value from sources. Recomputes that produce an equal
// value, according to equal, do not notify. A nil equal always notifies.
func Derive[T any](compute func() T, equal EqualFunc[T], sources ...interface{ Subscribe(func()) func() }) *Derived[T] {
	d := &Derived[T]{Signal: NewSignal(compute()), compute: compute}
	d.equal = equal
	for _, src := range sources {
		if src != nil {
			d.stops = append(d.stops, src.Subscribe(d.recompute))
		}
	}
	return d
}

// Set is not available on derived values.
func (d *Derived[T]) Set(T) bool { return false }

// Stop detaches from all sources.
func (d *Derived[T]) Stop() {
	for _, stop := range d.stops {
		stop()
	}
	d.stops = nil
}

func (d *Derived[T]) recompute() {
	d.Signal.Set(d.compute())
}
