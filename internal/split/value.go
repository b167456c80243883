package split

// Store is the persistence hook a Value reads once at construction and
// writes on every change. The storage medium belongs to the host.
type Store[T any] interface {
	// Load returns the stored value, or false when nothing is stored.
	Load() (T, bool)
	Save(T)
}

// Accessor adapts a plain getter/setter pair to a Store. A nil Get means
// nothing is stored; a nil Set discards writes.
type Accessor[T any] struct {
	Get func() T
	Set func(T)
}

func (a Accessor[T]) Load() (T, bool) {
	if a.Get == nil {
		var zero T
		return zero, false
	}
	return a.Get(), true
}

func (a Accessor[T]) Save(v T) {
	if a.Set != nil {
		a.Set(v)
	}
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Value is an observable value with optional persistence. It is not safe
// for concurrent use; all mutation happens on the UI event loop.
type Value[T comparable] struct {
	current     T
	store       Store[T]
	subscribers []subscriber[T]
	nextID      int
}

// NewValue returns a Value holding the stored value if store has one,
// otherwise initial.
func NewValue[T comparable](initial T, store Store[T]) *Value[T] {
	v := &Value[T]{current: initial, store: store}
	if store != nil {
		if loaded, ok := store.Load(); ok {
			v.current = loaded
		}
	}
	return v
}

func (v *Value[T]) Get() T { return v.current }

// Set stores x. Persistence and subscribers are only invoked when the value changes.
func (v *Value[T]) Set(x T) bool {
	if x == v.current {
		return false
	}
	v.current = x
	if v.store != nil {
		v.store.Save(x)
	}
	for _, s := range append([]subscriber[T](nil), v.subscribers...) {
		s.fn(x)
	}
	return true
}

// Subscribe registers fn for change notifications and returns a function
// that removes the registration.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.nextID++
	id := v.nextID
	v.subscribers = append(v.subscribers, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range v.subscribers {
			if s.id == id {
				v.subscribers = append(v.subscribers[:i], v.subscribers[i+1:]...)
				return
			}
		}
	}
}
