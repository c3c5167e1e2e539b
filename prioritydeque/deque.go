package prioritydeque

import (
	"cmp"
	"iter"
	"math"
	"reflect"

	"github.com/google/btree"
)

// Deque is an ordered multiset of E with deque tie-breaking among equal
// priorities and an optional capacity bound. The zero value is not usable;
// construct with New or NewFunc.
type Deque[E any] struct {
	tree    *btree.BTreeG[entry[E]] // entries ordered by (value, index)
	compare func(a, b E) int        // priority order of values
	counter int64                   // next insertion index (always ≥ firstIndex)
	maxSize int                     // capacity bound; Unbounded by default
}

// New returns an empty Deque ordered by the natural order of E.
func New[E cmp.Ordered](opts ...Option) *Deque[E] {
	return NewFunc(cmp.Compare[E], opts...)
}

// NewFunc returns an empty Deque ordered by compare, which must return a
// negative number when a < b, zero when a and b have equal priority and a
// positive number when a > b. A nil compare panics.
func NewFunc[E any](compare func(a, b E) int, opts ...Option) *Deque[E] {
	if compare == nil {
		panic("prioritydeque: nil comparator")
	}
	cfg := defaultConfig()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Deque[E]{
		tree:    btree.NewG[entry[E]](btreeDegree, lessFunc(compare)),
		compare: compare,
		counter: firstIndex,
		maxSize: cfg.maxSize,
	}
}

// lessFunc orders entries by value priority, then by insertion index.
func lessFunc[E any](compare func(a, b E) int) btree.LessFunc[entry[E]] {
	return func(a, b entry[E]) bool {
		if c := compare(a.value, b.value); c != 0 {
			return c < 0
		}
		return a.index < b.index
	}
}

// Len returns the number of stored entries.
func (d *Deque[E]) Len() int { return d.tree.Len() }

// IsEmpty reports whether d holds no entries.
func (d *Deque[E]) IsEmpty() bool { return d.tree.Len() == 0 }

// MaxSize returns the capacity bound (Unbounded if none was set).
func (d *Deque[E]) MaxSize() int { return d.maxSize }

// SetMaxSize changes the capacity bound and evicts the greatest entries
// until Len() ≤ n. A negative n returns ErrNegativeCapacity and leaves d unchanged.
func (d *Deque[E]) SetMaxSize(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	d.maxSize = n
	d.trim(n)

	return nil
}

// Trim evicts the greatest entries until Len() ≤ n without changing MaxSize.
func (d *Deque[E]) Trim(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	d.trim(n)

	return nil
}

func (d *Deque[E]) trim(n int) {
	for d.tree.Len() > n {
		d.tree.DeleteMax()
	}
}

// nextIndex hands out the next insertion index, resetting the counter
// once it reaches math.MaxInt64.
func (d *Deque[E]) nextIndex() int64 {
	if d.counter < firstIndex || d.counter == math.MaxInt64 {
		d.counter = firstIndex
	}
	idx := d.counter
	d.counter++

	return idx
}

// PushFront inserts v ahead of every stored entry of equal priority.
func (d *Deque[E]) PushFront(v E) error {
	return d.push(v, true)
}

// PushBack inserts v behind every stored entry of equal priority.
func (d *Deque[E]) PushBack(v E) error {
	return d.push(v, false)
}

func (d *Deque[E]) push(v E, front bool) error {
	if isNil(v) {
		return ErrNilValue
	}
	idx := d.nextIndex()
	if front {
		idx = -idx
	}
	d.tree.ReplaceOrInsert(entry[E]{value: v, index: idx})
	d.trim(d.maxSize)

	return nil
}

// RemoveFirst removes and returns the least entry, or ErrEmpty.
func (d *Deque[E]) RemoveFirst() (E, error) {
	e, ok := d.tree.DeleteMin()
	if !ok {
		var zero E
		return zero, ErrEmpty
	}

	return e.value, nil
}

// RemoveLast removes and returns the greatest entry, or ErrEmpty.
func (d *Deque[E]) RemoveLast() (E, error) {
	e, ok := d.tree.DeleteMax()
	if !ok {
		var zero E
		return zero, ErrEmpty
	}

	return e.value, nil
}

// PollFirst removes and returns the least entry; ok is false when d is empty.
func (d *Deque[E]) PollFirst() (v E, ok bool) {
	e, ok := d.tree.DeleteMin()
	return e.value, ok
}

// PollLast removes and returns the greatest entry; ok is false when d is empty.
func (d *Deque[E]) PollLast() (v E, ok bool) {
	e, ok := d.tree.DeleteMax()
	return e.value, ok
}

// First returns the least entry without removing it, or ErrEmpty.
func (d *Deque[E]) First() (E, error) {
	e, ok := d.tree.Min()
	if !ok {
		var zero E
		return zero, ErrEmpty
	}

	return e.value, nil
}

// Last returns the greatest entry without removing it, or ErrEmpty.
func (d *Deque[E]) Last() (E, error) {
	e, ok := d.tree.Max()
	if !ok {
		var zero E
		return zero, ErrEmpty
	}

	return e.value, nil
}

// PeekFirst returns the least entry; ok is false when d is empty.
func (d *Deque[E]) PeekFirst() (v E, ok bool) {
	e, ok := d.tree.Min()
	return e.value, ok
}

// PeekLast returns the greatest entry; ok is false when d is empty.
func (d *Deque[E]) PeekLast() (v E, ok bool) {
	e, ok := d.tree.Max()
	return e.value, ok
}

// Contains reports whether an entry of equal priority to v is stored.
func (d *Deque[E]) Contains(v E) bool {
	if isNil(v) {
		return false
	}
	_, ok := d.ceiling(v)

	return ok
}

// RemoveValue removes one entry of equal priority to v: the first one in
// order when fromFront is true, the last one otherwise. The side v was
// originally pushed from is irrelevant. It reports whether an entry was removed.
func (d *Deque[E]) RemoveValue(v E, fromFront bool) bool {
	if isNil(v) {
		return false
	}
	var (
		e  entry[E]
		ok bool
	)
	if fromFront {
		e, ok = d.ceiling(v)
	} else {
		e, ok = d.floor(v)
	}
	if !ok {
		return false
	}
	_, ok = d.tree.Delete(e)

	return ok
}

// RemoveFirstOccurrence is RemoveValue(v, true).
func (d *Deque[E]) RemoveFirstOccurrence(v E) bool { return d.RemoveValue(v, true) }

// RemoveLastOccurrence is RemoveValue(v, false).
func (d *Deque[E]) RemoveLastOccurrence(v E) bool { return d.RemoveValue(v, false) }

// ceiling finds the smallest entry not less than the probe (v, MinInt64)
// and accepts it only when its value has equal priority to v.
func (d *Deque[E]) ceiling(v E) (entry[E], bool) {
	var (
		found entry[E]
		ok    bool
	)
	d.tree.AscendGreaterOrEqual(entry[E]{value: v, index: probeLow}, func(e entry[E]) bool {
		found, ok = e, true
		return false
	})
	if !ok || d.compare(found.value, v) != 0 {
		return entry[E]{}, false
	}

	return found, true
}

// floor finds the largest entry not greater than the probe (v, MaxInt64)
// and accepts it only when its value has equal priority to v.
func (d *Deque[E]) floor(v E) (entry[E], bool) {
	var (
		found entry[E]
		ok    bool
	)
	d.tree.DescendLessOrEqual(entry[E]{value: v, index: probeHigh}, func(e entry[E]) bool {
		found, ok = e, true
		return false
	})
	if !ok || d.compare(found.value, v) != 0 {
		return entry[E]{}, false
	}

	return found, true
}

// Clear removes every entry and resets the insertion counter.
func (d *Deque[E]) Clear() {
	d.tree.Clear(false)
	d.counter = firstIndex
}

// Values returns the stored values in ascending order.
func (d *Deque[E]) Values() []E {
	out := make([]E, 0, d.tree.Len())
	d.tree.Ascend(func(e entry[E]) bool {
		out = append(out, e.value)
		return true
	})

	return out
}

// All returns an ascending iterator over a snapshot of d taken at call time.
// Later mutations of d are not observed; the iterator may be ranged over repeatedly.
func (d *Deque[E]) All() iter.Seq[E] {
	snap := d.tree.Clone()
	return func(yield func(E) bool) {
		snap.Ascend(func(e entry[E]) bool {
			return yield(e.value)
		})
	}
}

// Backward returns a descending iterator over a snapshot of d taken at call time.
func (d *Deque[E]) Backward() iter.Seq[E] {
	snap := d.tree.Clone()
	return func(yield func(E) bool) {
		snap.Descend(func(e entry[E]) bool {
			return yield(e.value)
		})
	}
}

// Clone returns a shallow copy of d: the ordering structure, comparator,
// capacity bound and insertion counter are duplicated, the values are not.
func (d *Deque[E]) Clone() *Deque[E] {
	return &Deque[E]{
		tree:    d.tree.Clone(),
		compare: d.compare,
		counter: d.counter,
		maxSize: d.maxSize,
	}
}

// isNil reports whether v is a nil interface or a nil value of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
