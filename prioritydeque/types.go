package prioritydeque

import (
	"errors"
	"math"
)

// Sentinel errors returned by Deque operations.
var (
	// ErrEmpty indicates an unchecked accessor was used on an empty deque.
	ErrEmpty = errors.New("prioritydeque: deque is empty")

	// ErrNilValue indicates a nil pointer, interface, map, slice, func or chan
	// was passed where a value is required.
	ErrNilValue = errors.New("prioritydeque: nil value")

	// ErrNegativeCapacity indicates a negative capacity bound.
	ErrNegativeCapacity = errors.New("prioritydeque: capacity must be non-negative")
)

// Unbounded is the default MaxSize: no capacity bound.
const Unbounded = math.MaxInt

const (
	// firstIndex is the first value handed out by the insertion counter.
	// Starting at 1 keeps 0 unused so that front and back entries never share an index.
	firstIndex int64 = 1

	// probeLow and probeHigh are the boundary indices used for value lookups.
	probeLow  int64 = math.MinInt64
	probeHigh int64 = math.MaxInt64

	// btreeDegree is the branching factor of the backing tree.
	btreeDegree = 16
)

// entry wraps a stored value with its signed insertion index.
type entry[E any] struct {
	value E
	index int64
}

// config collects construction-time settings.
type config struct {
	maxSize int
}

// Option configures a Deque at construction time.
type Option func(*config)

// WithMaxSize bounds the number of stored entries. Insertions beyond the bound
// evict the greatest entries. A negative bound is a programmer error and panics.
func WithMaxSize(n int) Option {
	return func(c *config) {
		if n < 0 {
			panic(ErrNegativeCapacity.Error())
		}
		c.maxSize = n
	}
}

// defaultConfig returns an unbounded configuration.
func defaultConfig() config {
	return config{maxSize: Unbounded}
}
