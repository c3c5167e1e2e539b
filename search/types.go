package search

import (
	"errors"
	"math"
)

// Sentinel errors returned by constructors and setters.
var (
	// ErrBadFrontierSize indicates a frontier bound below 1.
	ErrBadFrontierSize = errors.New("search: max frontier size must be at least 1")

	// ErrBadExploredSize indicates a negative explored-set bound.
	ErrBadExploredSize = errors.New("search: max explored size must be non-negative")

	// ErrNilKeyFunc indicates New was called without an equivalence key function.
	ErrNilKeyFunc = errors.New("search: nil equivalence key function")
)

// Unbounded is the default for both bounds.
const Unbounded = math.MaxInt

// Node is the capability set a search state must provide.
//
// Compare orders nodes by cost: negative when the receiver is cheaper than
// other, zero when equal, positive when costlier. Children returns the
// successor states; nil entries are ignored.
type Node[N any] interface {
	Compare(other N) int
	IsGoal() bool
	Children() []N
}

// Keyed is implemented by nodes that carry their own equivalence key.
type Keyed[K comparable] interface {
	EquivalenceKey() K
}

// KeyedNode is a Node that is also Keyed.
type KeyedNode[N any, K comparable] interface {
	Node[N]
	Keyed[K]
}

// IdentityNode is a comparable Node; identity serves as its equivalence.
type IdentityNode[N any] interface {
	comparable
	Node[N]
}

// Result is the outcome of Run together with diagnostic counters.
type Result[N any] struct {
	Node      N    // goal node; zero value when Found is false
	Found     bool // false means the frontier was exhausted
	Expanded  int  // nodes recorded in the explored set and expanded
	Generated int  // non-nil children produced by expansions
	Pruned    int  // popped nodes or children discarded as dominated
}

// config collects construction-time settings.
type config struct {
	maxFrontier int
	maxExplored int
}

// Option configures a Searcher at construction time.
type Option func(*config) error

// WithMaxFrontierSize bounds the frontier; n must be at least 1.
func WithMaxFrontierSize(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return ErrBadFrontierSize
		}
		c.maxFrontier = n
		return nil
	}
}

// WithMaxExploredSize bounds the explored set; n must be non-negative.
func WithMaxExploredSize(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return ErrBadExploredSize
		}
		c.maxExplored = n
		return nil
	}
}

// WithMaxSizes sets both bounds to n.
func WithMaxSizes(n int) Option {
	return func(c *config) error {
		if err := WithMaxFrontierSize(n)(c); err != nil {
			return err
		}
		return WithMaxExploredSize(n)(c)
	}
}

func defaultConfig() config {
	return config{maxFrontier: Unbounded, maxExplored: Unbounded}
}
