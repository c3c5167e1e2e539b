// Package prioritydeque provides an ordered multiset with deque semantics
// among equal priorities.
//
// Overview:
//
//   - Elements are kept sorted by a comparator (cmp.Compare for ordered types,
//     or a user-supplied func(a, b E) int). Duplicates are permitted.
//   - Every stored element is wrapped in an entry carrying a signed insertion
//     index. Entries compare by value first and by index second, so a single
//     balanced tree yields both priority-queue and deque behavior:
//     PushFront gives an element the next negative index, PushBack the next
//     positive one. Within a group of equal priority, front-pushed elements
//     come out in reverse insertion order, followed by back-pushed elements in
//     insertion order.
//   - An optional capacity (MaxSize) bounds the number of entries. Whenever an
//     insertion exceeds it, the greatest entries are evicted silently.
//
// Storage:
//
//	A github.com/google/btree BTreeG[entry[E]] holds the entries.
//	Clone and iteration snapshots use the tree's copy-on-write clone, so both
//	are O(1) up front and pay for copying lazily on later writes.
//
// Boundary probes:
//
//	Membership and removal by value ignore the insertion index. They search
//	for the ceiling of (v, math.MinInt64) or the floor of (v, math.MaxInt64);
//	the insertion counter never produces either sentinel, so a probe can never
//	collide with a stored entry.
//
// Counter:
//
//	The counter starts at 1 and is reset to 1 once it reaches math.MaxInt64.
//	After such a reset, equal-priority entries inserted before and after it
//	may be ordered differently from their insertion order. A new entry whose
//	value and index both match a stored one replaces it, so Len does not grow.
//	Clear also resets the counter.
//
// Errors (sentinel):
//
//   - ErrEmpty:            unchecked accessor on an empty deque.
//   - ErrNilValue:         nil pointer, interface, map, slice, func or chan pushed.
//   - ErrNegativeCapacity: SetMaxSize or Trim with n < 0.
//
// Complexity:
//
//   - PushFront/PushBack/RemoveFirst/RemoveLast/Contains/RemoveValue: O(log n).
//   - First/Last/PeekFirst/PeekLast: O(log n) (tree descent).
//   - Clone, All, Backward: O(1) to create; iteration O(n).
//
// Thread safety:
//
//	A Deque is not safe for concurrent use. Synchronize externally if needed.
package prioritydeque
