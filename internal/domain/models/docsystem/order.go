package docsystem

// Order allocation constants. The gap leaves room for later manual
// reordering by fractional insertion between neighbors without renumbering
// the whole scope.
const (
	OrderGap  int64 = 1000
	OrderBase int64 = 1000
)

// NextOrderAfter returns an order value that sorts after every existing value
// in an ascending, append-at-end scope. exists is false when the scope is
// empty. Pure: the caller supplies the current highest value (query sorted
// descending, limit one).
func NextOrderAfter(highest int64, exists bool) int64 {
	if !exists {
		return OrderBase
	}
	return highest + OrderGap
}

// NextOrderBefore is the symmetric rule for descending, newest-first scopes:
// the new value sorts after all existing values under that convention, i.e.
// below the current lowest.
func NextOrderBefore(lowest int64, exists bool) int64 {
	if !exists {
		return OrderBase
	}
	return lowest - OrderGap
}

// OrderBetween returns the midpoint between two neighboring order values,
// used when a document is manually moved between two others. The caller is
// responsible for renumbering if the gap has collapsed to zero.
func OrderBetween(prev, next int64) int64 {
	return prev + (next-prev)/2
}
