package book

import "matchbook/domain"

// priorityKey is domain.Key under the book package's own name, so the
// rest of this package doesn't need to spell out the domain import at
// every use.
type priorityKey = domain.Key

// keyFor snapshots a request's current priority tuple. Must be called
// again after a partial fill changes remaining, since the key used to
// insert a resting order is not update-in-place: it is removed and
// reinserted under its new key.
func keyFor(r *domain.Request) priorityKey {
	return r.PriorityKey()
}

// compareKey orders two keys for the given side by the same priority
// relation domain.Request orders by.
func compareKey(side domain.Side, a, b priorityKey) int {
	return domain.Compare(side, a, b)
}
