package domain

// Key is the full priority tuple a resting order is ordered and keyed
// by: price, timestamp, remaining quantity, then id. It is what the
// book's tree actually stores orders under, via Request.PriorityKey.
type Key struct {
	Price     int64
	Ts        int64
	Remaining int64
	ID        ID
}

// Less implements the strict weak order ≺ over resting limit orders on
// one side: better price first, then earlier timestamp, then smaller
// resting quantity. The size comparison uses each order's *current*
// remaining quantity, since ties are evaluated fresh every time an order
// sits at the front of its side after a partial fill.
//
// Ties surviving all three keys (identical side, price, ts, and
// remaining) are broken on id purely to give the underlying tree a total
// order; that tiebreak is never an observable trade-ordering policy.
func Less(side Side, a, b Key) bool {
	if a.Price != b.Price {
		if side == SideBuy {
			return a.Price > b.Price
		}
		return a.Price < b.Price
	}
	if a.Ts != b.Ts {
		return a.Ts < b.Ts
	}
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	return a.ID < b.ID
}

// Compare returns -1, 0, or 1 per the same relation as Less, for use with
// comparator-based ordered collections.
func Compare(side Side, a, b Key) int {
	switch {
	case Less(side, a, b):
		return -1
	case Less(side, b, a):
		return 1
	default:
		return 0
	}
}
