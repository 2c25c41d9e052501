package domain

// Trade is an immutable record of one fill. It snapshots price, size, and
// ids at emission time; it carries no reference to mutable request state
// and is never modified once appended to a book's trade log.
type Trade struct {
	Ts         int64 // microseconds, assigned at match time
	Side       Side  // aggressor side
	Price      int64 // the passive (resting) order's price
	Size       int64 // matched quantity
	IncomingID ID    // aggressor order id
	BookID     ID    // passive order id
}
