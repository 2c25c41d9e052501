// Package book implements a single-instrument price-time priority order
// book: submission, matching, cancellation, and best-bid/ask/spread
// queries, guarded by a single mutex per book.
package book

import (
	"fmt"
	"strings"
	"sync"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"matchbook/domain"
)

// resting is the bookkeeping an Orderbook keeps per live resting order:
// the request itself plus the key it is currently filed under, since the
// key changes (and the order must be removed and reinserted) whenever a
// partial fill changes its remaining quantity.
type resting struct {
	req *domain.Request
	key priorityKey
}

// Orderbook is a two-sided limit order book for one instrument. All
// exported methods other than the Locked variants acquire mu; the Locked
// variants take no lock at all. The locking methods call them while
// holding mu; a caller outside this package cannot acquire mu, so it may
// call a Locked variant only when it serializes every access to the book
// some other way.
type Orderbook struct {
	mu sync.Mutex

	clock *domain.Clock

	bids *rbt.Tree[priorityKey, *domain.Request] // descending price
	asks *rbt.Tree[priorityKey, *domain.Request] // ascending price

	index map[domain.ID]resting

	trades []domain.Trade
}

// NewOrderbook builds an empty book driven by clock. Trades and resting
// orders it produces are timestamped from clock, so a single Clock should
// be shared across every book that must order events relative to each
// other.
func NewOrderbook(clock *domain.Clock) *Orderbook {
	return &Orderbook{
		clock: clock,
		bids: rbt.NewWith[priorityKey, *domain.Request](func(a, b priorityKey) int {
			return compareKey(domain.SideBuy, a, b)
		}),
		asks: rbt.NewWith[priorityKey, *domain.Request](func(a, b priorityKey) int {
			return compareKey(domain.SideSell, a, b)
		}),
		index: make(map[domain.ID]resting),
	}
}

func (b *Orderbook) treeFor(side domain.Side) *rbt.Tree[priorityKey, *domain.Request] {
	if side == domain.SideBuy {
		return b.bids
	}
	return b.asks
}

// Submit acquires the book's lock and dispatches req by its Kind.
func (b *Orderbook) Submit(req *domain.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.SubmitLocked(req)
}

// SubmitLocked dispatches req by its Kind without taking the book's lock;
// the caller must provide mutual exclusion.
func (b *Orderbook) SubmitLocked(req *domain.Request) {
	switch req.Kind {
	case domain.KindCancel:
		b.cancelLocked(req.ID)
	case domain.KindMarket, domain.KindLimit:
		b.matchLocked(req)
	default:
		panic(fmt.Sprintf("orderbook: unknown request kind %v", req.Kind))
	}
}

// cancelLocked removes a resting order by id, if it is still resting. A
// cancel against an id that is unknown, already filled, or already
// cancelled is a silent no-op, per the book's idempotent cancel contract.
func (b *Orderbook) cancelLocked(id domain.ID) {
	r, ok := b.index[id]
	if !ok {
		return
	}
	b.treeFor(r.req.Side()).Remove(r.key)
	delete(b.index, id)
	r.req.MarkCancelled()
}

// matchLocked runs the pop/fill/trade/reinsert loop for an incoming
// market or limit order: repeatedly take the best resting order on the
// opposite side while it is still matchable, print a trade at the resting
// order's price, and either remove the resting order (fully filled) or
// rekey it under its new, smaller remaining quantity. A limit order with
// quantity left over after matching rests; a market order's leftover is
// discarded, since market orders never rest.
func (b *Orderbook) matchLocked(incoming *domain.Request) {
	opposite := incoming.Side().Opposite()
	oppTree := b.treeFor(opposite)

	for incoming.Remaining() > 0 {
		node := oppTree.Left()
		if node == nil {
			break
		}
		against := node.Value

		if incoming.Kind == domain.KindLimit && !limitMatchable(incoming.Side(), incoming.Price(), against.Price()) {
			break
		}

		qty := min64(incoming.Remaining(), against.Remaining())
		price := against.Price()

		incoming.Fill(qty)
		against.Fill(qty)

		b.trades = append(b.trades, domain.Trade{
			Ts:         b.clock.Next(),
			Side:       incoming.Side(),
			Price:      price,
			Size:       qty,
			IncomingID: incoming.ID,
			BookID:     against.ID,
		})

		oppTree.Remove(node.Key)
		if against.Remaining() > 0 {
			newKey := keyFor(against)
			oppTree.Put(newKey, against)
			b.index[against.ID] = resting{req: against, key: newKey}
		} else {
			delete(b.index, against.ID)
		}
	}

	if incoming.Kind == domain.KindLimit && incoming.Remaining() > 0 {
		b.insertLocked(incoming)
	}
}

// limitMatchable reports whether an incoming limit order's price crosses
// the opposite side's best resting price: a buy matches if its price is
// at or above the best ask, a sell matches if its price is at or below
// the best bid.
func limitMatchable(side domain.Side, incomingPrice, restingPrice int64) bool {
	if side == domain.SideBuy {
		return incomingPrice >= restingPrice
	}
	return incomingPrice <= restingPrice
}

// insertLocked books a limit order's unfilled remainder into its own
// side's tree.
func (b *Orderbook) insertLocked(req *domain.Request) {
	req.Rest()
	key := keyFor(req)
	b.treeFor(req.Side()).Put(key, req)
	b.index[req.ID] = resting{req: req, key: key}
}

// BestBid acquires the lock and returns the best (highest) resting buy
// price, if any order is resting on the bid side.
func (b *Orderbook) BestBid() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.BestBidLocked()
}

// BestBidLocked is BestBid for a caller already holding the lock.
func (b *Orderbook) BestBidLocked() (int64, bool) {
	node := b.bids.Left()
	if node == nil {
		return 0, false
	}
	return node.Key.Price, true
}

// BestAsk acquires the lock and returns the best (lowest) resting sell
// price, if any order is resting on the ask side.
func (b *Orderbook) BestAsk() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.BestAskLocked()
}

// BestAskLocked is BestAsk for a caller already holding the lock.
func (b *Orderbook) BestAskLocked() (int64, bool) {
	node := b.asks.Left()
	if node == nil {
		return 0, false
	}
	return node.Key.Price, true
}

// Spread acquires the lock and returns both sides of the book at once, so
// a caller never observes a bid/ask pair that straddled an intervening
// mutation.
func (b *Orderbook) Spread() (bid, ask int64, bidOk, askOk bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.SpreadLocked()
}

// SpreadLocked is Spread for a caller already holding the lock.
func (b *Orderbook) SpreadLocked() (bid, ask int64, bidOk, askOk bool) {
	bid, bidOk = b.BestBidLocked()
	ask, askOk = b.BestAskLocked()
	return
}

// Size returns the number of resting orders across both sides.
func (b *Orderbook) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.index)
}

// Snapshot renders a human-readable dump of both sides, best price first
// on each side, for debugging and for test failure messages.
func (b *Orderbook) Snapshot() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("bids:\n")
	it := b.bids.Iterator()
	for it.Next() {
		req := it.Value()
		fmt.Fprintf(&sb, "  id=%d price=%d remaining=%d ts=%d status=%s\n", req.ID, req.Price(), req.Remaining(), req.Ts, req.Status())
	}
	sb.WriteString("asks:\n")
	it = b.asks.Iterator()
	for it.Next() {
		req := it.Value()
		fmt.Fprintf(&sb, "  id=%d price=%d remaining=%d ts=%d status=%s\n", req.ID, req.Price(), req.Remaining(), req.Ts, req.Status())
	}
	return sb.String()
}

// Trades returns the book's append-only trade log in execution order.
// The returned slice is the book's own backing array; callers must not
// mutate it.
func (b *Orderbook) Trades() []domain.Trade {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trades
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
