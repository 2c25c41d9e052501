// Package exec hosts the single-writer concurrency harness around
// book.Orderbook: one goroutine owns one book and serializes every
// request to it over a channel, and an Exchange looks up or creates a
// BookWorker per symbol. Neither type is part of the matching core; a
// caller that already serializes access some other way can talk to a
// book.Orderbook directly instead.
package exec

import (
	"errors"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"matchbook/book"
	"matchbook/domain"
)

// ErrEngineStopped is returned by Submit when the worker's goroutine has
// already exited, which happens once Stop has been called or the
// goroutine has died.
var ErrEngineStopped = errors.New("exec: engine stopped")

// BookWorker is a single-writer actor: exactly one goroutine ever submits
// to the wrapped book.Orderbook, serialized by the channel handoff below.
// It still goes through the book's own locking Submit rather than
// SubmitLocked, since Book() exposes the same orderbook for concurrent
// read-only queries (BestBid, Spread, Trades, ...) from other goroutines.
type BookWorker struct {
	symbol string
	book   *book.Orderbook
	clock  *domain.Clock

	requests chan *domain.Request
	t        tomb.Tomb
}

// NewBookWorker builds a worker for symbol and starts its goroutine. The
// caller must eventually call Stop.
func NewBookWorker(symbol string, clock *domain.Clock) *BookWorker {
	w := &BookWorker{
		symbol:   symbol,
		book:     book.NewOrderbook(clock),
		clock:    clock,
		requests: make(chan *domain.Request, 1024),
	}
	w.t.Go(w.run)
	return w
}

func (w *BookWorker) run() error {
	log.Info().Str("symbol", w.symbol).Msg("book worker starting")
	for {
		select {
		case <-w.t.Dying():
			log.Info().Str("symbol", w.symbol).Msg("book worker stopping")
			return nil
		case req := <-w.requests:
			w.book.Submit(req)
		}
	}
}

// Submit hands req to the worker's goroutine. It blocks only until the
// request is enqueued, not until it is processed.
func (w *BookWorker) Submit(req *domain.Request) error {
	select {
	case <-w.t.Dying():
		return ErrEngineStopped
	default:
	}

	select {
	case <-w.t.Dying():
		return ErrEngineStopped
	case w.requests <- req:
		return nil
	}
}

// Book returns the worker's underlying book. Safe to call from any
// goroutine for read-only queries (BestBid, BestAsk, Spread, Size,
// Snapshot, Trades) since those acquire the book's own lock; callers must
// not call SubmitLocked or any other *Locked method on it directly, since
// that would race with the worker goroutine.
func (w *BookWorker) Book() *book.Orderbook {
	return w.book
}

// Stop signals the worker's goroutine to exit and waits for it to do so.
func (w *BookWorker) Stop() error {
	w.t.Kill(nil)
	return w.t.Wait()
}
