package exec

import (
	"errors"
	"sync"
	"sync/atomic"

	"matchbook/domain"
)

// ErrUnknownSymbol is returned by CancelOrder when the symbol has no
// worker yet.
var ErrUnknownSymbol = errors.New("exec: unknown symbol")

// Exchange fans requests out to one BookWorker per symbol. Reads are
// lock-free (a single atomic.Value load of an immutable map); creating a
// worker for a new symbol is the rare copy-on-write path, guarded by mu.
type Exchange struct {
	workers atomic.Value // map[string]*BookWorker
	mu      sync.Mutex
	clock   *domain.Clock
}

// NewExchange builds an empty Exchange sharing one Clock across every
// book it creates, so trades and timestamps across symbols stay ordered
// relative to each other.
func NewExchange(clock *domain.Clock) *Exchange {
	e := &Exchange{clock: clock}
	e.workers.Store(make(map[string]*BookWorker))
	return e
}

// GetEngine returns the BookWorker for symbol, creating one if none
// exists yet.
func (e *Exchange) GetEngine(symbol string) *BookWorker {
	workers := e.workers.Load().(map[string]*BookWorker)
	if w, ok := workers[symbol]; ok {
		return w
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	workers = e.workers.Load().(map[string]*BookWorker)
	if w, ok := workers[symbol]; ok {
		return w
	}

	w := NewBookWorker(symbol, e.clock)

	next := make(map[string]*BookWorker, len(workers)+1)
	for k, v := range workers {
		next[k] = v
	}
	next[symbol] = w
	e.workers.Store(next)

	return w
}

// SubmitOrder routes req to symbol's worker, creating the worker if this
// is the first request for that symbol.
func (e *Exchange) SubmitOrder(symbol string, req *domain.Request) error {
	return e.GetEngine(symbol).Submit(req)
}

// CancelOrder routes a cancel request for id to symbol's worker. Unlike
// SubmitOrder, it does not create a worker for an unknown symbol: a
// cancel against a symbol nothing has ever traded on cannot be resting
// anywhere.
func (e *Exchange) CancelOrder(symbol string, id domain.ID) error {
	workers := e.workers.Load().(map[string]*BookWorker)
	w, ok := workers[symbol]
	if !ok {
		return ErrUnknownSymbol
	}
	return w.Submit(domain.NewCancel(e.clock, id))
}

// Stop stops every worker the Exchange has created.
func (e *Exchange) Stop() error {
	workers := e.workers.Load().(map[string]*BookWorker)
	var firstErr error
	for _, w := range workers {
		if err := w.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
