// Command matchbookd runs a single matching process: one Exchange
// fanning requests out to one BookWorker per symbol, logging through
// zerolog and, when MATCHBOOK_ORDER_RATE is positive, fed by a synthetic
// order generator on its configured symbol. It exists as the external collaborator the matching core
// assumes but does not itself implement: it is not part of the core's
// tested invariants.
package main

import (
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"matchbook/domain"
	"matchbook/exec"
)

func main() {
	cfg := loadConfig()

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.logPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	clock := domain.NewClock()
	exchange := exec.NewExchange(clock)
	ids := newIDGenerator()

	engine := exchange.GetEngine(cfg.symbol)
	log.Info().Str("symbol", cfg.symbol).Msg("matchbookd started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	if cfg.orderRate > 0 {
		go generateOrders(engine, clock, ids, cfg, done)
	}

	<-stop
	close(done)
	log.Info().Msg("matchbookd shutting down")
	if err := exchange.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping exchange")
	}
}

// generateOrders feeds engine a stream of crossing limit orders at
// roughly cfg.orderRate per second, for local exercising of the book
// without a real client. It is a test fixture, not part of the harness's
// documented operator interface.
func generateOrders(engine *exec.BookWorker, clock *domain.Clock, ids *idGenerator, cfg config, done <-chan struct{}) {
	interval := time.Second / time.Duration(cfg.orderRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	basePrice := int64(10000)
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			side := domain.SideBuy
			if rand.Intn(2) == 0 {
				side = domain.SideSell
			}
			price := basePrice + int64(rand.Intn(200)-100)
			size := int64(1 + rand.Intn(50))
			req := domain.NewLimit(clock, ids.Next(), side, size, price)
			if err := engine.Submit(req); err != nil {
				log.Error().Err(err).Msg("failed to submit generated order")
			}
		}
	}
}
