// Command bench drives one book.Orderbook directly (bypassing the
// exec actor, since the benchmark wants to measure the core's own
// throughput) with concurrent producers submitting crossing limit
// orders, reporting submitted/matched counts and optionally writing a
// CPU profile.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"sync/atomic"
	"time"

	"matchbook/book"
	"matchbook/domain"
)

func main() {
	duration := flag.Duration("duration", 5*time.Second, "how long to run")
	workers := flag.Int("workers", 0, "number of producer goroutines (0 = NumCPU-2)")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}

	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU() - 2
		if numWorkers < 1 {
			numWorkers = 1
		}
	}

	clock := domain.NewClock()
	ob := book.NewOrderbook(clock)

	var orderCount, tradeCount atomic.Int64

	fmt.Printf("matchbook throughput bench: %d producers, %v\n", numWorkers, *duration)

	stop := make(chan struct{})
	basePrice := int64(50000)

	for w := 0; w < numWorkers; w++ {
		go func(workerID int) {
			n := int64(0)
			for {
				select {
				case <-stop:
					return
				default:
					side := domain.SideBuy
					if n%2 != 0 {
						side = domain.SideSell
					}
					price := basePrice + n%200
					size := int64(1 + rand.Intn(20))
					id := domain.ID(int64(workerID)<<48 | n)
					req := domain.NewLimit(clock, id, side, size, price)

					before := len(ob.Trades())
					ob.Submit(req)
					after := len(ob.Trades())

					orderCount.Add(1)
					tradeCount.Add(int64(after - before))
					n++
				}
			}
		}(w)
	}

	start := time.Now()
	time.Sleep(*duration)
	close(stop)
	elapsed := time.Since(start)

	orders := orderCount.Load()
	trades := tradeCount.Load()
	fmt.Printf("orders: %d (%.0f/s)\n", orders, float64(orders)/elapsed.Seconds())
	fmt.Printf("trades: %d (%.0f/s)\n", trades, float64(trades)/elapsed.Seconds())
	fmt.Printf("resting at end: %d\n", ob.Size())
}
