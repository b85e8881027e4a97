package linkcheck

import (
	"context"
	"sync"
	"time"
)

type task func(ctx context.Context)

// workerPool runs tasks on a fixed number of goroutines. When a rate is set
// every task waits for a shared ticker, so the rate bounds the whole pool.
type workerPool struct {
	workers int
	tasks   chan task
	wg      sync.WaitGroup
	ticker  *time.Ticker
}

func newWorkerPool(workers, ratePerSecond int) *workerPool {
	if workers <= 0 {
		workers = 1
	}
	p := &workerPool{workers: workers, tasks: make(chan task)}
	if ratePerSecond > 0 {
		p.ticker = time.NewTicker(time.Second / time.Duration(ratePerSecond))
	}
	return p
}

func (p *workerPool) start(ctx context.Context) {
	p.wg.Add(p.workers)
	for range p.workers {
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				if ctx.Err() != nil {
					continue
				}
				if p.ticker != nil {
					select {
					case <-ctx.Done():
						continue
					case <-p.ticker.C:
					}
				}
				t(ctx)
			}
		}()
	}
}

// submit blocks until a worker takes t or ctx is done.
func (p *workerPool) submit(ctx context.Context, t task) bool {
	select {
	case <-ctx.Done():
		return false
	case p.tasks <- t:
		return true
	}
}

func (p *workerPool) wait() {
	close(p.tasks)
	p.wg.Wait()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}
