package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), done: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-p.done:
					return
				case job := <-p.jobs:
					if job != nil {
						job()
					}
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// Submit hands t to a worker. Tasks submitted after Stop are dropped.
func (p *pool) Submit(t Task) {
	select {
	case <-p.done:
	case p.jobs <- t:
	}
}

func (p *pool) Stop() {
	p.once.Do(func() { close(p.done) })
	p.wg.Wait()
}
