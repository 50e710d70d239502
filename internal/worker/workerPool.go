// Package worker runs the independent backend fetches behind a screen
// render concurrently, so a dashboard costs one round-trip instead of
// three sequential ones.
package worker

import (
	"sync"
)

type Task func() error

type Pool struct {
	mu    sync.Mutex
	size  int
	tasks chan Task
	kill  chan struct{}
	wg    sync.WaitGroup

	errMu sync.Mutex
	first error
}

func NewPool(speed int, queue int) *Pool {
	pool := &Pool{
		tasks: make(chan Task, queue),
		kill:  make(chan struct{}),
	}
	pool.Resize(speed)
	return pool
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			if err := task(); err != nil {
				p.errMu.Lock()
				if p.first == nil {
					p.first = err
				}
				p.errMu.Unlock()
			}
		case <-p.kill:
			return
		}
	}
}

func (p *Pool) Resize(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.size < n {
		p.size++
		p.wg.Add(1)
		go p.worker()
	}
	for p.size > n {
		p.size--
		p.kill <- struct{}{}
	}
}

func (p *Pool) Exec(task Task) {
	p.tasks <- task
}

// Wait drains the queue, stops the workers and reports the first task
// error. The pool is spent afterwards.
func (p *Pool) Wait() error {
	close(p.tasks)
	p.wg.Wait()
	p.errMu.Lock()
	defer p.errMu.Unlock()
	return p.first
}
