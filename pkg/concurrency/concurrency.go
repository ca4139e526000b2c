package concurrency

import "sync"

// GoLimit go limit
type GoLimit struct {
	ch chan int
}

// NewGoLimit new go limit
func NewGoLimit(max int) *GoLimit {
	if max <= 0 {
		max = 1
	}

	return &GoLimit{
		ch: make(chan int, max),
	}
}

// Add add num
func (g *GoLimit) Add() {
	g.ch <- 1
}

// Done remove num
func (g *GoLimit) Done() {
	<-g.ch
}

// Await runs fn for every index in [0, n) with at most limit running at once,
// and blocks until all of them return
func Await(limit *GoLimit, n int, fn func(idx int)) {
	var wg sync.WaitGroup
	wg.Add(n)

	for idx := 0; idx < n; idx++ {
		limit.Add()
		go func(idx int) {
			defer wg.Done()
			defer limit.Done()
			fn(idx)
		}(idx)
	}

	wg.Wait()
}
