// Package flight coalesces duplicate expensive work. Concurrent requests
// for the same key share one execution, and finished results are kept for
// a bounded time so rapid repeats stay cheap.
package flight

import (
	"sync"
	"time"
)

type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	finished map[K]result[V]
	pending  map[K]*call[V]
	work     func(K) (V, error)
	ttl      time.Duration
}

type result[V any] struct {
	val V
	at  time.Time
}

type call[V any] struct {
	val  V
	err  error
	done chan struct{}
}

// New builds a cache around work. ttl <= 0 keeps results until Force
// replaces them.
func New[K comparable, V any](ttl time.Duration, work func(K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		finished: make(map[K]result[V]),
		pending:  make(map[K]*call[V]),
		work:     work,
		ttl:      ttl,
	}
}

// Get returns the cached value for k, joins an in-flight execution if one
// exists, or runs the work itself.
func (c *Cache[K, V]) Get(k K) (V, error) {
	c.mu.Lock()
	if r, ok := c.finished[k]; ok {
		if c.ttl <= 0 || time.Since(r.at) < c.ttl {
			c.mu.Unlock()
			return r.val, nil
		}
		delete(c.finished, k)
	}
	if p, ok := c.pending[k]; ok {
		c.mu.Unlock()
		<-p.done
		return p.val, p.err
	}
	cl := &call[V]{done: make(chan struct{})}
	c.pending[k] = cl
	c.mu.Unlock()

	c.run(k, cl)
	return cl.val, cl.err
}

// Force runs the work again regardless of any cached value. A concurrent
// in-flight execution is waited out first so two runs never overlap.
func (c *Cache[K, V]) Force(k K) (V, error) {
	var cl *call[V]
	for {
		c.mu.Lock()
		if p, ok := c.pending[k]; ok {
			c.mu.Unlock()
			<-p.done
			continue
		}
		cl = &call[V]{done: make(chan struct{})}
		c.pending[k] = cl
		c.mu.Unlock()
		break
	}

	c.run(k, cl)
	return cl.val, cl.err
}

// Forget drops any finished value for k.
func (c *Cache[K, V]) Forget(k K) {
	c.mu.Lock()
	delete(c.finished, k)
	c.mu.Unlock()
}

func (c *Cache[K, V]) run(k K, cl *call[V]) {
	cl.val, cl.err = c.work(k)

	c.mu.Lock()
	if cl.err == nil {
		c.finished[k] = result[V]{val: cl.val, at: time.Now()}
	}
	delete(c.pending, k)
	close(cl.done)
	c.mu.Unlock()
}
