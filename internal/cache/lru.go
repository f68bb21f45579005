package cache

import (
	"sync"
	"sync/atomic"
)

// LRU is a least-recently-used cache of byte slices bounded by their total
// length. It is safe for concurrent use.
type LRU struct {
	mu       sync.Mutex
	capacity int64
	used     int64
	nodes    map[string]*node
	ring     node // sentinel; ring.next is the most recently used

	hits, misses atomic.Int64
}

type node struct {
	prev, next *node
	key        string
	data       []byte
}

// NewLRU returns an LRU holding at most capacity bytes.
func NewLRU(capacity int64) *LRU {
	c := &LRU{capacity: capacity, nodes: make(map[string]*node)}
	c.ring.prev, c.ring.next = &c.ring, &c.ring
	return c
}

// Get returns the data cached under key and marks it most recently used.
func (c *LRU) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.nodes[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	c.unlink(n)
	c.pushFront(n)
	return n.data, true
}

// Set caches data under key. Entries larger than the capacity are not
// cached; older entries are evicted until data fits. data must not be
// modified afterwards.
func (c *LRU) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.nodes[key]; ok {
		c.remove(old)
	}
	size := int64(len(data))
	if size > c.capacity {
		return
	}
	for c.used+size > c.capacity && c.ring.prev != &c.ring {
		c.remove(c.ring.prev)
	}

	n := &node{key: key, data: data}
	c.nodes[key] = n
	c.pushFront(n)
	c.used += size
}

// Delete drops key if it is cached.
func (c *LRU) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.nodes[key]; ok {
		c.remove(n)
	}
}

// Len returns the number of cached entries.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.nodes)
}

// Size returns the cached bytes.
func (c *LRU) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

// Stats returns the hit and miss counts of Get.
func (c *LRU) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *LRU) pushFront(n *node) {
	n.prev, n.next = &c.ring, c.ring.next
	c.ring.next.prev = n
	c.ring.next = n
}

func (c *LRU) unlink(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}

func (c *LRU) remove(n *node) {
	c.unlink(n)
	delete(c.nodes, n.key)
	c.used -= int64(len(n.data))
}
