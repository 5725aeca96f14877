package namer

import (
	"container/list"
	"sync"
)

// candidateKey identifies one filtered view of a cached list.
type candidateKey struct {
	generation uint64
	list       listKey
	prefix     string
	suffix     string
}

type candidateEntry struct {
	key   candidateKey
	names []string
}

// candidateCache keeps the most recently used filter results. Populated
// lists never change within a registry generation, so a result stays valid
// until the generation moves on and its key stops being asked for.
type candidateCache struct {
	mu       sync.Mutex
	capacity int
	items    map[candidateKey]*list.Element
	order    *list.List
}

func newCandidateCache(capacity int) *candidateCache {
	if capacity <= 0 {
		return nil
	}
	return &candidateCache{
		capacity: capacity,
		items:    make(map[candidateKey]*list.Element),
		order:    list.New(),
	}
}

func (c *candidateCache) get(key candidateKey) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*candidateEntry).names, true
	}
	return nil, false
}

func (c *candidateCache) put(key candidateKey, names []string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*candidateEntry).names = names
		return
	}

	c.items[key] = c.order.PushFront(&candidateEntry{key: key, names: names})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*candidateEntry).key)
	}
}

func (c *candidateCache) len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
