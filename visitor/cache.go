package visitor

import "sync"

// cache is a read-mostly map guarded by RWMutex.
type cache[K comparable, V any] struct {
	mux sync.RWMutex
	m   map[K]V
}

func newCache[K comparable, V any]() *cache[K, V] {
	return &cache[K, V]{m: make(map[K]V)}
}

func (c *cache[K, V]) getOrBuild(k K, build func() V) V {
	c.mux.RLock()
	v, ok := c.m[k]
	c.mux.RUnlock()
	if ok {
		return v
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	if v, ok = c.m[k]; ok {
		return v
	}
	v = build()
	c.m[k] = v
	return v
}
