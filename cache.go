package rosu

import (
	"hash/fnv"
	"sync"
)

// nameCache maps lowercased usernames to numeric user ids so endpoints that
// accept either form avoid a redundant lookup round-trip. Sharded to keep
// lock contention low; entries are never evicted for the client's lifetime.
type nameCache struct {
	shards    []*nameCacheShard
	numShards int
}

type nameCacheShard struct {
	mu    sync.RWMutex
	store map[string]uint32
}

func newNameCache() *nameCache {
	numShards := 16
	shards := make([]*nameCacheShard, numShards)
	for i := range shards {
		shards[i] = &nameCacheShard{
			store: make(map[string]uint32),
		}
	}
	return &nameCache{
		shards:    shards,
		numShards: numShards,
	}
}

func (c *nameCache) getShard(key string) *nameCacheShard {
	hash := fnv.New32a()
	hash.Write([]byte(key))
	return c.shards[hash.Sum32()%uint32(c.numShards)]
}

// Lookup returns the cached id for a lowercased username.
func (c *nameCache) Lookup(name string) (uint32, bool) {
	shard := c.getShard(name)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	id, ok := shard.store[name]
	return id, ok
}

// Insert stores a mapping; concurrent inserts for the same name race and the
// last write wins.
func (c *nameCache) Insert(name string, id uint32) {
	shard := c.getShard(name)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	shard.store[name] = id
}

// Len returns the total number of cached names.
func (c *nameCache) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.RLock()
		total += len(shard.store)
		shard.mu.RUnlock()
	}
	return total
}
