package utils

import (
	"os"
	"sync"
	"time"
)

// stamp identifies one version of a file on disk
type stamp struct {
	modTime time.Time
	size    int64
}

func stampOf(info os.FileInfo) stamp {
	return stamp{modTime: info.ModTime(), size: info.Size()}
}

func (s stamp) same(other stamp) bool {
	return s.size == other.size && s.modTime.Equal(other.modTime)
}

type stampedEntry[V any] struct {
	value V
	stamp stamp
}

// StampCache keeps one value derived from each file, such as its contents or a
// parsed go.mod. An entry is rebuilt once the file's size or modification time
// changes. Safe for concurrent use.
type StampCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]stampedEntry[V]
}

// NewStampCache creates an empty cache
func NewStampCache[V any]() *StampCache[V] {
	return &StampCache[V]{entries: make(map[string]stampedEntry[V])}
}

// Load returns the value cached for path, calling build with the file's
// contents when there is no entry for the current version of the file.
// Build errors are returned and not cached.
func (c *StampCache[V]) Load(path string, build func(content []byte) (V, error)) (V, error) {
	var zero V

	info, err := os.Stat(path)
	if err != nil {
		c.Forget(path)
		return zero, err
	}
	current := stampOf(info)

	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && entry.stamp.same(current) {
		return entry.value, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return zero, err
	}
	value, err := build(content)
	if err != nil {
		c.Forget(path)
		return zero, err
	}

	c.mu.Lock()
	c.entries[path] = stampedEntry[V]{value: value, stamp: current}
	c.mu.Unlock()
	return value, nil
}

// Forget drops the entry for path
func (c *StampCache[V]) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, path)
}

// Len returns the number of cached files
func (c *StampCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
