// Package wordcount implements a word-frequency counter on top of the
// red-black tree in package rbtree.
package wordcount

import (
	"sync"

	"github.com/AlonMell/wordfreq/internal/logging"
	"github.com/AlonMell/wordfreq/internal/rbtree"
)

var logger = logging.MustGetLogger("wordcount")

// Entry is a word with its number of occurrences.
type Entry struct {
	Word  string
	Count int
}

// Counter counts word occurrences. The tree is guarded by a single lock,
// so a Counter is safe for concurrent use.
type Counter struct {
	tree  *rbtree.Tree
	total int // Occurrences of all words
	stats *stats
	mu    sync.RWMutex
}

// New creates an empty Counter.
func New() *Counter {
	return &Counter{
		tree:  rbtree.New(),
		stats: newStats(),
	}
}

// Add counts one occurrence of word and returns its new count.
func (c *Counter) Add(word string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, isNew := c.tree.Insert(word)
	if isNew {
		c.stats.distinct.Inc(1)
	} else {
		c.stats.duplicates.Inc(1)
	}
	c.stats.added.Inc(1)
	c.total++
	return n.Count()
}

// Count returns the number of occurrences of word.
func (c *Counter) Count(word string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n, ok := c.tree.Find(word)
	if !ok {
		return 0, false
	}
	return n.Count(), true
}

// Remove forgets word and returns the count it had.
func (c *Counter) Remove(word string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.tree.Delete(word)
	if !ok {
		return 0, false
	}
	c.total -= n.Count()
	c.stats.removed.Inc(1)
	c.stats.distinct.Dec(1)
	logger.Debugf("removed %q (%d occurrences)", word, n.Count())
	return n.Count(), true
}

// Len returns the number of distinct words.
func (c *Counter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tree.Len()
}

// Total returns the number of counted occurrences.
func (c *Counter) Total() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.total
}

// ForEach calls fn for every word in ascending order until fn returns false.
// fn must not call methods of c that modify it.
func (c *Counter) ForEach(fn func(word string, count int) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for word, count := range c.tree.InOrder() {
		if !fn(word, count) {
			break
		}
	}
}

// Verify checks the invariants of the underlying tree.
func (c *Counter) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tree.Verify()
}

// Top returns the n most frequent words, ties broken by ascending word.
// n <= 0 returns every word.
func (c *Counter) Top(n int) []Entry {
	it := c.Iterator()
	defer it.Close()
	return RankEntries(it, n)
}

// CounterIterator walks a snapshot of a Counter in ascending word order.
type CounterIterator struct {
	entries   []Entry
	currIndex int
	closed    bool
}

// Iterator snapshots c and returns an iterator over the snapshot.
// Later changes to c are not visible through it.
func (c *Counter) Iterator() *CounterIterator {
	c.mu.RLock()
	entries := make([]Entry, 0, c.tree.Len())
	for word, count := range c.tree.InOrder() {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	c.mu.RUnlock()

	return &CounterIterator{
		entries:   entries,
		currIndex: -1, // Start before the first element
	}
}

// Next advances the iterator to the next entry.
func (it *CounterIterator) Next() bool {
	if it.closed || it.currIndex >= len(it.entries)-1 {
		return false
	}
	it.currIndex++
	return true
}

// Word returns the current word.
func (it *CounterIterator) Word() string {
	return it.entries[it.currIndex].Word
}

// Count returns the count of the current word.
func (it *CounterIterator) Count() int {
	return it.entries[it.currIndex].Count
}

// Close releases the snapshot.
func (it *CounterIterator) Close() error {
	it.closed = true
	it.entries = nil
	return nil
}
