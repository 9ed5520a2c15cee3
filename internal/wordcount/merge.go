package wordcount

import (
	"container/heap"
)

// Iterator walks words in ascending order.
type Iterator interface {
	// Next advances the iterator to the next word.
	// Returns false when no more words exist.
	Next() bool

	// Word returns the current word.
	Word() string

	// Count returns the count of the current word.
	Count() int

	// Close releases resources associated with the iterator.
	Close() error
}

// head is the current entry of one merged iterator.
type head struct {
	iterator Iterator
	word     string
	count    int
	index    int // Used by heap.Interface
}

// heads implements heap.Interface ordered by word.
type heads []*head

func (h heads) Len() int { return len(h) }

func (h heads) Less(i, j int) bool {
	return h[i].word < h[j].word
}

func (h heads) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *heads) Push(x any) {
	item := x.(*head)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *heads) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// MergeIterator merges several ascending iterators into one. A word present
// in more than one input is yielded once with the counts summed.
type MergeIterator struct {
	iterators []Iterator
	pq        heads
	word      string
	count     int
}

// NewMergeIterator creates a MergeIterator over iterators.
func NewMergeIterator(iterators ...Iterator) *MergeIterator {
	m := &MergeIterator{
		iterators: iterators,
		pq:        make(heads, 0, len(iterators)),
	}
	for _, it := range iterators {
		m.advance(&head{iterator: it})
	}
	return m
}

// advance moves h to the next entry of its iterator and pushes it back,
// or drops it when the iterator is exhausted.
func (m *MergeIterator) advance(h *head) {
	if !h.iterator.Next() {
		return
	}
	h.word = h.iterator.Word()
	h.count = h.iterator.Count()
	heap.Push(&m.pq, h)
}

// Next advances to the next distinct word.
func (m *MergeIterator) Next() bool {
	if m.pq.Len() == 0 {
		m.word, m.count = "", 0
		return false
	}

	h := heap.Pop(&m.pq).(*head)
	m.word, m.count = h.word, h.count
	m.advance(h)

	for m.pq.Len() > 0 && m.pq[0].word == m.word {
		h = heap.Pop(&m.pq).(*head)
		m.count += h.count
		m.advance(h)
	}
	return true
}

// Word returns the current word.
func (m *MergeIterator) Word() string {
	return m.word
}

// Count returns the summed count of the current word.
func (m *MergeIterator) Count() int {
	return m.count
}

// Close closes all merged iterators and returns the first error.
func (m *MergeIterator) Close() error {
	var err error
	for _, it := range m.iterators {
		if closeErr := it.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
