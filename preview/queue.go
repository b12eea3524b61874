package preview

// Queue is a FIFO of links that drops any link it has already seen.
type Queue struct {
	items []string
	seen  map[string]bool
	idx   int
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{seen: make(map[string]bool)}
}

// Add enqueues link unless it has been added before. It reports whether
// the link was new.
func (q *Queue) Add(link string) bool {
	if q.seen[link] {
		return false
	}
	q.seen[link] = true
	q.items = append(q.items, link)
	return true
}

// HasNext returns true if there are unprocessed links.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed link and advances the pointer.
func (q *Queue) Next() string {
	link := q.items[q.idx]
	q.idx++
	return link
}

// Len returns the number of unique links added.
func (q *Queue) Len() int {
	return len(q.items)
}

// All returns every link in the order it was added.
func (q *Queue) All() []string {
	return q.items
}
