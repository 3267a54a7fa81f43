package battlesearch

import "sync"

// queue is an unbounded FIFO of tasks owned by one worker.
// push never blocks, so a slow worker cannot stall the walker.
type queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []Task
	head   int
	closed bool
}

func newQueue() *queue {
	q := &queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends t. It fails with ErrQueueClosed once the queue is closed.
func (q *queue) push(t Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.items = append(q.items, t)
	q.cond.Signal()
	return nil
}

// pop blocks until a task is available. It returns false once the queue
// is closed and drained.
func (q *queue) pop() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.head == len(q.items) && !q.closed {
		q.cond.Wait()
	}
	if q.head == len(q.items) {
		return Task{}, false
	}

	t := q.items[q.head]
	q.items[q.head] = Task{}
	q.head++
	if q.head == len(q.items) {
		// Reuse the backing array once drained.
		q.items = q.items[:0]
		q.head = 0
	}
	return t, true
}

// close wakes the consumer and rejects further pushes.
// Safe to call multiple times.
func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// len returns the number of queued tasks.
func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
