package world

// Queue buffers one command type between producers and its single consumer.
//
// A value sent during tick N can be drained later in tick N or at any point
// in tick N+1. Swap runs at the end of every tick; values still unread after
// their second Swap are dropped. Queue is not safe for concurrent use: the
// tick goroutine owns it.
type Queue[T any] struct {
	prev []T
	curr []T
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Send(v T) {
	q.curr = append(q.curr, v)
}

// Drain returns every readable value, oldest first, and marks them read.
func (q *Queue[T]) Drain() []T {
	if len(q.prev) == 0 && len(q.curr) == 0 {
		return nil
	}
	out := make([]T, 0, len(q.prev)+len(q.curr))
	out = append(out, q.prev...)
	out = append(out, q.curr...)
	q.prev = nil
	q.curr = nil
	return out
}

func (q *Queue[T]) Len() int {
	return len(q.prev) + len(q.curr)
}

// Swap ages the buffers by one tick.
func (q *Queue[T]) Swap() {
	q.prev = q.curr
	q.curr = nil
}
