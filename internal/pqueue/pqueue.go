// Package pqueue provides a min-priority queue with decrease-key support.
// It has no knowledge of grids; the maze pathfinder uses it as its frontier.
package pqueue

import "container/heap"

type entry[T comparable] struct {
	item     T
	priority int
	seq      uint64 // insertion order, breaks priority ties
	index    int    // heap index
}

type entries[T comparable] []*entry[T]

func (e entries[T]) Len() int { return len(e) }

func (e entries[T]) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}
	return e[i].seq < e[j].seq
}

func (e entries[T]) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
	e[i].index = i
	e[j].index = j
}

func (e *entries[T]) Push(x any) {
	n := x.(*entry[T])
	n.index = len(*e)
	*e = append(*e, n)
}

func (e *entries[T]) Pop() any {
	old := *e
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*e = old[:len(old)-1]
	return n
}

// Queue is a binary min-heap over (item, priority) pairs with an item index
// that makes priority decreases O(log n).
// The zero value is not usable; call New.
type Queue[T comparable] struct {
	heap  entries[T]
	index map[T]*entry[T]
	seq   uint64
}

// New creates an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{index: make(map[T]*entry[T])}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return len(q.heap)
}

// Contains reports whether item is currently queued.
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.index[item]
	return ok
}

// Priority returns the queued priority of item.
func (q *Queue[T]) Priority(item T) (int, bool) {
	e, ok := q.index[item]
	if !ok {
		return 0, false
	}
	return e.priority, true
}

// Enqueue inserts item with the given priority. If item is already queued
// its priority is replaced, in either direction.
func (q *Queue[T]) Enqueue(item T, priority int) {
	if e, ok := q.index[item]; ok {
		e.priority = priority
		heap.Fix(&q.heap, e.index)
		return
	}
	e := &entry[T]{item: item, priority: priority, seq: q.seq}
	q.seq++
	q.index[item] = e
	heap.Push(&q.heap, e)
}

// EnqueueOrUpdate inserts item, or lowers its priority if it is already
// queued with a higher one. It never raises a priority.
func (q *Queue[T]) EnqueueOrUpdate(item T, priority int) {
	if e, ok := q.index[item]; ok {
		if priority < e.priority {
			e.priority = priority
			heap.Fix(&q.heap, e.index)
		}
		return
	}
	q.Enqueue(item, priority)
}

// Dequeue removes and returns the item with the lowest priority.
// Returns false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if len(q.heap) == 0 {
		var zero T
		return zero, false
	}
	e := heap.Pop(&q.heap).(*entry[T])
	delete(q.index, e.item)
	return e.item, true
}
