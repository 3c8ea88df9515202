/*
Package deque provides the Pair buffer query.CrossFilter drains its results
through: matches are appended as they're found (OfferLast) and read back out
in the same order once the input scan finishes (PollFirst).

CrossFilter never adds at the front, removes from the rear, or removes by
value, so
unlike the teacher's general-purpose double-ended queue this only exposes
the tail-in/head-out half of that API, backed by linkedlist's singly linked
Chain rather than a full doubly linked list.
*/
package deque

import "github.com/hgreenberg/sift/linkedlist"

// Deque is a FIFO buffer of T, backed by a singly linked chain.
type Deque[T any] struct {
	data *linkedlist.Chain[T]
}

// NewDeque returns a new, empty Deque.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{data: linkedlist.NewChain[T]()}
}

// OfferLast appends elem to the rear of the deque.
func (d *Deque[T]) OfferLast(elem T) {
	d.data.AddLast(elem)
}

// PollFirst removes and returns the front element of the deque.
func (d *Deque[T]) PollFirst() (T, error) {
	return d.data.RemoveFirst()
}

// Size returns the number of elements currently buffered.
func (d *Deque[T]) Size() int {
	return d.data.Size()
}

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.data.IsEmpty()
}
