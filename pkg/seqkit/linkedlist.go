package seqkit

import (
	"go.llib.dev/lazyseq"
)

// LinkedList is a doubly linked collection.
// It has the lazyseq.Countable capability, but no O(1) index access.
// The zero value is an empty list ready to use.
// Modifying the list while one of its cursors is in use leads to unspecified results.
type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

var _ lazyseq.Countable[any] = (*LinkedList[any])(nil)

type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

func (ll *LinkedList[T]) Cursor() lazyseq.Cursor[T] {
	var head *llElem[T]
	if ll != nil {
		head = ll.head
	}
	return &llCursor[T]{next: head}
}

// Len returns the length of elements in the list
func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

func (ll *LinkedList[T]) CopyTo(dst []T) int {
	if ll == nil {
		return 0
	}
	var n int
	for current := ll.head; current != nil && n < len(dst); current = current.next {
		dst[n] = current.data
		n++
	}
	return n
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Prepend adds the values to the beginning of the list, in the order they are given.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		ll.prepend(vs[i])
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	var (
		prevHead = ll.head
		newHead  = &llElem[T]{
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
}

func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.head = first.next
	if ll.head != nil {
		ll.head.prev = nil
	}
	if ll.head == nil {
		ll.tail = nil
	}
	ll.length--
	return first.data, true
}

func (ll *LinkedList[T]) Pop() (T, bool) {
	var last = ll.tail
	if last == nil {
		var zero T
		return zero, false
	}
	var prev = ll.tail.prev
	if prev != nil {
		prev.next = nil
	}
	if prev == nil {
		ll.head = nil
	}
	ll.tail = prev
	ll.length--
	return last.data, true
}

type llCursor[T any] struct {
	next  *llElem[T]
	value T
}

func (c *llCursor[T]) Close() error {
	c.next = nil
	return nil
}

func (c *llCursor[T]) Err() error { return nil }

func (c *llCursor[T]) Next() bool {
	if c.next == nil {
		return false
	}
	c.value = c.next.data
	c.next = c.next.next
	return true
}

func (c *llCursor[T]) Value() T { return c.value }
