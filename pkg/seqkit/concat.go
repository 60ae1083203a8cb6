package seqkit

import (
	"math"
	"slices"

	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/internal/interr"
	"go.llib.dev/lazyseq/pkg/errorkit"
	"go.llib.dev/lazyseq/pkg/logger"
	"go.llib.dev/lazyseq/pkg/slicekit"
)

// Concat returns a sequence of first followed by second, followed by the rest.
//
// When first is already a concatenation made by Concat,
// the existing chain is extended with a new node instead of nesting another wrapper,
// so joining N sequences left-to-right costs N node allocations,
// and a cursor only walks the chain once per source transition.
//
// Concat panics with lazyseq.ErrArgumentNull when any of the sequences is nil.
func Concat[T any](first, second lazyseq.Sequence[T], rest ...lazyseq.Sequence[T]) lazyseq.Sequence[T] {
	mustNotNil("first", first)
	mustNotNil("second", second)
	for _, seq := range rest {
		mustNotNil("rest", seq)
	}
	out := concat(first, second)
	for _, next := range rest {
		out = out.extend(next)
	}
	return out
}

func concat[T any](first, second lazyseq.Sequence[T]) concatenation[T] {
	if c, ok := first.(concatenation[T]); ok {
		return c.extend(second)
	}
	return &concat2[T]{first: first, second: second}
}

// chainIndexLimit is the highest head index a concatN node may have.
// The cursor walks the chain with an int32 position, so the chain can't grow past it.
var chainIndexLimit int32 = math.MaxInt32 - 2

type concatenation[T any] interface {
	listProvider[T]
	// source returns the sequence at a logical index of the chain.
	// The index equal to the number of sources reports false.
	source(index int32) (lazyseq.Sequence[T], bool)
	extend(next lazyseq.Sequence[T]) concatenation[T]
}

// concat2 is the concatenation of two sequences, and the last node of every chain.
type concat2[T any] struct {
	first  lazyseq.Sequence[T]
	second lazyseq.Sequence[T]
}

func (c *concat2[T]) Cursor() lazyseq.Cursor[T] {
	return &concatCursor[T]{chain: c}
}

func (c *concat2[T]) extend(next lazyseq.Sequence[T]) concatenation[T] {
	hasOnlyCollections := lazyseq.IsCountable(c.first) &&
		lazyseq.IsCountable(c.second) &&
		lazyseq.IsCountable(next)
	return &concatN[T]{tail: c, head: next, headIndex: 2, hasOnlyCollections: hasOnlyCollections}
}

func (c *concat2[T]) source(index int32) (lazyseq.Sequence[T], bool) {
	switch {
	case index < 0:
		panic(lazyseq.ErrOutOfRange.F("negative source index: %d", index))
	case index == 0:
		return c.first, true
	case index == 1:
		return c.second, true
	default:
		return nil, false
	}
}

func (c *concat2[T]) count(onlyIfCheap bool) (int, error) {
	firstCount, err := sourceCount(c.first, onlyIfCheap)
	if err != nil || firstCount == UnknownCount {
		return firstCount, err
	}
	secondCount, err := sourceCount(c.second, onlyIfCheap)
	if err != nil || secondCount == UnknownCount {
		return secondCount, err
	}
	return sumCount(firstCount, secondCount)
}

func (c *concat2[T]) toSlice() ([]T, error) {
	return sparseToSlice[T](c)
}

func (c *concat2[T]) appendTo(dst []T) ([]T, error) {
	return appendChain[T](c, dst)
}

// concatN is a previously built concatenation plus one more appended sequence.
type concatN[T any] struct {
	// tail is the previous node of the chain.
	tail concatenation[T]
	// head is the sequence this node appends.
	head lazyseq.Sequence[T]
	// headIndex is the logical index of head, it strictly increases along the chain.
	headIndex int32
	// hasOnlyCollections is true if every sequence in the chain is lazyseq.Countable.
	hasOnlyCollections bool
}

func (n *concatN[T]) Cursor() lazyseq.Cursor[T] {
	return &concatCursor[T]{chain: n}
}

func (n *concatN[T]) previousN() (*concatN[T], bool) {
	prev, ok := n.tail.(*concatN[T])
	return prev, ok
}

func (n *concatN[T]) extend(next lazyseq.Sequence[T]) concatenation[T] {
	if n.headIndex == chainIndexLimit {
		logger.Debug("concat chain reached its index limit, continuing with a nested concatenation",
			logger.Field("head_index", n.headIndex))
		return &concat2[T]{first: n, second: next}
	}
	hasOnlyCollections := n.hasOnlyCollections && lazyseq.IsCountable(next)
	return &concatN[T]{tail: n, head: next, headIndex: n.headIndex + 1, hasOnlyCollections: hasOnlyCollections}
}

func (n *concatN[T]) source(index int32) (lazyseq.Sequence[T], bool) {
	if index < 0 {
		panic(lazyseq.ErrOutOfRange.F("negative source index: %d", index))
	}
	if n.headIndex < index {
		return nil, false
	}
	node := n
	for {
		if index == node.headIndex {
			return node.head, true
		}
		prev, ok := node.previousN()
		if !ok {
			break
		}
		node = prev
	}
	return node.tail.source(index)
}

func (n *concatN[T]) count(onlyIfCheap bool) (int, error) {
	if onlyIfCheap && !n.hasOnlyCollections {
		return UnknownCount, nil
	}
	var (
		total int
		node  = n
	)
	for {
		sc, err := sourceCount(node.head, false)
		if err != nil {
			return 0, err
		}
		total, err = sumCount(total, sc)
		if err != nil {
			return 0, err
		}
		prev, ok := node.previousN()
		if !ok {
			break
		}
		node = prev
	}
	tailCount, err := node.tail.count(onlyIfCheap)
	if err != nil || tailCount == UnknownCount {
		return tailCount, err
	}
	return sumCount(total, tailCount)
}

func (n *concatN[T]) toSlice() ([]T, error) {
	if n.hasOnlyCollections {
		return n.preallocatingToSlice()
	}
	return sparseToSlice[T](n)
}

// preallocatingToSlice allocates the result once,
// and fills it back-to-front with one bulk copy per source while walking the chain.
func (n *concatN[T]) preallocatingToSlice() ([]T, error) {
	total, err := n.count(true)
	if err != nil {
		return nil, err
	}
	if total < 0 {
		interr.Violation("count of a chain with only collections must be known, got %d", total)
	}
	out := make([]T, total)
	index := total
	place := func(src lazyseq.Sequence[T]) {
		c, ok := lazyseq.AsCountable(src)
		if !ok {
			interr.Violation("chain marked with only collections has a non countable source %T", src)
		}
		length := c.Len()
		if index < length {
			interr.Violation("source with %d elements doesn't fit into the remaining %d slots", length, index)
		}
		index -= length
		slicekit.Copy(out[index:index+length], c)
	}
	node := n
	for {
		place(node.head)
		prev, ok := node.previousN()
		if !ok {
			break
		}
		node = prev
	}
	last, ok := node.tail.(*concat2[T])
	if !ok {
		interr.Violation("chain with only collections is expected to end with a pair, got %T", node.tail)
	}
	place(last.second)
	place(last.first)
	if index != 0 {
		interr.Violation("%d slots were left unfilled", index)
	}
	return out, nil
}

func (n *concatN[T]) appendTo(dst []T) ([]T, error) {
	return appendChain[T](n, dst)
}

func sourceCount[T any](seq lazyseq.Sequence[T], onlyIfCheap bool) (int, error) {
	n, err := countIfCheap(seq)
	if err != nil || n != UnknownCount || onlyIfCheap {
		return n, err
	}
	return count(seq)
}

// sparseToSlice walks the sources front-to-back, and lets the SparseBuilder
// either buffer them or reserve a window for the countable ones.
// The windows are back-filled after the final slice is allocated.
//
// Resolving each source walks the chain again, which is quadratic in the number of sources,
// but not in the number of elements.
func sparseToSlice[T any](chain concatenation[T]) ([]T, error) {
	var (
		builder  slicekit.SparseBuilder[T]
		deferred []int32
	)
	for i := int32(0); ; i++ {
		src, ok := chain.source(i)
		if !ok {
			break
		}
		reserved, err := builder.ReserveOrAdd(src)
		if err != nil {
			return nil, err
		}
		if reserved {
			deferred = append(deferred, i)
		}
	}
	out := builder.ToSlice()
	markers := builder.Markers()
	if len(markers) != len(deferred) {
		interr.Violation("%d markers were made for %d deferred copies", len(markers), len(deferred))
	}
	for i, marker := range markers {
		src, _ := chain.source(deferred[i])
		c, ok := lazyseq.AsCountable(src)
		if !ok {
			interr.Violation("deferred source %T has no countable capability", src)
		}
		slicekit.Copy(out[marker.Index:marker.Index+marker.Count], c)
	}
	return out, nil
}

func appendChain[T any](chain concatenation[T], dst []T) ([]T, error) {
	total, err := chain.count(true)
	if err != nil {
		return dst, err
	}
	if 0 < total {
		dst = slices.Grow(dst, total)
	}
	for i := int32(0); ; i++ {
		src, ok := chain.source(i)
		if !ok {
			break
		}
		dst, err = appendSeq(dst, src)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// concatCursor holds the index of the source being drained, and the cursor of that source.
type concatCursor[T any] struct {
	chain   concatenation[T]
	index   int32
	current lazyseq.Cursor[T]
	value   T
	err     error
	done    bool
}

func (c *concatCursor[T]) Next() bool {
	if c.done {
		return false
	}
	if c.current == nil {
		src, _ := c.chain.source(0)
		c.current = src.Cursor()
	}
	for {
		if c.current.Next() {
			c.value = c.current.Value()
			return true
		}
		if err := c.current.Err(); err != nil {
			c.fail(err)
			return false
		}
		c.index++
		next, ok := c.chain.source(c.index)
		if !ok {
			c.fail(c.Close())
			return false
		}
		if err := c.current.Close(); err != nil {
			c.current = nil
			c.fail(err)
			return false
		}
		c.current = next.Cursor()
	}
}

func (c *concatCursor[T]) fail(err error) {
	c.err = errorkit.Merge(c.err, err)
	c.err = errorkit.Merge(c.err, c.Close())
}

func (c *concatCursor[T]) Value() T {
	return c.value
}

func (c *concatCursor[T]) Err() error {
	return c.err
}

func (c *concatCursor[T]) Close() error {
	c.done = true
	if c.current == nil {
		return nil
	}
	current := c.current
	c.current = nil
	return current.Close()
}
