// Package reconcile diffs an owned child collection against its desired
// state and applies the resulting inserts, updates and deletes.
package reconcile

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownChild is returned in strict mode when a desired item carries an
// identifier that is not part of the existing collection.
var ErrUnknownChild = errors.New("child not found in existing collection")

// Child is a row owned by an aggregate.
type Child[T any] interface {
	Key() uint
	ClearKey()
	SameContent(other T) bool
	Validate() error
}

// Positioned children carry a sort key in an ordered collection. Keys only
// need to increase along the sequence; they are spaced PositionGap apart so
// an item can be placed between two neighbours without moving either.
type Positioned interface {
	Order() int
	SetOrder(pos int)
}

// PositionGap is the distance between neighbouring positions when a
// collection is numbered from scratch.
const PositionGap = 1024

// Store persists children of one owner. Implementations are scoped to a
// transaction; the owner itself is never written.
type Store[T any] interface {
	Insert(ctx context.Context, item T) error
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, item T) error
}

// Options tune matching.
type Options struct {
	// Strict rejects desired items whose identifier is unknown instead of
	// inserting them as new rows.
	Strict bool
}

// Plan is the minimal set of writes turning the existing collection into
// the desired one.
type Plan[T any] struct {
	Inserts []T
	Updates []T
	Deletes []T
	// Result is the desired collection in order. Matched items carry their
	// persisted identifier; inserted items receive one when applied.
	Result []T
}

// Writes is the number of storage operations the plan issues.
func (p *Plan[T]) Writes() int {
	return len(p.Inserts) + len(p.Updates) + len(p.Deletes)
}

// Diff computes the plan for desired against existing. Desired items are
// validated first. Ordered collections keep the stored positions of matched
// items that are still in increasing order; only moved and new items are
// given positions, so unchanged items receive no write.
func Diff[T Child[T]](existing, desired []T, opts Options) (*Plan[T], error) {
	for i, item := range desired {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	byKey := make(map[uint]T, len(existing))
	for _, item := range existing {
		byKey[item.Key()] = item
	}

	plan := &Plan[T]{Result: make([]T, 0, len(desired))}
	matched := make(map[uint]bool, len(desired))
	fresh := make([]bool, len(desired))
	for i, item := range desired {
		key := item.Key()
		_, found := byKey[key]
		switch {
		case key == 0:
			fresh[i] = true
		case !found && opts.Strict:
			return nil, fmt.Errorf("item %d (id %d): %w", i, key, ErrUnknownChild)
		case !found || matched[key]:
			// unknown or repeated identifiers become new rows
			item.ClearKey()
			fresh[i] = true
		default:
			matched[key] = true
		}
		plan.Result = append(plan.Result, item)
	}

	moved := make([]bool, len(desired))
	if len(desired) > 0 {
		if _, ok := any(desired[0]).(Positioned); ok {
			moved = placeOrdered(desired, fresh, byKey)
		}
	}

	for i, item := range desired {
		switch {
		case fresh[i]:
			plan.Inserts = append(plan.Inserts, item)
		case moved[i] || !byKey[item.Key()].SameContent(item):
			plan.Updates = append(plan.Updates, item)
		}
	}

	for _, item := range existing {
		if !matched[item.Key()] {
			plan.Deletes = append(plan.Deletes, item)
		}
	}
	return plan, nil
}

// placeOrdered sets the position of every desired item. Matched items on
// the longest run of increasing stored positions keep theirs; the others
// are spread over the gap between their kept neighbours. When a gap is too
// narrow the collection is renumbered. It reports which matched items got
// a new position.
func placeOrdered[T Child[T]](desired []T, fresh []bool, byKey map[uint]T) []bool {
	n := len(desired)
	old := make([]int, n)
	for i, item := range desired {
		if !fresh[i] {
			old[i] = any(byKey[item.Key()]).(Positioned).Order()
		}
	}
	keep := increasingRun(old, fresh)

	pos := make([]int, n)
	fits := true
	for i := 0; i < n; {
		if keep[i] {
			pos[i] = old[i]
			i++
			continue
		}
		j := i
		for j < n && !keep[j] {
			j++
		}
		lo := 0
		if i > 0 {
			lo = pos[i-1]
		}
		step := PositionGap
		if j < n {
			step = (old[j] - lo) / (j - i + 1)
		}
		if step < 1 {
			fits = false
			break
		}
		for k := i; k < j; k++ {
			pos[k] = lo + step*(k-i+1)
		}
		i = j
	}
	if !fits {
		for i := range pos {
			pos[i] = (i + 1) * PositionGap
		}
	}

	moved := make([]bool, n)
	for i, item := range desired {
		any(item).(Positioned).SetOrder(pos[i])
		moved[i] = !fresh[i] && pos[i] != old[i]
	}
	return moved
}

// increasingRun marks the longest subsequence of matched items whose stored
// positions strictly increase.
func increasingRun(old []int, fresh []bool) []bool {
	n := len(old)
	length := make([]int, n)
	prev := make([]int, n)
	best := -1
	for i := 0; i < n; i++ {
		if fresh[i] {
			continue
		}
		length[i], prev[i] = 1, -1
		for j := 0; j < i; j++ {
			if !fresh[j] && old[j] < old[i] && length[j]+1 > length[i] {
				length[i], prev[i] = length[j]+1, j
			}
		}
		if best < 0 || length[i] > length[best] {
			best = i
		}
	}

	keep := make([]bool, n)
	for i := best; i >= 0; i = prev[i] {
		keep[i] = true
	}
	return keep
}

// Apply issues the plan against store: deletes, then updates, then inserts.
func Apply[T any](ctx context.Context, store Store[T], plan *Plan[T]) error {
	for _, item := range plan.Deletes {
		if err := store.Delete(ctx, item); err != nil {
			return fmt.Errorf("delete child: %w", err)
		}
	}
	for _, item := range plan.Updates {
		if err := store.Update(ctx, item); err != nil {
			return fmt.Errorf("update child: %w", err)
		}
	}
	for _, item := range plan.Inserts {
		if err := store.Insert(ctx, item); err != nil {
			return fmt.Errorf("insert child: %w", err)
		}
	}
	return nil
}

// Reconcile diffs and applies in one call.
func Reconcile[T Child[T]](ctx context.Context, store Store[T], existing, desired []T, opts Options) (*Plan[T], error) {
	plan, err := Diff(existing, desired, opts)
	if err != nil {
		return nil, err
	}
	if err := Apply(ctx, store, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
