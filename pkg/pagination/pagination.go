// Package pagination implements relay-style cursor connections over sets
// ordered by an integer primary key.
package pagination

import (
	"errors"
	"fmt"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 50
)

var (
	ErrInvalidArgs   = errors.New("invalid pagination arguments")
	ErrInvalidCursor = errors.New("invalid cursor")
)

// Args are the connection arguments accepted by every list field.
// First/After page forward, Last/Before page backward; the two groups are
// mutually exclusive.
type Args struct {
	First  *int
	After  *string
	Last   *int
	Before *string
}

type PageInfo struct {
	StartCursor     *string
	EndCursor       *string
	HasNextPage     bool
	HasPreviousPage bool
}

type Connection[T any] struct {
	Nodes    []T
	PageInfo PageInfo
}

// Map converts the nodes of a connection, keeping its page info.
func Map[T, U any](c Connection[T], f func(T) U) Connection[U] {
	nodes := make([]U, len(c.Nodes))
	for i, n := range c.Nodes {
		nodes[i] = f(n)
	}
	return Connection[U]{Nodes: nodes, PageInfo: c.PageInfo}
}

type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

func (d Direction) String() string {
	if d == DirectionBackward {
		return "backward"
	}
	return "forward"
}

// Plan is a validated, normalized form of Args.
type Plan struct {
	Direction Direction
	Cursor    *Cursor
	Count     int
}

// Paginator holds the ordering and size limits of one connection.
// Zero sizes fall back to DefaultPageSize and MaxPageSize.
type Paginator struct {
	Order       Order
	DefaultSize int
	MaxSize     int
}

var (
	Ascending  = Paginator{Order: OrderAsc}
	Descending = Paginator{Order: OrderDesc}
)

func (p Paginator) limits() (defaultSize, maxSize int) {
	defaultSize, maxSize = p.DefaultSize, p.MaxSize
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	return min(defaultSize, maxSize), maxSize
}

// Plan validates args. Mixed directions and negative counts are rejected,
// counts above the maximum are clamped.
func (p Paginator) Plan(in Args) (Plan, error) {
	afterProvided := in.After != nil && *in.After != ""
	beforeProvided := in.Before != nil && *in.Before != ""

	forward := in.First != nil || afterProvided
	backward := in.Last != nil || beforeProvided
	if forward && backward {
		return Plan{}, fmt.Errorf("%w: first/after cannot be combined with last/before", ErrInvalidArgs)
	}

	defaultSize, maxSize := p.limits()
	plan := Plan{Direction: DirectionForward, Count: defaultSize}

	count, raw := in.First, in.After
	if backward {
		plan.Direction = DirectionBackward
		count, raw = in.Last, in.Before
	}

	if count != nil {
		if *count < 0 {
			return Plan{}, fmt.Errorf("%w: page size must not be negative", ErrInvalidArgs)
		}
		plan.Count = min(*count, maxSize)
	}

	cursor, err := Decode(raw)
	if err != nil {
		return Plan{}, err
	}
	plan.Cursor = cursor
	return plan, nil
}
