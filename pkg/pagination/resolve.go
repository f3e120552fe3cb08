package pagination

import (
	"context"
	"fmt"
	"slices"
)

// Fetcher runs one keyset query and returns rows in w.Order.
type Fetcher[T any] func(ctx context.Context, w Window) ([]T, error)

// Resolve loads one page of a connection.
//
// The page is read with a single query for Count+1 rows in traversal order;
// the extra row tells whether more rows follow. When a cursor is given a second
// query for one row on the other side of the cursor (the cursor row included)
// sets the opposite flag. Nodes are always returned in the paginator's order.
func Resolve[T any](ctx context.Context, p Paginator, args Args, key func(T) int64, fetch Fetcher[T]) (Connection[T], error) {
	var conn Connection[T]

	plan, err := p.Plan(args)
	if err != nil {
		return conn, err
	}

	traversal := p.Order
	if plan.Direction == DirectionBackward {
		traversal = p.Order.Reverse()
	}

	var cursor *int64
	if plan.Cursor != nil {
		c := int64(*plan.Cursor)
		cursor = &c
	}

	w := Window{Cursor: cursor, Order: traversal, Limit: plan.Count + 1}
	if cursor != nil {
		w.Op = traversal.after()
	}

	rows, err := fetch(ctx, w)
	if err != nil {
		return conn, fmt.Errorf("fetch page: %w", err)
	}

	hasMore := len(rows) > plan.Count
	if hasMore {
		rows = rows[:plan.Count]
	}

	var hasBehind bool
	if cursor != nil {
		probe := Window{
			Cursor: cursor,
			Op:     traversal.Reverse().from(),
			Order:  traversal.Reverse(),
			Limit:  1,
		}
		behind, err := fetch(ctx, probe)
		if err != nil {
			return conn, fmt.Errorf("probe page edge: %w", err)
		}
		hasBehind = len(behind) > 0
	}

	if plan.Direction == DirectionBackward {
		slices.Reverse(rows)
		conn.PageInfo.HasPreviousPage = hasMore
		conn.PageInfo.HasNextPage = hasBehind
	} else {
		conn.PageInfo.HasNextPage = hasMore
		conn.PageInfo.HasPreviousPage = hasBehind
	}

	conn.Nodes = make([]T, 0, len(rows))
	conn.Nodes = append(conn.Nodes, rows...)

	if len(rows) > 0 {
		conn.PageInfo.StartCursor = Cursor(key(rows[0])).Encode()
		conn.PageInfo.EndCursor = Cursor(key(rows[len(rows)-1])).Encode()
	}
	return conn, nil
}
