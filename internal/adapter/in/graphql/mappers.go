package graphql

import (
	"strconv"

	"learnql/pkg/metrics"
	"learnql/pkg/pagination"

	"github.com/graph-gophers/graphql-go"
)

func toID(id int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(id, 10))
}

// parseID accepts the positive integer ids this API hands out.
func parseID(name string, id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, badRequest("invalid " + name + ": " + strconv.Quote(string(id)))
	}
	return n, nil
}

func parseOptionalID(name string, id *graphql.ID) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	n, err := parseID(name, *id)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func toPageArgs(first *int32, after *graphql.ID, last *int32, before *graphql.ID) pagination.Args {
	return pagination.Args{
		First:  toInt(first),
		After:  (*string)(after),
		Last:   toInt(last),
		Before: (*string)(before),
	}
}

func toInt(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

type pageInfoResolver struct {
	info pagination.PageInfo
}

func (r *pageInfoResolver) StartCursor() *graphql.ID { return (*graphql.ID)(r.info.StartCursor) }
func (r *pageInfoResolver) EndCursor() *graphql.ID   { return (*graphql.ID)(r.info.EndCursor) }
func (r *pageInfoResolver) HasNextPage() bool        { return r.info.HasNextPage }
func (r *pageInfoResolver) HasPreviousPage() bool    { return r.info.HasPreviousPage }

// connectionResolver serves every <X>Connection type; N is the node resolver.
type connectionResolver[N any] struct {
	nodes    []N
	pageInfo pagination.PageInfo
}

func (r *connectionResolver[N]) Nodes() []N { return r.nodes }

func (r *connectionResolver[N]) PageInfo() *pageInfoResolver {
	return &pageInfoResolver{info: r.pageInfo}
}

// newConnection converts a page of models into a page of node resolvers.
func newConnection[T, N any](name string, conn pagination.Connection[T], node func(T) N) *connectionResolver[N] {
	metrics.PageSize.WithLabelValues(name).Observe(float64(len(conn.Nodes)))

	out := pagination.Map(conn, node)
	return &connectionResolver[N]{nodes: out.Nodes, pageInfo: out.PageInfo}
}
