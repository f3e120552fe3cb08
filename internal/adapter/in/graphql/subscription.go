package graphql

import (
	"context"

	"github.com/graph-gophers/graphql-go"
)

// ActionCreated streams actions recorded for a project while the
// subscription is open.
func (r *Resolver) ActionCreated(ctx context.Context, args struct{ ProjectID graphql.ID }) (<-chan *actionResolver, error) {
	projectID, err := parseID("projectId", args.ProjectID)
	if err != nil {
		return nil, err
	}

	actions, err := r.svc.Actions.Listen(ctx, projectID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}

	out := make(chan *actionResolver)
	go func() {
		defer close(out)
		for a := range actions {
			select {
			case out <- r.action(a):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
