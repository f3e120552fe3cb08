package graphql

import (
	"context"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"

	"github.com/graph-gophers/graphql-go"
)

type idArgs struct {
	ID graphql.ID
}

func (r *Resolver) Project(ctx context.Context, args idArgs) (*projectResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}
	p, err := r.svc.Projects.GetProject(ctx, id)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.project(p), nil
}

func (r *Resolver) Projects(ctx context.Context, args pageArgs) (*connectionResolver[*projectResolver], error) {
	conn, err := r.svc.Projects.ListProjects(ctx, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("projects", conn, r.project), nil
}

func (r *Resolver) User(ctx context.Context, args idArgs) (*userResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}
	u, err := r.svc.Users.GetUser(ctx, id)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.user(u), nil
}

func (r *Resolver) Users(ctx context.Context, args struct {
	Role   *string
	Locked *bool
	First  *int32
	After  *graphql.ID
	Last   *int32
	Before *graphql.ID
}) (*connectionResolver[*userResolver], error) {
	filter := storage.UserFilter{Locked: args.Locked}
	if args.Role != nil {
		role := model.Role(*args.Role)
		filter.Role = &role
	}

	conn, err := r.svc.Users.ListUsers(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("users", conn, r.user), nil
}

func (r *Resolver) Action(ctx context.Context, args idArgs) (*actionResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}
	a, err := r.svc.Actions.GetAction(ctx, id)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.action(a), nil
}

func (r *Resolver) Actions(ctx context.Context, args struct {
	UserID    *graphql.ID
	ProjectID *graphql.ID
	Verb      *string
	First     *int32
	After     *graphql.ID
	Last      *int32
	Before    *graphql.ID
}) (*connectionResolver[*actionResolver], error) {
	userID, err := parseOptionalID("userId", args.UserID)
	if err != nil {
		return nil, err
	}
	projectID, err := parseOptionalID("projectId", args.ProjectID)
	if err != nil {
		return nil, err
	}

	filter := storage.ActionFilter{UserID: userID, ProjectID: projectID, Verb: args.Verb}
	conn, err := r.svc.Actions.ListActions(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("actions", conn, r.action), nil
}

func (r *Resolver) Content(ctx context.Context, args idArgs) (*contentResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}
	c, err := r.svc.Content.GetContent(ctx, id)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.content(c), nil
}

func (r *Resolver) Contents(ctx context.Context, args struct {
	ProjectID *graphql.ID
	Kind      *string
	Tag       *string
	First     *int32
	After     *graphql.ID
	Last      *int32
	Before    *graphql.ID
}) (*connectionResolver[*contentResolver], error) {
	projectID, err := parseOptionalID("projectId", args.ProjectID)
	if err != nil {
		return nil, err
	}

	filter := storage.ContentFilter{ProjectID: projectID, Kind: args.Kind, Tag: args.Tag}
	conn, err := r.svc.Content.ListContent(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("contents", conn, r.content), nil
}

func (r *Resolver) Domain(ctx context.Context, args idArgs) (*domainResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}
	d, err := r.svc.Domains.GetDomain(ctx, id)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.domain(d), nil
}

func (r *Resolver) Domains(ctx context.Context, args struct {
	ProjectID *graphql.ID
	First     *int32
	After     *graphql.ID
	Last      *int32
	Before    *graphql.ID
}) (*connectionResolver[*domainResolver], error) {
	projectID, err := parseOptionalID("projectId", args.ProjectID)
	if err != nil {
		return nil, err
	}

	filter := storage.DomainFilter{ProjectID: projectID}
	conn, err := r.svc.Domains.ListDomains(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("domains", conn, r.domain), nil
}

func (r *Resolver) Topic(ctx context.Context, args idArgs) (*topicResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}
	t, err := r.svc.Domains.GetTopic(ctx, id)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.topic(t), nil
}

func (r *Resolver) Topics(ctx context.Context, args struct {
	DomainID graphql.ID
	ParentID *graphql.ID
	First    *int32
	After    *graphql.ID
	Last     *int32
	Before   *graphql.ID
}) (*connectionResolver[*topicResolver], error) {
	domainID, err := parseID("domainId", args.DomainID)
	if err != nil {
		return nil, err
	}
	parentID, err := parseOptionalID("parentId", args.ParentID)
	if err != nil {
		return nil, err
	}

	filter := storage.TopicFilter{DomainID: &domainID, ParentID: parentID, RootsOnly: true}
	conn, err := r.svc.Domains.ListTopics(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("topics", conn, r.topic), nil
}

func (r *Resolver) KC(ctx context.Context, args idArgs) (*kcResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}
	kc, err := r.svc.Domains.GetKC(ctx, id)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.kc(kc), nil
}

func (r *Resolver) KCs(ctx context.Context, args struct {
	DomainID *graphql.ID
	First    *int32
	After    *graphql.ID
	Last     *int32
	Before   *graphql.ID
}) (*connectionResolver[*kcResolver], error) {
	domainID, err := parseOptionalID("domainId", args.DomainID)
	if err != nil {
		return nil, err
	}

	filter := storage.KCFilter{DomainID: domainID}
	conn, err := r.svc.Domains.ListKCs(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("kcs", conn, r.kc), nil
}

func (r *Resolver) ModelState(ctx context.Context, args idArgs) (*modelStateResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}
	m, err := r.svc.ModelStates.GetModelState(ctx, id)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.modelState(m), nil
}

func (r *Resolver) ModelStates(ctx context.Context, args struct {
	UserID   *graphql.ID
	DomainID *graphql.ID
	Type     *string
	First    *int32
	After    *graphql.ID
	Last     *int32
	Before   *graphql.ID
}) (*connectionResolver[*modelStateResolver], error) {
	userID, err := parseOptionalID("userId", args.UserID)
	if err != nil {
		return nil, err
	}
	domainID, err := parseOptionalID("domainId", args.DomainID)
	if err != nil {
		return nil, err
	}

	filter := storage.ModelStateFilter{UserID: userID, DomainID: domainID, Type: args.Type}
	conn, err := r.svc.ModelStates.ListModelStates(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("modelStates", conn, r.modelState), nil
}
