package graphql

import (
	"context"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"

	"github.com/graph-gophers/graphql-go"
)

// pageArgs are the connection arguments every list field accepts.
type pageArgs struct {
	First  *int32
	After  *graphql.ID
	Last   *int32
	Before *graphql.ID
}

type projectResolver struct {
	root *Resolver
	p    model.Project
}

func (r *Resolver) project(p model.Project) *projectResolver {
	return &projectResolver{root: r, p: p}
}

func (r *projectResolver) ID() graphql.ID          { return toID(r.p.ID) }
func (r *projectResolver) Code() string            { return r.p.Code }
func (r *projectResolver) Name() string            { return r.p.Name }
func (r *projectResolver) Description() string     { return r.p.Description }
func (r *projectResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.p.CreatedAt} }

func (r *projectResolver) Contents(ctx context.Context, args struct {
	Kind   *string
	Tag    *string
	First  *int32
	After  *graphql.ID
	Last   *int32
	Before *graphql.ID
}) (*connectionResolver[*contentResolver], error) {
	filter := storage.ContentFilter{ProjectID: &r.p.ID, Kind: args.Kind, Tag: args.Tag}
	conn, err := r.root.svc.Content.ListContent(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("project.contents", conn, r.root.content), nil
}

func (r *projectResolver) Domains(ctx context.Context, args pageArgs) (*connectionResolver[*domainResolver], error) {
	filter := storage.DomainFilter{ProjectID: &r.p.ID}
	conn, err := r.root.svc.Domains.ListDomains(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("project.domains", conn, r.root.domain), nil
}

type userResolver struct {
	root *Resolver
	u    model.User
}

func (r *Resolver) user(u model.User) *userResolver {
	return &userResolver{root: r, u: u}
}

func (r *userResolver) ID() graphql.ID          { return toID(r.u.ID) }
func (r *userResolver) Email() string           { return r.u.Email }
func (r *userResolver) Name() string            { return r.u.Name }
func (r *userResolver) Role() string            { return string(r.u.Role) }
func (r *userResolver) Locked() bool            { return r.u.Locked }
func (r *userResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.u.CreatedAt} }

func (r *userResolver) Actions(ctx context.Context, args struct {
	ProjectID *graphql.ID
	Verb      *string
	First     *int32
	After     *graphql.ID
	Last      *int32
	Before    *graphql.ID
}) (*connectionResolver[*actionResolver], error) {
	projectID, err := parseOptionalID("projectId", args.ProjectID)
	if err != nil {
		return nil, err
	}

	filter := storage.ActionFilter{UserID: &r.u.ID, ProjectID: projectID, Verb: args.Verb}
	conn, err := r.root.svc.Actions.ListActions(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("user.actions", conn, r.root.action), nil
}

func (r *userResolver) ModelStates(ctx context.Context, args struct {
	DomainID *graphql.ID
	Type     *string
	First    *int32
	After    *graphql.ID
	Last     *int32
	Before   *graphql.ID
}) (*connectionResolver[*modelStateResolver], error) {
	domainID, err := parseOptionalID("domainId", args.DomainID)
	if err != nil {
		return nil, err
	}

	filter := storage.ModelStateFilter{UserID: &r.u.ID, DomainID: domainID, Type: args.Type}
	conn, err := r.root.svc.ModelStates.ListModelStates(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("user.modelStates", conn, r.root.modelState), nil
}

type actionResolver struct {
	root *Resolver
	a    model.Action
}

func (r *Resolver) action(a model.Action) *actionResolver {
	return &actionResolver{root: r, a: a}
}

func (r *actionResolver) ID() graphql.ID          { return toID(r.a.ID) }
func (r *actionResolver) Verb() string            { return r.a.Verb }
func (r *actionResolver) Result() *float64        { return r.a.Result }
func (r *actionResolver) Timestamp() graphql.Time { return graphql.Time{Time: r.a.Timestamp} }
func (r *actionResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.a.CreatedAt} }

func (r *actionResolver) User(ctx context.Context) (*userResolver, error) {
	u, err := r.root.svc.Users.GetUser(ctx, r.a.UserID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.user(u), nil
}

func (r *actionResolver) Project(ctx context.Context) (*projectResolver, error) {
	p, err := r.root.svc.Projects.GetProject(ctx, r.a.ProjectID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.project(p), nil
}

func (r *actionResolver) Content(ctx context.Context) (*contentResolver, error) {
	if r.a.ContentID == nil {
		return nil, nil
	}
	c, err := r.root.svc.Content.GetContent(ctx, *r.a.ContentID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.content(c), nil
}

type contentResolver struct {
	root *Resolver
	c    model.Content
}

func (r *Resolver) content(c model.Content) *contentResolver {
	return &contentResolver{root: r, c: c}
}

func (r *contentResolver) ID() graphql.ID          { return toID(r.c.ID) }
func (r *contentResolver) Code() string            { return r.c.Code }
func (r *contentResolver) Name() string            { return r.c.Name }
func (r *contentResolver) Description() string     { return r.c.Description }
func (r *contentResolver) Kind() string            { return r.c.Kind }
func (r *contentResolver) URL() *string            { return r.c.URL }
func (r *contentResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.c.CreatedAt} }

func (r *contentResolver) Tags() []string {
	if r.c.Tags == nil {
		return []string{}
	}
	return r.c.Tags
}

func (r *contentResolver) Project(ctx context.Context) (*projectResolver, error) {
	p, err := r.root.svc.Projects.GetProject(ctx, r.c.ProjectID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.project(p), nil
}

type domainResolver struct {
	root *Resolver
	d    model.Domain
}

func (r *Resolver) domain(d model.Domain) *domainResolver {
	return &domainResolver{root: r, d: d}
}

func (r *domainResolver) ID() graphql.ID          { return toID(r.d.ID) }
func (r *domainResolver) Code() string            { return r.d.Code }
func (r *domainResolver) Name() string            { return r.d.Name }
func (r *domainResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.d.CreatedAt} }

func (r *domainResolver) Project(ctx context.Context) (*projectResolver, error) {
	p, err := r.root.svc.Projects.GetProject(ctx, r.d.ProjectID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.project(p), nil
}

func (r *domainResolver) Topics(ctx context.Context, args pageArgs) (*connectionResolver[*topicResolver], error) {
	filter := storage.TopicFilter{DomainID: &r.d.ID, RootsOnly: true}
	conn, err := r.root.svc.Domains.ListTopics(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("domain.topics", conn, r.root.topic), nil
}

func (r *domainResolver) KCs(ctx context.Context, args pageArgs) (*connectionResolver[*kcResolver], error) {
	filter := storage.KCFilter{DomainID: &r.d.ID}
	conn, err := r.root.svc.Domains.ListKCs(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("domain.kcs", conn, r.root.kc), nil
}

type topicResolver struct {
	root *Resolver
	t    model.Topic
}

func (r *Resolver) topic(t model.Topic) *topicResolver {
	return &topicResolver{root: r, t: t}
}

func (r *topicResolver) ID() graphql.ID          { return toID(r.t.ID) }
func (r *topicResolver) Code() string            { return r.t.Code }
func (r *topicResolver) Name() string            { return r.t.Name }
func (r *topicResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.t.CreatedAt} }

func (r *topicResolver) Domain(ctx context.Context) (*domainResolver, error) {
	d, err := r.root.svc.Domains.GetDomain(ctx, r.t.DomainID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.domain(d), nil
}

func (r *topicResolver) Parent(ctx context.Context) (*topicResolver, error) {
	if r.t.ParentID == nil {
		return nil, nil
	}
	t, err := r.root.svc.Domains.GetTopic(ctx, *r.t.ParentID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.topic(t), nil
}

func (r *topicResolver) Children(ctx context.Context, args pageArgs) (*connectionResolver[*topicResolver], error) {
	filter := storage.TopicFilter{DomainID: &r.t.DomainID, ParentID: &r.t.ID}
	conn, err := r.root.svc.Domains.ListTopics(ctx, filter, toPageArgs(args.First, args.After, args.Last, args.Before))
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return newConnection("topic.children", conn, r.root.topic), nil
}

type kcResolver struct {
	root *Resolver
	kc   model.KC
}

func (r *Resolver) kc(kc model.KC) *kcResolver {
	return &kcResolver{root: r, kc: kc}
}

func (r *kcResolver) ID() graphql.ID          { return toID(r.kc.ID) }
func (r *kcResolver) Code() string            { return r.kc.Code }
func (r *kcResolver) Name() string            { return r.kc.Name }
func (r *kcResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.kc.CreatedAt} }

func (r *kcResolver) Domain(ctx context.Context) (*domainResolver, error) {
	d, err := r.root.svc.Domains.GetDomain(ctx, r.kc.DomainID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.domain(d), nil
}

type modelStateResolver struct {
	root *Resolver
	m    model.ModelState
}

func (r *Resolver) modelState(m model.ModelState) *modelStateResolver {
	return &modelStateResolver{root: r, m: m}
}

func (r *modelStateResolver) ID() graphql.ID          { return toID(r.m.ID) }
func (r *modelStateResolver) Type() string            { return r.m.Type }
func (r *modelStateResolver) Creator() string         { return r.m.Creator }
func (r *modelStateResolver) Data() string            { return r.m.Data }
func (r *modelStateResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.m.CreatedAt} }

func (r *modelStateResolver) User(ctx context.Context) (*userResolver, error) {
	u, err := r.root.svc.Users.GetUser(ctx, r.m.UserID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.user(u), nil
}

func (r *modelStateResolver) Domain(ctx context.Context) (*domainResolver, error) {
	d, err := r.root.svc.Domains.GetDomain(ctx, r.m.DomainID)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.root.domain(d), nil
}
