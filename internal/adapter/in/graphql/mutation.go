package graphql

import (
	"context"

	"learnql/internal/model"
	"learnql/internal/service"

	"github.com/graph-gophers/graphql-go"
)

type createProjectInput struct {
	Code        string
	Name        string
	Description *string
}

func (r *Resolver) CreateProject(ctx context.Context, args struct{ Input createProjectInput }) (*projectResolver, error) {
	req := service.CreateProjectRequest{
		Code: args.Input.Code,
		Name: args.Input.Name,
	}
	if args.Input.Description != nil {
		req.Description = *args.Input.Description
	}

	p, err := r.svc.Projects.CreateProject(ctx, req)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.project(p), nil
}

type updateProjectInput struct {
	ID          graphql.ID
	Name        *string
	Description *string
}

func (r *Resolver) UpdateProject(ctx context.Context, args struct{ Input updateProjectInput }) (*projectResolver, error) {
	id, err := parseID("id", args.Input.ID)
	if err != nil {
		return nil, err
	}

	p, err := r.svc.Projects.UpdateProject(ctx, service.UpdateProjectRequest{
		ID:          id,
		Name:        args.Input.Name,
		Description: args.Input.Description,
	})
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.project(p), nil
}

func (r *Resolver) DeleteProject(ctx context.Context, args idArgs) (graphql.ID, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return "", err
	}
	if err := r.svc.Projects.DeleteProject(ctx, id); err != nil {
		return "", toGQLError(ctx, err)
	}
	return args.ID, nil
}

type createUserInput struct {
	Email string
	Name  string
	Role  *string
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Input createUserInput }) (*userResolver, error) {
	req := service.CreateUserRequest{
		Email: args.Input.Email,
		Name:  args.Input.Name,
	}
	if args.Input.Role != nil {
		req.Role = model.Role(*args.Input.Role)
	}

	u, err := r.svc.Users.CreateUser(ctx, req)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.user(u), nil
}

type updateUserInput struct {
	ID     graphql.ID
	Name   *string
	Role   *string
	Locked *bool
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct{ Input updateUserInput }) (*userResolver, error) {
	id, err := parseID("id", args.Input.ID)
	if err != nil {
		return nil, err
	}

	req := service.UpdateUserRequest{
		ID:     id,
		Name:   args.Input.Name,
		Locked: args.Input.Locked,
	}
	if args.Input.Role != nil {
		role := model.Role(*args.Input.Role)
		req.Role = &role
	}

	u, err := r.svc.Users.UpdateUser(ctx, req)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.user(u), nil
}

type recordActionInput struct {
	UserID    graphql.ID
	ProjectID graphql.ID
	Verb      string
	ContentID *graphql.ID
	Result    *float64
	Timestamp *string
}

func (r *Resolver) RecordAction(ctx context.Context, args struct{ Input recordActionInput }) (*actionResolver, error) {
	userID, err := parseID("userId", args.Input.UserID)
	if err != nil {
		return nil, err
	}
	projectID, err := parseID("projectId", args.Input.ProjectID)
	if err != nil {
		return nil, err
	}
	contentID, err := parseOptionalID("contentId", args.Input.ContentID)
	if err != nil {
		return nil, err
	}

	req := service.RecordActionRequest{
		UserID:    userID,
		ProjectID: projectID,
		Verb:      args.Input.Verb,
		ContentID: contentID,
		Result:    args.Input.Result,
	}
	if args.Input.Timestamp != nil {
		req.Timestamp = *args.Input.Timestamp
	}

	a, err := r.svc.Actions.RecordAction(ctx, req)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.action(a), nil
}

type createContentInput struct {
	ProjectID   graphql.ID
	Code        string
	Name        string
	Description *string
	Kind        string
	URL         *string
	Tags        *[]string
}

func (r *Resolver) CreateContent(ctx context.Context, args struct{ Input createContentInput }) (*contentResolver, error) {
	projectID, err := parseID("projectId", args.Input.ProjectID)
	if err != nil {
		return nil, err
	}

	req := service.CreateContentRequest{
		ProjectID: projectID,
		Code:      args.Input.Code,
		Name:      args.Input.Name,
		Kind:      args.Input.Kind,
		URL:       args.Input.URL,
	}
	if args.Input.Description != nil {
		req.Description = *args.Input.Description
	}
	if args.Input.Tags != nil {
		req.Tags = *args.Input.Tags
	}

	c, err := r.svc.Content.CreateContent(ctx, req)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.content(c), nil
}

type updateContentInput struct {
	ID          graphql.ID
	Name        *string
	Description *string
	Kind        *string
	URL         *string
	Tags        *[]string
}

func (r *Resolver) UpdateContent(ctx context.Context, args struct{ Input updateContentInput }) (*contentResolver, error) {
	id, err := parseID("id", args.Input.ID)
	if err != nil {
		return nil, err
	}

	req := service.UpdateContentRequest{
		ID:          id,
		Name:        args.Input.Name,
		Description: args.Input.Description,
		Kind:        args.Input.Kind,
		URL:         args.Input.URL,
	}
	if args.Input.Tags != nil {
		req.Tags = *args.Input.Tags
		if req.Tags == nil {
			req.Tags = []string{}
		}
	}

	c, err := r.svc.Content.UpdateContent(ctx, req)
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.content(c), nil
}

func (r *Resolver) DeleteContent(ctx context.Context, args idArgs) (graphql.ID, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return "", err
	}
	if err := r.svc.Content.DeleteContent(ctx, id); err != nil {
		return "", toGQLError(ctx, err)
	}
	return args.ID, nil
}

type createDomainInput struct {
	ProjectID graphql.ID
	Code      string
	Name      string
}

func (r *Resolver) CreateDomain(ctx context.Context, args struct{ Input createDomainInput }) (*domainResolver, error) {
	projectID, err := parseID("projectId", args.Input.ProjectID)
	if err != nil {
		return nil, err
	}

	d, err := r.svc.Domains.CreateDomain(ctx, service.CreateDomainRequest{
		ProjectID: projectID,
		Code:      args.Input.Code,
		Name:      args.Input.Name,
	})
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.domain(d), nil
}

type createTopicInput struct {
	DomainID graphql.ID
	ParentID *graphql.ID
	Code     string
	Name     string
}

func (r *Resolver) CreateTopic(ctx context.Context, args struct{ Input createTopicInput }) (*topicResolver, error) {
	domainID, err := parseID("domainId", args.Input.DomainID)
	if err != nil {
		return nil, err
	}
	parentID, err := parseOptionalID("parentId", args.Input.ParentID)
	if err != nil {
		return nil, err
	}

	t, err := r.svc.Domains.CreateTopic(ctx, service.CreateTopicRequest{
		DomainID: domainID,
		ParentID: parentID,
		Code:     args.Input.Code,
		Name:     args.Input.Name,
	})
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.topic(t), nil
}

type createKCInput struct {
	DomainID graphql.ID
	Code     string
	Name     string
}

func (r *Resolver) CreateKC(ctx context.Context, args struct{ Input createKCInput }) (*kcResolver, error) {
	domainID, err := parseID("domainId", args.Input.DomainID)
	if err != nil {
		return nil, err
	}

	kc, err := r.svc.Domains.CreateKC(ctx, service.CreateKCRequest{
		DomainID: domainID,
		Code:     args.Input.Code,
		Name:     args.Input.Name,
	})
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.kc(kc), nil
}

type createModelStateInput struct {
	UserID   graphql.ID
	DomainID graphql.ID
	Type     string
	Creator  string
	Data     string
}

func (r *Resolver) CreateModelState(ctx context.Context, args struct{ Input createModelStateInput }) (*modelStateResolver, error) {
	userID, err := parseID("userId", args.Input.UserID)
	if err != nil {
		return nil, err
	}
	domainID, err := parseID("domainId", args.Input.DomainID)
	if err != nil {
		return nil, err
	}

	m, err := r.svc.ModelStates.CreateModelState(ctx, service.CreateModelStateRequest{
		UserID:   userID,
		DomainID: domainID,
		Type:     args.Input.Type,
		Creator:  args.Input.Creator,
		Data:     args.Input.Data,
	})
	if err != nil {
		return nil, toGQLError(ctx, err)
	}
	return r.modelState(m), nil
}
