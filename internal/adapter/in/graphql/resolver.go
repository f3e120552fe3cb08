package graphql

import (
	"context"

	"learnql/internal/adapter/out/storage"
	"learnql/internal/model"
	"learnql/internal/service"
	"learnql/pkg/pagination"
)

type ProjectService interface {
	CreateProject(ctx context.Context, req service.CreateProjectRequest) (model.Project, error)
	GetProject(ctx context.Context, projectID int64) (model.Project, error)
	UpdateProject(ctx context.Context, req service.UpdateProjectRequest) (model.Project, error)
	DeleteProject(ctx context.Context, projectID int64) error
	ListProjects(ctx context.Context, args pagination.Args) (pagination.Connection[model.Project], error)
}

type UserService interface {
	CreateUser(ctx context.Context, req service.CreateUserRequest) (model.User, error)
	GetUser(ctx context.Context, userID int64) (model.User, error)
	UpdateUser(ctx context.Context, req service.UpdateUserRequest) (model.User, error)
	ListUsers(ctx context.Context, filter storage.UserFilter, args pagination.Args) (pagination.Connection[model.User], error)
}

type ActionService interface {
	RecordAction(ctx context.Context, req service.RecordActionRequest) (model.Action, error)
	GetAction(ctx context.Context, actionID int64) (model.Action, error)
	ListActions(ctx context.Context, filter storage.ActionFilter, args pagination.Args) (pagination.Connection[model.Action], error)
	Listen(ctx context.Context, projectID int64) (<-chan model.Action, error)
}

type ContentService interface {
	CreateContent(ctx context.Context, req service.CreateContentRequest) (model.Content, error)
	GetContent(ctx context.Context, contentID int64) (model.Content, error)
	UpdateContent(ctx context.Context, req service.UpdateContentRequest) (model.Content, error)
	DeleteContent(ctx context.Context, contentID int64) error
	ListContent(ctx context.Context, filter storage.ContentFilter, args pagination.Args) (pagination.Connection[model.Content], error)
}

type DomainService interface {
	CreateDomain(ctx context.Context, req service.CreateDomainRequest) (model.Domain, error)
	GetDomain(ctx context.Context, domainID int64) (model.Domain, error)
	ListDomains(ctx context.Context, filter storage.DomainFilter, args pagination.Args) (pagination.Connection[model.Domain], error)
	CreateTopic(ctx context.Context, req service.CreateTopicRequest) (model.Topic, error)
	GetTopic(ctx context.Context, topicID int64) (model.Topic, error)
	ListTopics(ctx context.Context, filter storage.TopicFilter, args pagination.Args) (pagination.Connection[model.Topic], error)
	CreateKC(ctx context.Context, req service.CreateKCRequest) (model.KC, error)
	GetKC(ctx context.Context, kcID int64) (model.KC, error)
	ListKCs(ctx context.Context, filter storage.KCFilter, args pagination.Args) (pagination.Connection[model.KC], error)
}

type ModelStateService interface {
	CreateModelState(ctx context.Context, req service.CreateModelStateRequest) (model.ModelState, error)
	GetModelState(ctx context.Context, modelStateID int64) (model.ModelState, error)
	ListModelStates(ctx context.Context, filter storage.ModelStateFilter, args pagination.Args) (pagination.Connection[model.ModelState], error)
}

// Services groups what the resolvers read from and write to.
type Services struct {
	Projects    ProjectService
	Users       UserService
	Actions     ActionService
	Content     ContentService
	Domains     DomainService
	ModelStates ModelStateService
}

// Resolver is the root resolver. Its methods serve the fields of Query,
// Mutation and Subscription.
type Resolver struct {
	svc Services
}

func NewResolver(svc Services) *Resolver {
	return &Resolver{svc: svc}
}
