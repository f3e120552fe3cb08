// Package storage holds the query parameters shared by the storage adapters.
package storage

import "learnql/internal/model"

type UserFilter struct {
	Role   *model.Role
	Locked *bool
}

type UserUpdate struct {
	Name   *string
	Role   *model.Role
	Locked *bool
}

type ProjectUpdate struct {
	Name        *string
	Description *string
}

type ActionFilter struct {
	UserID    *int64
	ProjectID *int64
	Verb      *string
}

type ContentFilter struct {
	ProjectID *int64
	Kind      *string
	Tag       *string
}

// ContentUpdate leaves fields that are nil untouched. A non-nil empty Tags
// clears the tags.
type ContentUpdate struct {
	Name        *string
	Description *string
	Kind        *string
	URL         *string
	Tags        []string
}

type DomainFilter struct {
	ProjectID *int64
}

// TopicFilter selects topics of a domain. RootsOnly restricts the result to
// topics without a parent and is ignored when ParentID is set.
type TopicFilter struct {
	DomainID  *int64
	ParentID  *int64
	RootsOnly bool
}

type KCFilter struct {
	DomainID *int64
}

type ModelStateFilter struct {
	UserID   *int64
	DomainID *int64
	Type     *string
}
