// Package store defines the document-store contract the content editors and
// the public site are written against. Collections hold entities addressed by
// generated IDs; the settings collection holds singleton documents addressed
// by fixed keys ("profile", "socials") and always read or written whole.
package store

import (
	"context"
	"time"
)

// Collection and singleton names. Every reader and writer goes through these
// so a rename stays a one-line change.
const (
	CollectionProjects    = "projects"
	CollectionSkills      = "skills"
	CollectionExperiences = "experiences"
	CollectionMessages    = "messages"
	CollectionSettings    = "settings"

	SingletonProfile = "profile"
	SingletonSocials = "socials"
)

// Document is one stored entity. CreatedAt and UpdatedAt are assigned by the
// store's clock on write, never taken from the caller.
type Document struct {
	ID        string
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Query narrows and orders a ListCollection call. OrderBy of "createdAt" or
// "updatedAt" sorts on the server-stamped columns; any other name sorts on
// that document field. A zero Limit means no limit.
type Query struct {
	OrderBy    string
	Descending bool
	Filter     map[string]any
	Limit      int
}

type Store interface {
	ListCollection(ctx context.Context, collection string, q Query) ([]Document, error)
	GetDocument(ctx context.Context, collection, id string) (*Document, error)
	CreateDocument(ctx context.Context, collection string, fields map[string]any) (string, error)
	UpdateDocument(ctx context.Context, collection, id string, partial map[string]any) error
	// SetDocument overwrites the whole document, creating it if absent.
	// Used for singletons; createdAt is preserved across overwrites.
	SetDocument(ctx context.Context, collection, id string, fields map[string]any) error
	DeleteDocument(ctx context.Context, collection, id string) error
}

// Watcher is the live-read side channel, kept separate from Store so the
// one-shot fetch path and the subscription path are not conflated. Only the
// socials singleton is watched today.
type Watcher interface {
	// Watch delivers each subsequent write of the document. The returned
	// cancel func releases the subscription; the channel is closed after
	// cancel or when ctx ends. Subscribers joining late do not get history.
	Watch(ctx context.Context, collection, id string) (<-chan Document, func(), error)
}

// Notifier publishes a document change to any watchers. Writers that own a
// watched document call Notify after a successful write.
type Notifier interface {
	Notify(ctx context.Context, collection, id string, doc Document) error
}
