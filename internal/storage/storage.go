// Package storage publishes artifacts (audio files, the feed document) to an
// object store and returns stable public locators for them.
package storage

import (
	"context"
	"fmt"
	"io"
)

// PublishError reports a failed interaction with the object store. It is
// scoped to one task's pipeline run, not fatal to the invocation.
type PublishError struct {
	Name string
	Err  error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish %s: %v", e.Name, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// Store is the object storage collaborator.
//
// Publish uploads r under name and returns the asset's public URL and its
// storage id. When existingID is non-empty the asset is updated in place;
// otherwise implementations should prefer reusing an existing asset with the
// same name over creating a duplicate, so a retried upload converges.
type Store interface {
	Publish(ctx context.Context, r io.Reader, name, existingID string) (url, id string, err error)
	MakePublic(ctx context.Context, id string) error
}
