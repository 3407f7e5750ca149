// Package memstore holds the plumbing shared by the in-memory entity stores:
// the not-found failure every store reports and the optional simulated
// request latency.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// NotFoundError reports that no record with the given id exists in the named
// collection. It is the only domain failure the stores produce.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Collection, e.ID)
}

func NotFound(collection, id string) error {
	return &NotFoundError{Collection: collection, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Wait models upstream latency. It returns early with the context error when
// the caller goes away, so an abandoned request never completes a late write.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
