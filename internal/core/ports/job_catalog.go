package ports

import "context"

// JobCatalog is the external collaborator that owns job records. This
// service only ever asks whether a job exists; it never writes to the
// catalog.
type JobCatalog interface {
	Exists(ctx context.Context, jobID string) (bool, error)
}
