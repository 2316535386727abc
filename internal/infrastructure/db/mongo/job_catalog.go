package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const jobsCollection = "jobs"

// JobCatalog is a read-only adapter over the externally-owned jobs
// collection. This service never writes to it.
type JobCatalog struct {
	coll *mongo.Collection
}

func NewJobCatalog(db *mongo.Database) *JobCatalog {
	return &JobCatalog{coll: db.Collection(jobsCollection)}
}

// Exists reports whether a job with the given ID is present in the catalog.
// IDs that parse as ObjectIDs are matched on _id directly; anything else is
// matched as a plain string key.
func (c *JobCatalog) Exists(ctx context.Context, jobID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": jobID}
	if oid, err := primitive.ObjectIDFromHex(jobID); err == nil {
		filter = bson.M{"_id": oid}
	}

	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("job lookup: %w", err)
	}
	return n > 0, nil
}
