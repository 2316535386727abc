package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joblane/careers-api/internal/core/domain"
)

const applicationsCollection = "applications"

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type mongoApplication struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	JobID     string             `bson:"job_id"`
	AppliedAt int64              `bson:"applied_at"`
}

func (r *ApplicationRepository) Insert(ctx context.Context, app *domain.JobApplication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoApplication{
		Username:  app.Username,
		JobID:     app.JobID,
		AppliedAt: app.AppliedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		// The compound unique index is the race guard: two concurrent
		// applies for the same pair surface here as a conflict.
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, username, jobID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"username": username, "job_id": jobID})
	if err != nil {
		return false, fmt.Errorf("count applications: %w", err)
	}
	return n > 0, nil
}

// JobIDsForUser returns the job IDs a user applied to, ascending by job_id.
func (r *ApplicationRepository) JobIDsForUser(ctx context.Context, username string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"username": username}, options.Find().SetSort(bson.D{{Key: "job_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	var jobIDs []string
	for cur.Next(ctx) {
		var ma mongoApplication
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		jobIDs = append(jobIDs, ma.JobID)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return jobIDs, nil
}

func (r *ApplicationRepository) DeleteForUser(ctx context.Context, username string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"username": username})
	if err != nil {
		return 0, fmt.Errorf("delete applications: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the compound unique index on (username, job_id).
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}, {Key: "job_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
