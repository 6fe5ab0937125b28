package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobportal/job-portal/internal/core/domain"
)

const collectionApplications = "applications"

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(collectionApplications)}
}

func (r *ApplicationRepository) Create(ctx context.Context, application *domain.Application) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, application); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	applications := []domain.Application{}
	if err := cur.All(ctx, &applications); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return applications, nil
}

// EnsureIndexes creates the employee lookup index.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "applied_at", Value: -1}},
	})
	return err
}
