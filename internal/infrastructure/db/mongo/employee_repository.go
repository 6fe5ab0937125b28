package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobportal/job-portal/internal/core/domain"
)

const collectionEmployees = "employees"

type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(collectionEmployees)}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, employee); err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// SearchByName performs a case-insensitive substring match on full_name.
func (r *EmployeeRepository) SearchByName(ctx context.Context, name string) ([]domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"full_name": bson.M{
		"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"},
	}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer cur.Close(ctx)

	employees := []domain.Employee{}
	if err := cur.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Employee
	if err := r.coll.FindOne(ctx, filter).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &e, nil
}
