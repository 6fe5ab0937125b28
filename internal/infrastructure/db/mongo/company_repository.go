package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobportal/job-portal/internal/core/domain"
)

const collectionCompanies = "companies"

type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection(collectionCompanies)}
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, company); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *CompanyRepository) ListByIndustry(ctx context.Context, industry string) ([]domain.Company, error) {
	return r.findMany(ctx, bson.M{"industry": industry})
}

func (r *CompanyRepository) findOne(ctx context.Context, filter bson.M) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Company
	if err := r.coll.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return &c, nil
}

func (r *CompanyRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer cur.Close(ctx)

	companies := []domain.Company{}
	if err := cur.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}
	return companies, nil
}
