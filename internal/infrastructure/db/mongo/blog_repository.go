package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobportal/job-portal/internal/core/domain"
)

const collectionBlogs = "blogs"

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(collectionBlogs)}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, blog); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) ListByAuthor(ctx context.Context, kind domain.AuthorKind, authorID string) ([]domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"author_kind": kind, "author_id": authorID})
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cur.Close(ctx)

	blogs := []domain.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}
