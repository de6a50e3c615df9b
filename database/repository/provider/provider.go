package providerRepo

import (
	"context"
	"fmt"
	"time"

	"littlenest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository is the provider lookup the booking core consumes.
// GetByID returns (nil, nil) when no provider matches.
type ProviderRepository interface {
	GetByID(id string) (*models.Provider, error)
}

// MongoProviderRepo implements ProviderRepository on a providers collection.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo builds a repository bound to the given database handle.
func NewMongoProviderRepo(db *mongo.Database) *MongoProviderRepo {
	return &MongoProviderRepo{coll: db.Collection("providers")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// GetByID fetches a provider document by its ID.
func (r *MongoProviderRepo) GetByID(id string) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var provider models.Provider
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider %s: %w", id, err)
	}
	return &provider, nil
}
