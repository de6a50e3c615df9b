package childRepo

import (
	"context"
	"fmt"
	"time"

	"littlenest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ChildRepository is the child-record lookup the booking core consumes.
// Only existence and ownership matter to the core.
type ChildRepository interface {
	GetByIDs(ids []string) ([]models.Child, error)
}

// MongoChildRepo implements ChildRepository on a children collection.
type MongoChildRepo struct {
	coll *mongo.Collection
}

// NewMongoChildRepo builds a repository bound to the given database handle.
func NewMongoChildRepo(db *mongo.Database) *MongoChildRepo {
	return &MongoChildRepo{coll: db.Collection("children")}
}

// GetByIDs returns the children whose ids are in the given set. Missing ids
// are simply absent from the result; the caller compares counts.
func (r *MongoChildRepo) GetByIDs(ids []string) ([]models.Child, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch children: %w", err)
	}
	defer cursor.Close(ctx)

	var children []models.Child
	if err := cursor.All(ctx, &children); err != nil {
		return nil, fmt.Errorf("failed to decode children: %w", err)
	}
	return children, nil
}
