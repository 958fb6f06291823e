package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"catalog-service/internal/item/repository"
	"catalog-service/pkg/log"
)

const collectionName = "items"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New creates a MongoDB-backed Repository storing items in the "items" collection.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/mongodb: db is required")
	}
	return &implRepository{coll: db.Collection(collectionName), l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/mongodb.%s", method)
}
