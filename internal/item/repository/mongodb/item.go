package mongodb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog-service/internal/item"
	repo "catalog-service/internal/item/repository"
)

// CreateItem inserts a new Item document.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	doc, err := newDocument(opt.ID, opt.Name, opt.Price, opt.Created)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return item.Item{}, repo.ErrDuplicateID
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return doc.toItem()
}

// GetOneItem returns a zero-value Item when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	var doc itemDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": opt.ID.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}

	it, err := doc.toItem()
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns Items sorted by creation time.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created", Value: 1}, {Key: "_id", Value: 1}})
	if opt.Limit > 0 {
		findOpts.SetLimit(int64(opt.Limit))
	}

	cur, err := r.coll.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	var docs []itemDocument
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s cursor: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	items := make([]item.Item, 0, len(docs))
	for _, doc := range docs {
		it, err := doc.toItem()
		if err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	return items, nil
}

// UpdateItem replaces name and price and returns the updated document.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	price, err := toDecimal128(opt.Price)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}

	update := bson.M{"$set": bson.M{"name": opt.Name, "price": price}}
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc itemDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": opt.ID.String()}, update, after).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return doc.toItem()
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}
