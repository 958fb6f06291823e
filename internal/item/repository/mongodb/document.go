package mongodb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog-service/internal/item"
)

type itemDocument struct {
	ID      string               `bson:"_id"`
	Name    string               `bson:"name"`
	Price   primitive.Decimal128 `bson:"price"`
	Created time.Time            `bson:"created"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

func newDocument(id uuid.UUID, name string, price decimal.Decimal, created time.Time) (itemDocument, error) {
	p, err := toDecimal128(price)
	if err != nil {
		return itemDocument{}, fmt.Errorf("price %s: %w", price, err)
	}
	return itemDocument{
		ID:      id.String(),
		Name:    name,
		Price:   p,
		Created: created.UTC(),
	}, nil
}

func (d itemDocument) toItem() (item.Item, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return item.Item{}, fmt.Errorf("id %q: %w", d.ID, err)
	}
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return item.Item{}, fmt.Errorf("price %s: %w", d.Price, err)
	}
	return item.Item{
		ID:      id,
		Name:    d.Name,
		Price:   price,
		Created: d.Created.UTC(),
	}, nil
}
