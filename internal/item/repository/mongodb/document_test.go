package mongodb

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDocumentRoundTrip(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 5, 1, 15, 30, 0, 123_000_000, time.UTC)
	price := decimal.RequireFromString("9.99")

	doc, err := newDocument(id, "Potion", price, created)
	if err != nil {
		t.Fatalf("newDocument: %v", err)
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}

	var decoded itemDocument
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("bson.Unmarshal: %v", err)
	}

	it, err := decoded.toItem()
	if err != nil {
		t.Fatalf("toItem: %v", err)
	}
	if it.ID != id || it.Name != "Potion" {
		t.Errorf("unexpected item %+v", it)
	}
	if !it.Price.Equal(price) {
		t.Errorf("expected price %s, got %s", price, it.Price)
	}
	if !it.Created.Equal(created) {
		t.Errorf("expected created %s, got %s", created, it.Created)
	}
}

func TestDocumentUsesStringID(t *testing.T) {
	id := uuid.New()
	doc, err := newDocument(id, "Elixir", decimal.NewFromInt(25), time.Now())
	if err != nil {
		t.Fatalf("newDocument: %v", err)
	}

	raw, _ := bson.Marshal(doc)
	if got := bson.Raw(raw).Lookup("_id").StringValue(); got != id.String() {
		t.Errorf("expected _id %s, got %s", id, got)
	}
}

func TestToItemRejectsBadID(t *testing.T) {
	p, _ := primitive.ParseDecimal128("1")
	if _, err := (itemDocument{ID: "not-a-uuid", Price: p}).toItem(); err == nil {
		t.Errorf("expected error for malformed id")
	}
}
