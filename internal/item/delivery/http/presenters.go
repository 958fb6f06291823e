package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catalog-service/internal/item"
)

// --- Request DTOs ---

type createReq struct {
	Name  string           `json:"name"  binding:"required,notblank,max=255" example:"Potion"`
	Price *decimal.Decimal `json:"price" binding:"required" swaggertype:"number" example:"9.99"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:  r.Name,
		Price: *r.Price,
	}
}

// ---

type listReq struct {
	NameToMatch string `form:"nameToMatch"`
}

func (r listReq) toInput() item.ListItemsInput {
	return item.ListItemsInput{NameToMatch: r.NameToMatch}
}

// ---

type updateReq struct {
	ID    uuid.UUID        `json:"-"` // populated from URI param
	Name  string           `json:"name"  binding:"required,notblank,max=255" example:"Hi-Potion"`
	Price *decimal.Decimal `json:"price" binding:"required" swaggertype:"number" example:"19.99"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:    r.ID,
		Name:  r.Name,
		Price: *r.Price,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID      uuid.UUID       `json:"id" swaggertype:"string" format:"uuid"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price" swaggertype:"number"`
	Created time.Time       `json:"created"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:      it.ID,
		Name:    it.Name,
		Price:   it.Price,
		Created: it.Created,
	}
}

func (h *handler) newCreateResp(out item.CreateItemOutput) itemResp {
	return newItemResp(out.Item)
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}

func (h *handler) newDetailResp(out item.DetailItemOutput) itemResp {
	return newItemResp(out.Item)
}
