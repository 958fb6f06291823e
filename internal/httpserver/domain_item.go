package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "catalog-service/internal/item/delivery/http"
	itemUC "catalog-service/internal/item/usecase"
	"catalog-service/internal/middleware"
)

// setupItemDomain initializes the item domain and registers its routes.
func (srv HTTPServer) setupItemDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase over the configured store
	uc := itemUC.New(srv.itemRepo, srv.publisher, srv.l)

	// 2. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 3. Routes: registers /items
	itemHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
