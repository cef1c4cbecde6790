package httpserver

import (
	"context"

	itemHTTP "library-catalog/internal/item/delivery/http"
	itemRepository "library-catalog/internal/item/repository"
	itemMemory "library-catalog/internal/item/repository/memory"
	itemPostgre "library-catalog/internal/item/repository/postgre"
	itemUC "library-catalog/internal/item/usecase"
	"library-catalog/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupItemDomain initializes the catalog item domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	var repo itemRepository.Repository
	if srv.dbDriver == "postgres" {
		repo = itemPostgre.New(srv.postgresDB, srv.l)
	} else {
		repo = itemMemory.New()
	}

	// 2. UseCase
	uc := itemUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/items
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered (store: %s)", srv.dbDriver)
	return nil
}
