package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"campus-assistant/internal/middleware"
	userHTTP "campus-assistant/internal/user/delivery/http"
	userRepo "campus-assistant/internal/user/repository/supabase"
	userUC "campus-assistant/internal/user/usecase"
)

// setupUserDomain initializes the user domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.supabaseClient, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := userRepo.New(srv.supabaseClient, srv.l)

	// 2. UseCase
	uc := userUC.New(srv.l, repo, srv.supabaseClient, srv.cfg.Auth)

	// 3. HTTP Handler
	h := userHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/auth and /api/v1/users
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
