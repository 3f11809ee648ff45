package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "campus-assistant/internal/chat/delivery/http"
	chatRepo "campus-assistant/internal/chat/repository/supabase"
	chatUC "campus-assistant/internal/chat/usecase"
	"campus-assistant/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := chatRepo.New(srv.supabaseClient, srv.l)

	// 2. UseCase
	uc := chatUC.New(srv.l, repo, srv.geminiClient)

	// 3. HTTP Handler
	h := chatHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/chat/query
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered (AI fallback available: %v)", srv.geminiClient.IsAvailable())
	return nil
}
