package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"campus-assistant/internal/chat"
	"campus-assistant/internal/middleware"
	"campus-assistant/internal/model"
	"campus-assistant/internal/router"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	processFunc func(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error)
}

func (m *mockUseCase) Process(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	return m.processFunc(ctx, sc, input)
}

func newTestRouter(uc chat.UseCase, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(mockLogger{}, uc)

	group := r.Group("/api/v1/chat")
	if authed {
		group.Use(func(c *gin.Context) {
			middleware.SetScope(c, model.Scope{UserID: "u-1", Email: "student@dsu.edu", AccessToken: "tok"})
			c.Next()
		})
	}
	group.POST("/query", h.Query)
	return r
}

func doQuery(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestQueryHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		uc := &mockUseCase{
			processFunc: func(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
				if sc.UserID != "u-1" {
					t.Errorf("expected scope forwarded, got %+v", sc)
				}
				return chat.ProcessOutput{
					Reply:   "**Library Status:** fine",
					Intent:  router.IntentLibrary,
					Success: true,
				}, nil
			},
		}
		r := newTestRouter(uc, true)

		w := doQuery(t, r, `{"message":"is the library crowded?"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Reply    string `json:"reply"`
				Intent   string `json:"intent"`
				Answered bool   `json:"answered"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Data.Intent != "LIBRARY" || !body.Data.Answered {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("Missing Message", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, true)

		w := doQuery(t, r, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Empty Message Error", func(t *testing.T) {
		uc := &mockUseCase{
			processFunc: func(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
				return chat.ProcessOutput{}, chat.ErrEmptyMessage
			},
		}
		r := newTestRouter(uc, true)

		w := doQuery(t, r, `{"message":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("No Scope", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, false)

		w := doQuery(t, r, `{"message":"hi"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}
