package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus-assistant/internal/model"
	"campus-assistant/internal/user/repository"
	pkgSupabase "campus-assistant/pkg/supabase"
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

func newTestRepo(t *testing.T, handler http.Handler) *implRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(pkgSupabase.NewClient(srv.URL, "test-anon-key"), mockLogger{})
}

func TestGetByEmail(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u-1", Email: "student@dsu.edu", AccessToken: "tok"}

	t.Run("Found", func(t *testing.T) {
		repo := newTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/rest/v1/users" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("email"); got != "eq.student@dsu.edu" {
				t.Errorf("unexpected email filter %q", got)
			}
			json.NewEncoder(w).Encode([]map[string]any{
				{
					"email":     "student@dsu.edu",
					"full_name": "Test Student",
					"username":  "tstudent",
					"avatar":    "avatar-3",
					"is_active": true,
				},
			})
		}))

		u, err := repo.GetByEmail(ctx, sc, "student@dsu.edu")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Username != "tstudent" || !u.IsActive {
			t.Errorf("unexpected user %+v", u)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := newTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("[]"))
		}))

		_, err := repo.GetByEmail(ctx, sc, "nobody@dsu.edu")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("OK", func(t *testing.T) {
		repo := newTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			var row map[string]any
			json.NewDecoder(r.Body).Decode(&row)
			if row["email"] != "new@dsu.edu" || row["is_active"] != true {
				t.Errorf("unexpected row %+v", row)
			}
			w.WriteHeader(http.StatusCreated)
		}))

		err := repo.Insert(ctx, repository.InsertUserOptions{
			Email:    "new@dsu.edu",
			FullName: "New Student",
			Username: "newbie",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Unique Violation", func(t *testing.T) {
		repo := newTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
		}))

		err := repo.Insert(ctx, repository.InsertUserOptions{Email: "dup@dsu.edu", Username: "dup"})
		if !errors.Is(err, repository.ErrUniqueViolation) {
			t.Fatalf("expected ErrUniqueViolation, got %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Email: "student@dsu.edu", AccessToken: "tok"}

	t.Run("Partial Update", func(t *testing.T) {
		bio := "Third year, loves distributed systems"
		repo := newTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPatch {
				t.Errorf("expected PATCH, got %s", r.Method)
			}
			var changes map[string]any
			json.NewDecoder(r.Body).Decode(&changes)
			if len(changes) != 1 || changes["bio"] != bio {
				t.Errorf("unexpected changes %+v", changes)
			}
			w.WriteHeader(http.StatusNoContent)
		}))

		err := repo.UpdateProfile(ctx, sc, repository.UpdateProfileOptions{Bio: &bio})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("No Changes", func(t *testing.T) {
		repo := newTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("expected no request")
		}))

		if err := repo.UpdateProfile(ctx, sc, repository.UpdateProfileOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Username Taken", func(t *testing.T) {
		taken := "popular"
		repo := newTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint \"users_username_key\""}`))
		}))

		err := repo.UpdateProfile(ctx, sc, repository.UpdateProfileOptions{Username: &taken})
		if !errors.Is(err, repository.ErrUniqueViolation) {
			t.Fatalf("expected ErrUniqueViolation, got %v", err)
		}
	})
}

func TestTouchLastLogin(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Email: "student@dsu.edu", AccessToken: "tok"}

	repo := newTestRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var changes map[string]any
		json.NewDecoder(r.Body).Decode(&changes)
		v, ok := changes["last_login"].(string)
		if !ok || !strings.Contains(v, "T") {
			t.Errorf("expected RFC3339 last_login, got %+v", changes)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := repo.TouchLastLogin(ctx, sc, "student@dsu.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
