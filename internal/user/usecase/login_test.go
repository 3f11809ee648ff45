package usecase

import (
	"context"
	"errors"
	"testing"

	"campus-assistant/internal/model"
	"campus-assistant/internal/user"
	"campus-assistant/internal/user/repository"
	"campus-assistant/pkg/supabase"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	activeUser := model.User{Email: "student@dsu.edu", Username: "tstudent", IsActive: true}

	t.Run("OK", func(t *testing.T) {
		auth := &mockAuth{
			signInFunc: func(ctx context.Context, email, password string) (*supabase.SignInResponse, error) {
				if email != "student@dsu.edu" {
					t.Errorf("expected normalized email, got %q", email)
				}
				return &supabase.SignInResponse{
					Session: supabase.Session{AccessToken: "tok", RefreshToken: "ref", ExpiresIn: 3600},
					User:    supabase.AuthUser{ID: "u-1", Email: email},
				}, nil
			},
		}
		repo := &mockUserRepo{
			getByEmailFunc: func(ctx context.Context, sc model.Scope, email string) (model.User, error) {
				if sc.AccessToken != "tok" {
					t.Errorf("expected session token on scope, got %q", sc.AccessToken)
				}
				return activeUser, nil
			},
		}
		uc := New(mockLogger{}, repo, auth, testAuthConfig())

		out, err := uc.Login(ctx, user.LoginInput{Email: "  Student@DSU.edu ", Password: "secret1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken != "tok" || out.User.Username != "tstudent" {
			t.Errorf("unexpected output %+v", out)
		}
		if repo.touched != 1 {
			t.Errorf("expected last_login touched once, got %d", repo.touched)
		}
	})

	t.Run("Wrong Domain", func(t *testing.T) {
		uc := New(mockLogger{}, &mockUserRepo{}, &mockAuth{}, testAuthConfig())

		_, err := uc.Login(ctx, user.LoginInput{Email: "someone@gmail.com", Password: "secret1"})
		if !errors.Is(err, user.ErrInvalidEmailDomain) {
			t.Fatalf("expected ErrInvalidEmailDomain, got %v", err)
		}
	})

	t.Run("Bad Credentials", func(t *testing.T) {
		auth := &mockAuth{
			signInFunc: func(ctx context.Context, email, password string) (*supabase.SignInResponse, error) {
				return nil, &supabase.APIError{StatusCode: 400, Message: "Invalid login credentials"}
			},
		}
		uc := New(mockLogger{}, &mockUserRepo{}, auth, testAuthConfig())

		_, err := uc.Login(ctx, user.LoginInput{Email: "student@dsu.edu", Password: "wrong"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Deactivated Account", func(t *testing.T) {
		auth := &mockAuth{
			signInFunc: func(ctx context.Context, email, password string) (*supabase.SignInResponse, error) {
				return &supabase.SignInResponse{
					Session: supabase.Session{AccessToken: "tok"},
					User:    supabase.AuthUser{ID: "u-1"},
				}, nil
			},
		}
		repo := &mockUserRepo{
			getByEmailFunc: func(ctx context.Context, sc model.Scope, email string) (model.User, error) {
				return model.User{Email: email, IsActive: false}, nil
			},
		}
		uc := New(mockLogger{}, repo, auth, testAuthConfig())

		_, err := uc.Login(ctx, user.LoginInput{Email: "student@dsu.edu", Password: "secret1"})
		if !errors.Is(err, user.ErrAccountDeactivated) {
			t.Fatalf("expected ErrAccountDeactivated, got %v", err)
		}
	})

	t.Run("Missing Profile Row", func(t *testing.T) {
		auth := &mockAuth{
			signInFunc: func(ctx context.Context, email, password string) (*supabase.SignInResponse, error) {
				return &supabase.SignInResponse{
					Session: supabase.Session{AccessToken: "tok"},
					User:    supabase.AuthUser{ID: "u-1"},
				}, nil
			},
		}
		repo := &mockUserRepo{
			getByEmailFunc: func(ctx context.Context, sc model.Scope, email string) (model.User, error) {
				return model.User{}, repository.ErrNotFound
			},
		}
		uc := New(mockLogger{}, repo, auth, testAuthConfig())

		_, err := uc.Login(ctx, user.LoginInput{Email: "student@dsu.edu", Password: "secret1"})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("TouchLastLogin Failure Ignored", func(t *testing.T) {
		auth := &mockAuth{
			signInFunc: func(ctx context.Context, email, password string) (*supabase.SignInResponse, error) {
				return &supabase.SignInResponse{
					Session: supabase.Session{AccessToken: "tok"},
					User:    supabase.AuthUser{ID: "u-1"},
				}, nil
			},
		}
		repo := &mockUserRepo{
			getByEmailFunc: func(ctx context.Context, sc model.Scope, email string) (model.User, error) {
				return activeUser, nil
			},
			touchLastLoginFunc: func(ctx context.Context, sc model.Scope, email string) error {
				return errors.New("timeout")
			},
		}
		uc := New(mockLogger{}, repo, auth, testAuthConfig())

		if _, err := uc.Login(ctx, user.LoginInput{Email: "student@dsu.edu", Password: "secret1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
