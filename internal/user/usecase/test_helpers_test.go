package usecase

import (
	"context"

	"campus-assistant/config"
	"campus-assistant/internal/model"
	"campus-assistant/internal/user/repository"
	"campus-assistant/pkg/supabase"
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

type mockUserRepo struct {
	getByEmailFunc     func(ctx context.Context, sc model.Scope, email string) (model.User, error)
	insertFunc         func(ctx context.Context, opt repository.InsertUserOptions) error
	updateProfileFunc  func(ctx context.Context, sc model.Scope, opt repository.UpdateProfileOptions) error
	touchLastLoginFunc func(ctx context.Context, sc model.Scope, email string) error
	touched            int
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, sc model.Scope, email string) (model.User, error) {
	return m.getByEmailFunc(ctx, sc, email)
}

func (m *mockUserRepo) Insert(ctx context.Context, opt repository.InsertUserOptions) error {
	return m.insertFunc(ctx, opt)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, sc model.Scope, opt repository.UpdateProfileOptions) error {
	return m.updateProfileFunc(ctx, sc, opt)
}

func (m *mockUserRepo) TouchLastLogin(ctx context.Context, sc model.Scope, email string) error {
	m.touched++
	if m.touchLastLoginFunc == nil {
		return nil
	}
	return m.touchLastLoginFunc(ctx, sc, email)
}

type mockAuth struct {
	signInFunc  func(ctx context.Context, email, password string) (*supabase.SignInResponse, error)
	signUpFunc  func(ctx context.Context, req supabase.SignUpRequest) (*supabase.SignUpResponse, error)
	getUserFunc func(ctx context.Context, accessToken string) (*supabase.AuthUser, error)
	signOutFunc func(ctx context.Context, accessToken string) error
}

func (m *mockAuth) SignInWithPassword(ctx context.Context, email, password string) (*supabase.SignInResponse, error) {
	return m.signInFunc(ctx, email, password)
}

func (m *mockAuth) SignUp(ctx context.Context, req supabase.SignUpRequest) (*supabase.SignUpResponse, error) {
	return m.signUpFunc(ctx, req)
}

func (m *mockAuth) GetUser(ctx context.Context, accessToken string) (*supabase.AuthUser, error) {
	return m.getUserFunc(ctx, accessToken)
}

func (m *mockAuth) SignOut(ctx context.Context, accessToken string) error {
	return m.signOutFunc(ctx, accessToken)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{AllowedEmailDomain: "dsu.edu"}
}
