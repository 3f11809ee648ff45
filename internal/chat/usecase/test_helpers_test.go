package usecase

import (
	"context"

	"campus-assistant/internal/chat/repository"
	"campus-assistant/internal/model"
	"campus-assistant/pkg/gemini"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any) {}

type mockRepository struct {
	freeClassroomsFunc func(ctx context.Context, sc model.Scope) ([]model.Classroom, error)
	libraryStatusFunc  func(ctx context.Context, sc model.Scope) (model.LibrarySnapshot, error)
	searchFacultyFunc  func(ctx context.Context, sc model.Scope, opt repository.SearchFacultyOptions) ([]model.Faculty, error)
}

func (m *mockRepository) FreeClassrooms(ctx context.Context, sc model.Scope) ([]model.Classroom, error) {
	return m.freeClassroomsFunc(ctx, sc)
}

func (m *mockRepository) LibraryStatus(ctx context.Context, sc model.Scope) (model.LibrarySnapshot, error) {
	return m.libraryStatusFunc(ctx, sc)
}

func (m *mockRepository) SearchFaculty(ctx context.Context, sc model.Scope, opt repository.SearchFacultyOptions) ([]model.Faculty, error) {
	return m.searchFacultyFunc(ctx, sc, opt)
}

type mockGemini struct {
	available    bool
	generateFunc func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	calls        int
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.calls++
	return m.generateFunc(ctx, req)
}

func (m *mockGemini) IsAvailable() bool { return m.available }

func (m *mockGemini) Model() string { return "test-model" }
