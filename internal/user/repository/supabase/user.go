package supabase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"campus-assistant/internal/model"
	"campus-assistant/internal/user/repository"
	pkgSupabase "campus-assistant/pkg/supabase"
)

const usersTable = "users"

type userRow struct {
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Username  string     `json:"username"`
	Bio       string     `json:"bio"`
	Branch    string     `json:"branch"`
	Year      string     `json:"year"`
	Avatar    string     `json:"avatar"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

func (r userRow) toModel() model.User {
	u := model.User{
		Email:     r.Email,
		FullName:  r.FullName,
		Username:  r.Username,
		Bio:       r.Bio,
		Branch:    r.Branch,
		Year:      r.Year,
		Avatar:    r.Avatar,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
	if r.LastLogin != nil {
		u.LastLogin = *r.LastLogin
	}
	return u
}

func (repo *implRepository) GetByEmail(ctx context.Context, sc model.Scope, email string) (model.User, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("email", "eq."+email)
	query.Set("limit", "1")

	var rows []userRow
	if err := repo.client.Select(ctx, usersTable, query, sc.AccessToken, &rows); err != nil {
		repo.l.Errorf(ctx, "user.repository.GetByEmail: %v", err)
		return model.User{}, err
	}
	if len(rows) == 0 {
		return model.User{}, repository.ErrNotFound
	}
	return rows[0].toModel(), nil
}

func (repo *implRepository) Insert(ctx context.Context, opt repository.InsertUserOptions) error {
	row := map[string]any{
		"email":     opt.Email,
		"full_name": opt.FullName,
		"username":  opt.Username,
		"is_active": true,
	}
	if opt.Avatar != "" {
		row["avatar"] = opt.Avatar
	}

	// insert happens right after signup, before the first login, so the
	// anon key is used rather than a user token
	if err := repo.client.Insert(ctx, usersTable, row, ""); err != nil {
		repo.l.Errorf(ctx, "user.repository.Insert: %v", err)
		return mapUniqueViolation(err)
	}
	return nil
}

func (repo *implRepository) UpdateProfile(ctx context.Context, sc model.Scope, opt repository.UpdateProfileOptions) error {
	changes := map[string]any{}
	if opt.FullName != nil {
		changes["full_name"] = *opt.FullName
	}
	if opt.Username != nil {
		changes["username"] = *opt.Username
	}
	if opt.Bio != nil {
		changes["bio"] = *opt.Bio
	}
	if opt.Branch != nil {
		changes["branch"] = *opt.Branch
	}
	if opt.Year != nil {
		changes["year"] = *opt.Year
	}
	if opt.Avatar != nil {
		changes["avatar"] = *opt.Avatar
	}
	if len(changes) == 0 {
		return nil
	}

	filter := url.Values{}
	filter.Set("email", "eq."+sc.Email)

	if err := repo.client.Update(ctx, usersTable, filter, changes, sc.AccessToken); err != nil {
		repo.l.Errorf(ctx, "user.repository.UpdateProfile: %v", err)
		return mapUniqueViolation(err)
	}
	return nil
}

func (repo *implRepository) TouchLastLogin(ctx context.Context, sc model.Scope, email string) error {
	filter := url.Values{}
	filter.Set("email", "eq."+email)

	changes := map[string]any{
		"last_login": repo.now().UTC().Format(time.RFC3339),
	}
	if err := repo.client.Update(ctx, usersTable, filter, changes, sc.AccessToken); err != nil {
		repo.l.Errorf(ctx, "user.repository.TouchLastLogin: %v", err)
		return err
	}
	return nil
}

// mapUniqueViolation surfaces PostgREST unique-constraint failures (code
// 23505) as ErrUniqueViolation so the use case can translate them.
func mapUniqueViolation(err error) error {
	var apiErr *pkgSupabase.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 409 || strings.Contains(apiErr.Message, "23505") {
			return repository.ErrUniqueViolation
		}
	}
	return err
}
