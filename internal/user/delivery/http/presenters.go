package http

import (
	"campus-assistant/internal/model"
	"campus-assistant/internal/user"
	"campus-assistant/pkg/response"
)

// --- Request DTOs ---

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// ---

type registerReq struct {
	Email    string `json:"email"     binding:"required,email"`
	Password string `json:"password"  binding:"required"`
	FullName string `json:"full_name" binding:"required,min=1,max=255"`
	Username string `json:"username"  binding:"required"`
}

func (r registerReq) validate() error { return nil }

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Username: r.Username,
	}
}

// ---

type updateProfileReq struct {
	FullName string  `json:"full_name" binding:"required,min=1,max=255"`
	Username string  `json:"username"  binding:"required"`
	Branch   string  `json:"branch"    binding:"required,max=255"`
	Bio      *string `json:"bio"       binding:"omitempty,max=200"`
	Year     *string `json:"year"      binding:"omitempty,max=32"`
	Avatar   *string `json:"avatar"    binding:"omitempty"`
}

func (r updateProfileReq) validate() error { return nil }

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{
		FullName: &r.FullName,
		Username: &r.Username,
		Branch:   &r.Branch,
		Bio:      r.Bio,
		Year:     r.Year,
		Avatar:   r.Avatar,
	}
}

// --- Response DTOs ---

type profileResp struct {
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Username  string     `json:"username"`
	Bio       string     `json:"bio"`
	Branch    string     `json:"branch"`
	Year      string     `json:"year"`
	Avatar    string     `json:"avatar"`
	CreatedAt response.DateTime  `json:"created_at"`
	LastLogin *response.DateTime `json:"last_login,omitempty"`
}

func (h *handler) newProfileResp(u model.User) profileResp {
	resp := profileResp{
		Email:     u.Email,
		FullName:  u.FullName,
		Username:  u.Username,
		Bio:       u.Bio,
		Branch:    u.Branch,
		Year:      u.Year,
		Avatar:    u.Avatar,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
	if !u.LastLogin.IsZero() {
		ll := response.DateTime(u.LastLogin)
		resp.LastLogin = &ll
	}
	return resp
}

type loginResp struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int         `json:"expires_in"`
	User         profileResp `json:"user"`
}

func (h *handler) newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    out.ExpiresIn,
		User:         h.newProfileResp(out.User),
	}
}

type registerResp struct {
	NeedsConfirmation bool        `json:"needs_confirmation"`
	User              profileResp `json:"user"`
}

func (h *handler) newRegisterResp(out user.RegisterOutput) registerResp {
	return registerResp{
		NeedsConfirmation: out.NeedsConfirmation,
		User:              h.newProfileResp(out.User),
	}
}

type sessionResp struct {
	IsAuthenticated bool        `json:"is_authenticated"`
	User            profileResp `json:"user"`
}

func (h *handler) newSessionResp(out user.SessionOutput) sessionResp {
	return sessionResp{
		IsAuthenticated: true,
		User:            h.newProfileResp(out.User),
	}
}

type avatarResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type avatarsResp struct {
	Avatars []avatarResp `json:"avatars"`
}

func (h *handler) newAvatarsResp() avatarsResp {
	avatars := make([]avatarResp, len(user.Avatars))
	for i, a := range user.Avatars {
		avatars[i] = avatarResp{ID: a.ID, Name: a.Name}
	}
	return avatarsResp{Avatars: avatars}
}
