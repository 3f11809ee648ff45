package supabase

import "fmt"

// Session holds the token pair issued by Supabase Auth.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// AuthUser is the authenticated user record returned by Supabase Auth.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SignInResponse is the password-grant response body.
type SignInResponse struct {
	Session
	User AuthUser `json:"user"`
}

// SignUpRequest is the signup request body. Metadata lands in the user's
// raw_user_meta_data.
type SignUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

// SignUpResponse is the signup response body. Session is nil when the
// project requires email confirmation before the first login.
type SignUpResponse struct {
	User    AuthUser `json:"user"`
	Session *Session `json:"session"`
}

// APIError is a non-2xx response from any Supabase endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: API error %d: %s", e.StatusCode, e.Message)
}

// gotrueError is the error body shape of the Auth API. Older and newer GoTrue
// versions disagree on the field name, so both are tried.
type gotrueError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e gotrueError) text() string {
	switch {
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Msg != "":
		return e.Msg
	default:
		return e.Message
	}
}

// postgrestError is the error body shape of the REST API.
type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}
