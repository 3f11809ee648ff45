package model

// Scope identifies the authenticated caller of a request. It is built by the
// auth middleware and passed explicitly into every usecase; nothing reads
// session state ambiently.
type Scope struct {
	UserID      string // Supabase auth user id
	Email       string
	AccessToken string // bearer token forwarded to data endpoints (RLS)
}
