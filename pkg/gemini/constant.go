package gemini

const (
	defaultModel  = "gemini-1.5-flash"
	defaultAPIURL = "https://generativelanguage.googleapis.com/v1"
)
