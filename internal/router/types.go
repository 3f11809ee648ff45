package router

// Intent represents the category of campus information a message asks for.
type Intent string

const (
	IntentClassroom Intent = "CLASSROOM"
	IntentLibrary   Intent = "LIBRARY"
	IntentFaculty   Intent = "FACULTY"
	IntentUnknown   Intent = "UNKNOWN"
)

// KeywordSet is an ordered set of lowercase substrings that signal an Intent.
type KeywordSet struct {
	Intent   Intent
	Keywords []string
}
