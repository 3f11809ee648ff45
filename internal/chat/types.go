package chat

import "campus-assistant/internal/router"

// ProcessInput carries one user utterance. It is not retained after the
// reply is produced; there is no conversation history.
type ProcessInput struct {
	Message string
}

// ProcessOutput is the router's answer to one utterance.
type ProcessOutput struct {
	Reply   string
	Intent  router.Intent
	Success bool
}

// QueryResult is the outcome of a single domain handler call: either a
// formatted answer or a user-facing explanation of why there is none.
type QueryResult struct {
	Success bool
	Text    string
}

// Answered builds a successful QueryResult.
func Answered(text string) QueryResult {
	return QueryResult{Success: true, Text: text}
}

// Unanswered builds a QueryResult whose text explains the miss (empty data,
// unreachable endpoint, missing name).
func Unanswered(text string) QueryResult {
	return QueryResult{Success: false, Text: text}
}
