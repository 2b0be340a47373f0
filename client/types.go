package client

import "fmt"

// Role identifies who authored a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation entry as exchanged with POST /chat.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ResetResponse from POST /reset. Only logged.
type ResetResponse struct {
	Message string `json:"message"`
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: HTTP %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Path, e.StatusCode, e.Body)
}
