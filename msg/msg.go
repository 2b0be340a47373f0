// Package msg defines the tea.Msg types dispatched within the chat TUI.
// It has no upstream imports (client, conversation) so any package may use it.
package msg

// ChatResult carries the settled reply of one turn (a real reply or the
// fallback entry) back into the update loop.
type ChatResult struct {
	TurnID     string
	Generation uint64
	Role       string
	Content    string
}

// ResetResult from POST /reset. A nil Err means history was cleared.
type ResetResult struct {
	Err error
}
