// Package conversation owns the chat history, the draft and the loading flag,
// and reconciles backend replies into the history.
//
// A submission is split in three steps so a UI event loop can run the network
// call off its own goroutine:
//
//	turn, ok := c.Begin(ctx, draft) // synchronous: user entry appended, draft cleared
//	reply := c.Exchange(turn)       // blocking network call, never fails
//	c.Settle(turn.Generation, reply)
//
// Submit performs all three in sequence.
package conversation

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/kouper/carechat/client"
	"github.com/kouper/carechat/logger"
)

// FallbackReply is appended in place of an assistant reply when a chat call fails.
const FallbackReply = "Sorry, an error occurred."

// Fallback returns the assistant entry used when a chat call fails.
func Fallback() client.Message {
	return client.Message{Role: client.RoleAssistant, Content: FallbackReply}
}

// Backend is the remote chat service.
type Backend interface {
	Chat(ctx context.Context, prompt string) (*client.Message, error)
	Reset(ctx context.Context) error
}

// Turn is one in-flight submission.
type Turn struct {
	ID         string
	Prompt     string
	Generation uint64

	ctx context.Context
}

// Controller is safe for concurrent use.
type Controller struct {
	backend Backend

	mu         sync.Mutex
	history    []client.Message
	draft      string
	loading    bool
	generation uint64
	cancel     context.CancelFunc
}

// New returns an idle Controller with empty history.
func New(b Backend) *Controller {
	return &Controller{backend: b}
}

// SetDraft records the text currently being composed.
func (c *Controller) SetDraft(text string) {
	c.mu.Lock()
	c.draft = text
	c.mu.Unlock()
}

// Draft returns the text currently being composed.
func (c *Controller) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Loading reports whether a submission is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// State returns StateSubmitting while a submission is in flight.
func (c *Controller) State() State {
	if c.Loading() {
		return StateSubmitting
	}
	return StateIdle
}

// History returns a copy of the conversation in display order.
func (c *Controller) History() []client.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]client.Message, len(c.history))
	copy(out, c.history)
	return out
}

// Len returns the number of history entries.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history)
}

// Begin starts a turn for text. It is a no-op returning false when text is
// blank or another turn is still in flight. Otherwise the user entry is
// appended, the draft cleared and the loading flag set before it returns.
func (c *Controller) Begin(ctx context.Context, text string) (Turn, bool) {
	if strings.TrimSpace(text) == "" {
		return Turn{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading {
		return Turn{}, false
	}

	c.history = append(c.history, client.Message{Role: client.RoleUser, Content: text})
	c.draft = ""
	c.loading = true

	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	t := Turn{
		ID:         uuid.NewString(),
		Prompt:     text,
		Generation: c.generation,
		ctx:        reqCtx,
	}
	logger.Debug("turn started", "turn", t.ID, "generation", t.Generation)
	return t, true
}

// Exchange sends the turn's prompt to the backend and returns the reply, or
// the fallback entry on any failure.
func (c *Controller) Exchange(t Turn) client.Message {
	ctx := t.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	reply, err := c.backend.Chat(ctx, t.Prompt)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Debug("chat request abandoned", "turn", t.ID)
		return Fallback()
	case err != nil:
		logger.Error("chat request failed", "turn", t.ID, "err", err)
		return Fallback()
	case reply == nil:
		logger.Error("chat request returned no message", "turn", t.ID)
		return Fallback()
	}
	return *reply
}

// Settle appends reply and clears the loading flag if generation is still
// current. Replies from before the last reset are dropped and false is
// returned.
func (c *Controller) Settle(generation uint64, reply client.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		logger.Debug("stale reply discarded", "generation", generation, "current", c.generation)
		return false
	}
	c.history = append(c.history, reply)
	c.loading = false
	c.releaseLocked()
	return true
}

// Submit runs a whole turn and blocks until it settles. It returns false when
// the submission was skipped.
func (c *Controller) Submit(ctx context.Context, text string) bool {
	t, ok := c.Begin(ctx, text)
	if !ok {
		return false
	}
	c.Settle(t.Generation, c.Exchange(t))
	return true
}

// Reset asks the backend to start over. On success the history is cleared and
// any in-flight turn is abandoned. On failure the error is logged, the history is
// left untouched and the error returned.
func (c *Controller) Reset(ctx context.Context) error {
	if err := c.backend.Reset(ctx); err != nil {
		logger.Error("reset failed", "err", err)
		return errors.Wrap(err, "reset conversation")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
	c.generation++
	c.loading = false
	c.releaseLocked()
	logger.Info("conversation reset", "generation", c.generation)
	return nil
}

// releaseLocked cancels the request context of the current turn. c.mu must be held.
func (c *Controller) releaseLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
