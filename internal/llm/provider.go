package llm

import "context"

// Chat roles understood by the completion provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged turn of the transcript sent upstream.
type Message struct {
	Role    string
	Content string
}

// ChatRequest is a fully-resolved completion request. Callers apply their own
// defaults before handing it over. The knobs are pointers so presence is
// explicit: a nil knob is not sent upstream, while a non-nil value always is,
// including a deliberate zero.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature *float64
	MaxTokens   *int
	TopP        *float64
}

// StreamResponse is one event of a streaming completion. Content carries an
// incremental fragment; Error carries a mid-stream failure; Done marks clean
// exhaustion and is always the final event of a healthy stream.
type StreamResponse struct {
	Content string
	Done    bool
	Error   string
}

// CompletionProvider is the interface to the upstream text-generation
// service. Both methods make exactly one attempt; retrying is the caller's
// decision (and currently nobody's).
type CompletionProvider interface {
	// Complete issues a single non-streaming request and returns the full
	// generated text.
	Complete(ctx context.Context, req *ChatRequest) (string, error)

	// CompleteStream issues a streaming request and emits events on ch in
	// upstream order. It closes ch before returning. Sends are abandoned
	// when ctx is cancelled, so a consumer that stops reading must cancel.
	CompleteStream(ctx context.Context, req *ChatRequest, ch chan<- StreamResponse) error
}
