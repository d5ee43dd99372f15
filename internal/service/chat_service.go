package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "sehat-ai/backend/internal/errors"
	"sehat-ai/backend/internal/llm"
	"sehat-ai/backend/internal/model"
	"sehat-ai/backend/internal/resources"
)

// requestState enumerates the lifecycle of one inbound request. The original
// control flow branched ad hoc on the presence of coordinates; making the
// states explicit keeps the failure and terminal states enumerable.
type requestState string

const (
	stateReceived    requestState = "received"
	stateMerged      requestState = "merged"
	stateClassifying requestState = "classifying"
	stateResolved    requestState = "resolved"
	stateStreaming   requestState = "streaming"
	stateDone        requestState = "done"
	stateFailed      requestState = "failed"
)

// resourcePreamble is the fixed human-readable content of a resource reply.
const resourcePreamble = "Based on your location, here are some healthcare resources that may help:"

// ChatService orchestrates one /respond request: merge the user turn into
// history, then either stream a completion back or answer a location-aware
// resource query. It holds no per-request state; all dependencies are
// injected once at startup and shared read-only.
type ChatService struct {
	provider     llm.CompletionProvider
	classifier   *Classifier
	resolver     *resources.Resolver
	defaultModel string
}

func NewChatService(provider llm.CompletionProvider, classifier *Classifier, resolver *resources.Resolver, defaultModel string) *ChatService {
	return &ChatService{
		provider:     provider,
		classifier:   classifier,
		resolver:     resolver,
		defaultModel: defaultModel,
	}
}

// RespondWithResources handles the location path: classify the conversation,
// look up the matching resources, and wrap them in a single reply.
//
// A hard classifier failure propagates as ErrProvider: with no routing
// decision available the caller must see an explicit failure, not a silent
// fallback. Malformed-but-present classifier output never reaches this
// function as an error; the classifier already degraded it to "all".
func (s *ChatService) RespondWithResources(ctx context.Context, req *model.RespondRequest) (*model.ResourceReply, error) {
	state := stateReceived
	history := MergeUserTurn(req.ThreadMessages, req.Message)
	advance(&state, stateMerged)

	advance(&state, stateClassifying)
	classification, err := s.classifier.Classify(ctx, history)
	if err != nil {
		advance(&state, stateFailed)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
	}

	bundle := s.resolver.Resolve(classification.ResourceType, classification.Specialization)
	advance(&state, stateResolved)

	reply := &model.ResourceReply{
		ID:        uuid.NewString(),
		Content:   resourcePreamble,
		IsUser:    false,
		Timestamp: time.Now(),
		Resources: bundle,
		Analysis:  classification,
	}
	advance(&state, stateDone)
	return reply, nil
}

// StreamReply handles the conversational path. It re-emits upstream fragments
// as frames on out, in receipt order, closing the channel when the stream is
// exhausted. Failures are delivered in-band: an error frame followed by the
// terminal sentinel. The HTTP layer decides whether an error frame becomes a
// plain 500 (nothing sent yet) or a wire frame (stream already under way).
func (s *ChatService) StreamReply(ctx context.Context, req *model.RespondRequest, out chan<- model.StreamFrame) {
	defer close(out)

	state := stateReceived
	history := MergeUserTurn(req.ThreadMessages, req.Message)
	advance(&state, stateMerged)

	advance(&state, stateStreaming)
	upstream := make(chan llm.StreamResponse)
	go func() {
		if err := s.provider.CompleteStream(ctx, s.buildChatRequest(history, req), upstream); err != nil {
			slog.Error("Streaming completion ended with error", "error", err)
		}
	}()

	for event := range upstream {
		switch {
		case event.Error != "":
			advance(&state, stateFailed)
			send(ctx, out, model.StreamFrame{Err: event.Error})
			send(ctx, out, model.StreamFrame{Done: true})
			return
		case event.Done:
			advance(&state, stateDone)
			send(ctx, out, model.StreamFrame{Done: true})
			return
		default:
			if !send(ctx, out, model.StreamFrame{Chunk: event.Content}) {
				// Caller disconnected; ctx cancellation aborts the
				// upstream stream as well.
				advance(&state, stateFailed)
				return
			}
		}
	}
}

// buildChatRequest formats the working history into role-tagged turns and
// applies the documented parameter defaults.
func (s *ChatService) buildChatRequest(history []model.Message, req *model.RespondRequest) *llm.ChatRequest {
	params := req.Parameters
	if params == nil {
		params = &model.GenerationParameters{}
	}

	messages := make([]llm.Message, 0, len(history)+1)
	if params.SystemPrompt != "" {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: params.SystemPrompt})
	}
	for _, msg := range history {
		role := llm.RoleAssistant
		if msg.IsUser {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: msg.Content})
	}

	// Resolved knobs are always transmitted, a deliberate zero included.
	temperature := float64(model.DefaultTemperature)
	maxTokens := model.DefaultMaxTokens
	topP := float64(model.DefaultTopP)
	if params.Temperature != nil {
		temperature = *params.Temperature
	}
	if params.MaxTokens != nil {
		maxTokens = *params.MaxTokens
	}
	if params.TopP != nil {
		topP = *params.TopP
	}

	chatReq := &llm.ChatRequest{
		Model:       req.SelectedModel,
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		TopP:        &topP,
	}
	if chatReq.Model == "" {
		chatReq.Model = s.defaultModel
	}
	return chatReq
}

func advance(state *requestState, to requestState) {
	slog.Debug("Request state transition", "from", string(*state), "to", string(to))
	*state = to
}

// send delivers one frame unless the consumer's context is already gone.
func send(ctx context.Context, out chan<- model.StreamFrame, frame model.StreamFrame) bool {
	select {
	case out <- frame:
		return true
	case <-ctx.Done():
		return false
	}
}
