package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type openAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider builds a CompletionProvider backed by the OpenAI
// chat-completions API. baseURL may be empty for the public endpoint; tests
// point it at a local httptest server. The timeout bounds every upstream
// call, streaming included.
func NewOpenAIProvider(apiKey, baseURL string, timeout time.Duration) CompletionProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openAIProvider{client: openai.NewClient(opts...)}
}

func (p *openAIProvider) Complete(ctx context.Context, req *ChatRequest) (string, error) {
	params, err := buildChatParams(req)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *openAIProvider) CompleteStream(ctx context.Context, req *ChatRequest, ch chan<- StreamResponse) error {
	defer close(ch)

	params, err := buildChatParams(req)
	if err != nil {
		emit(ctx, ch, StreamResponse{Error: err.Error()})
		return err
	}

	stream := p.client.Chat.Completions.NewStreaming(ctx, params)
	defer func() {
		_ = stream.Close()
	}()

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			// Metadata-only event, nothing to forward.
			continue
		}
		content := chunk.Choices[0].Delta.Content
		if content == "" {
			continue
		}
		if !emit(ctx, ch, StreamResponse{Content: content}) {
			return ctx.Err()
		}
	}

	if err := stream.Err(); err != nil {
		emit(ctx, ch, StreamResponse{Error: err.Error()})
		return fmt.Errorf("streaming completion failed: %w", err)
	}

	emit(ctx, ch, StreamResponse{Done: true})
	return nil
}

// emit sends one event unless the consumer is already gone.
func emit(ctx context.Context, ch chan<- StreamResponse, resp StreamResponse) bool {
	select {
	case ch <- resp:
		return true
	case <-ctx.Done():
		return false
	}
}

func buildChatParams(req *ChatRequest) (openai.ChatCompletionNewParams, error) {
	if req.Model == "" {
		return openai.ChatCompletionNewParams{}, fmt.Errorf("model is required")
	}
	if len(req.Messages) == 0 {
		return openai.ChatCompletionNewParams{}, fmt.Errorf("messages are required")
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		case RoleUser:
			messages = append(messages, openai.UserMessage(msg.Content))
		default:
			return openai.ChatCompletionNewParams{}, fmt.Errorf("unknown message role %q", msg.Role)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxTokens = openai.Int(int64(*req.MaxTokens))
	}
	if req.TopP != nil {
		params.TopP = openai.Float(*req.TopP)
	}
	return params, nil
}
