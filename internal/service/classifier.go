package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"sehat-ai/backend/internal/llm"
	"sehat-ai/backend/internal/model"
)

// classifierSystemPrompt instructs the model to answer with nothing but the
// JSON object we can parse. Low temperature and a small token ceiling bias
// the call toward schema-conformant output.
const classifierSystemPrompt = `You are a healthcare request classifier. Analyze the conversation and respond ONLY with a JSON object, no other text. The object must have these fields:
- "resourceType": one of "doctors", "medicines", "chemists", "hospitals", "all"
- "specialization": the doctor specialization being asked for, or "any"
- "urgency": one of "high", "medium", "low"
- "condition": a short summary of the health condition described`

const (
	classifierTemperature = 0.1
	classifierMaxTokens   = 200
)

// Classifier decides whether a located request is asking for a specific kind
// of healthcare resource, using one auxiliary structured-extraction call.
type Classifier struct {
	provider llm.CompletionProvider
	model    string
}

func NewClassifier(provider llm.CompletionProvider, model string) *Classifier {
	return &Classifier{provider: provider, model: model}
}

// Classify runs the extraction call over the conversation and parses its
// reply. Two very different failure modes, by contract:
//
//   - The call succeeded but the reply is not usable JSON: degrade silently
//     to the catch-all classification. The caller still gets resources.
//   - The call itself failed (network, provider outage): return the error.
//     No routing decision could be made at all, and the orchestrator must
//     report that as a request-level failure.
func (c *Classifier) Classify(ctx context.Context, history []model.Message) (model.Classification, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: classifierSystemPrompt})
	for _, msg := range history {
		role := llm.RoleAssistant
		if msg.IsUser {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: msg.Content})
	}

	temperature := float64(classifierTemperature)
	maxTokens := classifierMaxTokens
	reply, err := c.provider.Complete(ctx, &llm.ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return model.Classification{}, fmt.Errorf("classification call failed: %w", err)
	}

	return parseClassification(reply), nil
}

// parseClassification turns the model's reply into a Classification,
// tolerating the code fences chat models like to wrap JSON in. Anything it
// cannot make sense of becomes the default catch-all result.
func parseClassification(reply string) model.Classification {
	text := strings.TrimSpace(reply)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var result model.Classification
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		slog.Warn("Classifier returned malformed JSON, defaulting to all resources", "error", err)
		return model.DefaultClassification()
	}

	switch result.ResourceType {
	case model.ResourceDoctors, model.ResourceMedicines, model.ResourceChemists, model.ResourceHospitals, model.ResourceAll:
	default:
		slog.Warn("Classifier returned unknown resource type, defaulting to all resources", "resource_type", result.ResourceType)
		defaulted := model.DefaultClassification()
		// Keep the advisory fields the model did manage to produce.
		defaulted.Urgency = result.Urgency
		defaulted.Condition = result.Condition
		return defaulted
	}

	return result
}
