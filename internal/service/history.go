package service

import (
	"time"

	"github.com/google/uuid"

	"sehat-ai/backend/internal/model"
)

// MergeUserTurn returns history with rawText appended as a fresh user turn,
// unless an identical user turn is already present, in which case history is
// returned unchanged. Equality is byte-exact on content: no trimming, no case
// folding. A whitespace-variant resubmission is treated as a new turn;
// suppressing near-duplicates is out of scope.
//
// The function is pure: the input slice is never mutated, and prior elements
// keep their order.
func MergeUserTurn(history []model.Message, rawText string) []model.Message {
	for _, msg := range history {
		if msg.IsUser && msg.Content == rawText {
			return history
		}
	}

	candidate := model.Message{
		ID:        uuid.NewString(),
		Content:   rawText,
		IsUser:    true,
		Timestamp: time.Now(),
	}

	merged := make([]model.Message, 0, len(history)+1)
	merged = append(merged, history...)
	return append(merged, candidate)
}
