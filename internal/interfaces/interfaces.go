package interfaces

import (
	"context"

	"sehat-ai/backend/internal/model"
)

// This file defines the interfaces the API layer consumes. Depending on
// interfaces instead of concrete services keeps the handlers decoupled and
// lets the tests substitute generated mocks.

// ChatService is the contract of the request orchestrator.
type ChatService interface {
	// RespondWithResources answers a location-aware request with a single
	// JSON-able reply. It is synchronous; any error means the request
	// failed before output was committed.
	RespondWithResources(ctx context.Context, req *model.RespondRequest) (*model.ResourceReply, error)

	// StreamReply answers a conversational request by emitting frames on
	// out in upstream order, closing the channel when done. Failures
	// arrive in-band as error frames.
	StreamReply(ctx context.Context, req *model.RespondRequest, out chan<- model.StreamFrame)
}
