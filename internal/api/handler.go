package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "sehat-ai/backend/internal/errors"
	"sehat-ai/backend/internal/interfaces"
	"sehat-ai/backend/internal/model"
)

// RespondHandler serves the /respond endpoint, the single entry point of the
// chat pipeline.
type RespondHandler struct {
	service interfaces.ChatService
}

func NewRespondHandler(svc interfaces.ChatService) *RespondHandler {
	return &RespondHandler{service: svc}
}

// HandleRespond godoc
// @Summary      Respond to a user message
// @Description  Streams an assistant reply over SSE, or returns a single JSON object with nearby healthcare resources when latitude/longitude are supplied.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Produce      text/event-stream
// @Param        request  body  model.RespondRequest  true  "User turn, history and options"
// @Success      200  {object}  model.ResourceReply  "Location path response; conversational path streams chunk frames terminated by [DONE]"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /respond [post]
func (h *RespondHandler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	var req model.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	// Reject bad input before any provider call is made.
	if err := validateRequest(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), err)
		return
	}

	if req.HasLocation() {
		h.respondWithResources(w, r, &req)
		return
	}

	h.streamReply(w, r, &req)
}

// respondWithResources handles the location path: one synchronous JSON reply.
func (h *RespondHandler) respondWithResources(w http.ResponseWriter, r *http.Request, req *model.RespondRequest) {
	reply, err := h.service.RespondWithResources(r.Context(), req)
	if err != nil {
		if errors.Is(err, app_errors.ErrProvider) {
			// A hard provider failure is reported with its message: no
			// routing decision could be made at all.
			respondWithError(w, http.StatusInternalServerError, err.Error(), err)
			return
		}
		// Anything else gets the deliberately generic message.
		respondWithError(w, http.StatusInternalServerError, "Failed to process location-based request",
			fmt.Errorf("%w: %v", app_errors.ErrResource, err))
		return
	}
	respondWithJSON(w, http.StatusOK, reply)
}

// streamReply handles the conversational path. Frames arrive from the
// service in upstream order; the FrameWriter's lazy headers let a failure
// that precedes all output fall back to a plain 500 JSON body instead of a
// half-open event stream.
func (h *RespondHandler) streamReply(w http.ResponseWriter, r *http.Request, req *model.RespondRequest) {
	frames := make(chan model.StreamFrame)
	go h.service.StreamReply(r.Context(), req, frames)

	fw := NewFrameWriter(w)
	failed := false

	for frame := range frames {
		if r.Context().Err() != nil {
			slog.Info("Client disconnected during stream")
			break
		}
		if failed {
			// A plain 500 was already sent; nothing more may reach the wire.
			continue
		}

		switch {
		case frame.Err != "":
			if !fw.Started() {
				respondWithError(w, http.StatusInternalServerError, frame.Err, errors.New(frame.Err))
				failed = true
				continue
			}
			if err := fw.WriteError(frame.Err); err != nil {
				slog.Warn("Could not write error frame, client likely disconnected", "error", err)
			}
		case frame.Done:
			if err := fw.WriteDone(); err != nil {
				slog.Warn("Could not write terminal frame, client likely disconnected", "error", err)
			}
		default:
			if err := fw.WriteChunk(frame.Chunk); err != nil {
				slog.Warn("Could not write chunk frame, client likely disconnected", "error", err)
			}
		}
	}
}
