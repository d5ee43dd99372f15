package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// doneSentinel is the reserved terminal frame: after it, no further frames
// are ever sent on the stream.
const doneSentinel = "[DONE]"

// FrameWriter owns the SSE wire framing for the streaming response path:
// headers, `data: {...}` frames and the terminal sentinel. Headers are
// written lazily with the first frame, so a request that fails before any
// frame can still fall back to a plain JSON error response. The caller
// checks Started() to tell the two situations apart.
type FrameWriter struct {
	w       http.ResponseWriter
	started bool
}

func NewFrameWriter(w http.ResponseWriter) *FrameWriter {
	return &FrameWriter{w: w}
}

// Started reports whether anything has been committed to the wire yet.
func (f *FrameWriter) Started() bool {
	return f.started
}

// chunkPayload is the body of one content frame.
type chunkPayload struct {
	Chunk string `json:"chunk"`
}

// WriteChunk emits one content frame: `data: {"chunk":"..."}`.
func (f *FrameWriter) WriteChunk(text string) error {
	return f.writeJSON(chunkPayload{Chunk: text})
}

// WriteError emits one in-band error frame: `data: {"error":"..."}`.
func (f *FrameWriter) WriteError(message string) error {
	return f.writeJSON(ErrorResponse{Error: message})
}

// WriteDone emits the terminal sentinel and flushes. The connection is done
// after this; nothing may be written to the stream afterwards.
func (f *FrameWriter) WriteDone() error {
	f.ensureHeaders()
	if _, err := fmt.Fprintf(f.w, "data: %s\n\n", doneSentinel); err != nil {
		return fmt.Errorf("failed to write terminal frame: %w", err)
	}
	f.flush()
	return nil
}

func (f *FrameWriter) writeJSON(payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		// The stream is still healthy; the problem is this payload alone.
		slog.Error("Failed to marshal stream frame", "error", err)
		return nil
	}

	f.ensureHeaders()
	if _, err := fmt.Fprintf(f.w, "data: %s\n\n", jsonData); err != nil {
		// A write failure is a strong indicator of a closed connection.
		return fmt.Errorf("failed to write frame: %w", err)
	}
	f.flush()
	return nil
}

func (f *FrameWriter) ensureHeaders() {
	if f.started {
		return
	}
	f.w.Header().Set("Content-Type", "text/event-stream")
	f.w.Header().Set("Cache-Control", "no-cache")
	f.w.Header().Set("Connection", "keep-alive")
	f.started = true
}

func (f *FrameWriter) flush() {
	if flusher, ok := f.w.(http.Flusher); ok {
		flusher.Flush()
	}
}
