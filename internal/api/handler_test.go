// The `_test` suffix creates a "black box" test package: only the api
// package's exported identifiers are visible, which is how consumers see it.
package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sehat-ai/backend/internal/api"
	"sehat-ai/backend/internal/interfaces/mocks"
	"sehat-ai/backend/internal/model"
)

func setupRespondHandler(t *testing.T) (*api.RespondHandler, *mocks.MockChatService) {
	mockSvc := mocks.NewMockChatService(t)
	handler := api.NewRespondHandler(mockSvc)
	return handler, mockSvc
}

func postRespond(body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/respond", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func TestRespondHandler_InputErrors(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		handler, _ := setupRespondHandler(t)
		req, rr := postRespond(`{"message":`)

		handler.HandleRespond(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid request payload")
	})

	t.Run("empty message rejected before any provider call", func(t *testing.T) {
		handler, _ := setupRespondHandler(t)
		req, rr := postRespond(`{"message":""}`)

		handler.HandleRespond(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'Message' failed on the 'required' tag")
	})

	t.Run("out-of-range temperature", func(t *testing.T) {
		handler, _ := setupRespondHandler(t)
		req, rr := postRespond(`{"message":"hi","parameters":{"temperature":3.5}}`)

		handler.HandleRespond(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Temperature")
	})
}

func TestRespondHandler_StreamingPath(t *testing.T) {
	t.Run("chunks then sentinel", func(t *testing.T) {
		handler, mockSvc := setupRespondHandler(t)
		mockSvc.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(2).(chan<- model.StreamFrame)
				out <- model.StreamFrame{Chunk: "Hello"}
				out <- model.StreamFrame{Chunk: " there"}
				out <- model.StreamFrame{Done: true}
				close(out)
			}).Once()

		req, rr := postRespond(`{"message":"hi","threadMessages":[]}`)
		handler.HandleRespond(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
		expected := "data: {\"chunk\":\"Hello\"}\n\n" +
			"data: {\"chunk\":\" there\"}\n\n" +
			"data: [DONE]\n\n"
		assert.Equal(t, expected, rr.Body.String())
	})

	t.Run("pre-stream failure becomes a plain 500", func(t *testing.T) {
		handler, mockSvc := setupRespondHandler(t)
		mockSvc.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(2).(chan<- model.StreamFrame)
				out <- model.StreamFrame{Err: "connection refused"}
				out <- model.StreamFrame{Done: true}
				close(out)
			}).Once()

		req, rr := postRespond(`{"message":"hi"}`)
		handler.HandleRespond(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "connection refused", body.Error)
		// No SSE frames may follow the JSON error body.
		assert.NotContains(t, rr.Body.String(), "[DONE]")
	})

	t.Run("mid-stream failure becomes an in-band frame", func(t *testing.T) {
		handler, mockSvc := setupRespondHandler(t)
		mockSvc.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(2).(chan<- model.StreamFrame)
				out <- model.StreamFrame{Chunk: "partial"}
				out <- model.StreamFrame{Err: "upstream reset"}
				out <- model.StreamFrame{Done: true}
				close(out)
			}).Once()

		req, rr := postRespond(`{"message":"hi"}`)
		handler.HandleRespond(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		expected := "data: {\"chunk\":\"partial\"}\n\n" +
			"data: {\"error\":\"upstream reset\"}\n\n" +
			"data: [DONE]\n\n"
		assert.Equal(t, expected, rr.Body.String())
	})
}

func TestRespondHandler_LocationPath(t *testing.T) {
	body := `{"message":"I have chest pain","latitude":19.07,"longitude":72.87}`

	t.Run("success returns a single JSON reply", func(t *testing.T) {
		handler, mockSvc := setupRespondHandler(t)
		reply := &model.ResourceReply{
			ID:      "reply-1",
			Content: "resources nearby",
			Resources: model.ResourceBundle{
				Doctors: []model.Doctor{{Name: "Dr. Anil Sharma", Specialization: "Cardiologist"}},
			},
			Analysis: model.Classification{ResourceType: model.ResourceDoctors, Specialization: "cardio"},
		}
		mockSvc.On("RespondWithResources", mock.Anything, mock.MatchedBy(func(r *model.RespondRequest) bool {
			return r.HasLocation() && *r.Latitude == 19.07
		})).Return(reply, nil).Once()

		req, rr := postRespond(body)
		handler.HandleRespond(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var got model.ResourceReply
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "reply-1", got.ID)
		assert.Equal(t, "cardio", got.Analysis.Specialization)
	})

	t.Run("failure returns the generic message", func(t *testing.T) {
		handler, mockSvc := setupRespondHandler(t)
		mockSvc.On("RespondWithResources", mock.Anything, mock.Anything).
			Return(nil, assert.AnError).Once()

		req, rr := postRespond(body)
		handler.HandleRespond(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to process location-based request")
		// The internal error must not leak.
		assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
	})

	t.Run("a single coordinate is not a location", func(t *testing.T) {
		handler, mockSvc := setupRespondHandler(t)
		mockSvc.On("StreamReply", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(2).(chan<- model.StreamFrame)
				out <- model.StreamFrame{Done: true}
				close(out)
			}).Once()

		req, rr := postRespond(`{"message":"hi","latitude":19.07}`)
		handler.HandleRespond(rr, req)

		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	})
}
