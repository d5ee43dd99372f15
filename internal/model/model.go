package model

import "time"

// Message is a single conversational turn. The JSON field names match the
// contract the mobile client already speaks.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// GenerationParameters are the caller-tunable knobs for a completion request.
// Pointer fields distinguish "absent" from "zero" so defaults only apply when
// the client really omitted a value.
type GenerationParameters struct {
	Temperature  *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	MaxTokens    *int     `json:"maxTokens,omitempty" validate:"omitempty,gt=0"`
	TopP         *float64 `json:"topP,omitempty" validate:"omitempty,gte=0,lte=1"`
	SystemPrompt string   `json:"system_prompt,omitempty"`
}

// Defaults applied by the completion path when the corresponding parameter is
// absent from the request.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
	DefaultTopP        = 0.9
)

// RespondRequest is the body of POST /respond. Latitude and Longitude are
// pointers because their mere presence (not their value) selects the
// location-aware resource path.
type RespondRequest struct {
	Message        string                `json:"message" validate:"required"`
	SelectedModel  string                `json:"selectedModel,omitempty"`
	ThreadMessages []Message             `json:"threadMessages,omitempty"`
	Parameters     *GenerationParameters `json:"parameters,omitempty"`
	Latitude       *float64              `json:"latitude,omitempty"`
	Longitude      *float64              `json:"longitude,omitempty"`
}

// HasLocation reports whether the caller supplied both coordinates.
func (r *RespondRequest) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Resource types a classified request can ask for.
const (
	ResourceDoctors   = "doctors"
	ResourceMedicines = "medicines"
	ResourceChemists  = "chemists"
	ResourceHospitals = "hospitals"
	ResourceAll       = "all"
)

// Classification is the typed outcome of the structured-extraction call.
// Urgency is advisory: it is echoed back to the caller but never changes
// routing.
type Classification struct {
	ResourceType   string `json:"resourceType"`
	Specialization string `json:"specialization,omitempty"`
	Urgency        string `json:"urgency,omitempty"`
	Condition      string `json:"condition,omitempty"`
}

// DefaultClassification is the degraded result used whenever the extraction
// call returns something unusable. It must never abort the request.
func DefaultClassification() Classification {
	return Classification{ResourceType: ResourceAll}
}

// Doctor is one entry of the doctors category.
type Doctor struct {
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Distance       float64 `json:"distance"`
	Address        string  `json:"address"`
	Rating         float64 `json:"rating"`
	Available      bool    `json:"available"`
	Phone          string  `json:"phone"`
}

// Chemist is one entry of the chemists/pharmacies category.
type Chemist struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"`
	OpenNow  bool    `json:"openNow"`
	Phone    string  `json:"phone"`
}

// Medicine is one entry of the medicines category.
type Medicine struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	AvailableAt  []string `json:"availableAt"`
	Price        string   `json:"price"`
	Prescription bool     `json:"prescription"`
}

// Hospital is one entry of the hospitals category.
type Hospital struct {
	Name      string  `json:"name"`
	Distance  float64 `json:"distance"`
	Address   string  `json:"address"`
	Rating    float64 `json:"rating"`
	Emergency bool    `json:"emergency"`
	Phone     string  `json:"phone"`
}

// ResourceBundle carries the looked-up healthcare resources. Only the
// requested categories are present; a request for "all" fills every field.
type ResourceBundle struct {
	Doctors   []Doctor   `json:"doctors,omitempty"`
	Chemists  []Chemist  `json:"chemists,omitempty"`
	Medicines []Medicine `json:"medicines,omitempty"`
	Hospitals []Hospital `json:"hospitals,omitempty"`
}

// ResourceReply is the single non-streaming response body of the location
// path. It mirrors the Message shape so the client can render it as an
// assistant turn, with the structured results attached.
type ResourceReply struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	IsUser    bool           `json:"isUser"`
	Timestamp time.Time      `json:"timestamp"`
	Resources ResourceBundle `json:"resources"`
	Analysis  Classification `json:"analysis"`
}

// StreamFrame is the unit passed from the chat service to the HTTP layer for
// one SSE frame. Exactly one of Chunk or Err is set; Done marks the terminal
// sentinel and is always the last frame on a stream.
type StreamFrame struct {
	Chunk string `json:"chunk,omitempty"`
	Err   string `json:"error,omitempty"`
	Done  bool   `json:"-"`
}
