package models

// IdentifyRequest is the POST /v1/identify payload.
type IdentifyRequest struct {
	MessageID   string         `json:"messageId,omitempty"`
	UserID      string         `json:"userId,omitempty"`
	AnonymousID string         `json:"anonymousId,omitempty"`
	Traits      map[string]any `json:"traits,omitempty"`
}

// TrackRequest is the POST /v1/track payload.
type TrackRequest struct {
	MessageID   string         `json:"messageId,omitempty"`
	Event       string         `json:"event"`
	UserID      string         `json:"userId,omitempty"`
	AnonymousID string         `json:"anonymousId,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// ScreenRequest is the POST /v1/screen payload.
type ScreenRequest struct {
	MessageID   string         `json:"messageId,omitempty"`
	Name        string         `json:"name"`
	Category    string         `json:"category,omitempty"`
	UserID      string         `json:"userId,omitempty"`
	AnonymousID string         `json:"anonymousId,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// MessageResponse is returned for every accepted message. Dropped is set
// when the integration ignored the message (for example an empty name).
type MessageResponse struct {
	MessageID string `json:"messageId"`
	Dropped   bool   `json:"dropped,omitempty"`
}
