package announcement

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedBody = errors.New("invalid JSON in request body")

// Announcement is a single published message. A nil Message is an announcement
// published without one and renders as JSON null.
type Announcement struct {
	Message *string
}

func (a Announcement) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Message)
}

func (a *Announcement) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &a.Message)
}

type PublishRequest struct {
	Message *string `json:"message"`
}

// DecodePublish accepts any JSON object; a missing message is not an error.
func DecodePublish(body []byte) (PublishRequest, error) {
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || trimmed[0] != '{' {
		return PublishRequest{}, fmt.Errorf("%w: body must be a JSON object", ErrMalformedBody)
	}

	var req PublishRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return PublishRequest{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return req, nil
}

func FromRequest(req PublishRequest) Announcement {
	return Announcement{Message: req.Message}
}
