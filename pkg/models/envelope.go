package models

import "encoding/json"

// Envelope is the uniform response wrapper returned by every SARV endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Decode unmarshals the data payload into v. A null or absent payload
// leaves v untouched.
func (e *Envelope) Decode(v any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// ErrorOr returns the server-provided error message, or fallback when the
// server sent none.
func (e *Envelope) ErrorOr(fallback string) string {
	if e.Error != "" {
		return e.Error
	}
	return fallback
}
