package api

import "encoding/json"

// envelope is the backend's uniform response wrapper.
type envelope[T any] struct {
	Success bool            `json:"success"`
	Data    T               `json:"data"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// errText prefers the human message, falling back to the raw error field.
func (e envelope[T]) errText() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Error) > 0 {
		var s string
		if json.Unmarshal(e.Error, &s) == nil {
			return s
		}
		return string(e.Error)
	}
	return "request failed"
}
