// Package httputil holds small helpers shared by the HTTP clients.
package httputil

import (
	"encoding/json"
	"strings"
)

// errorBody covers the rejection shapes the backend and the identity
// provider use. FastAPI puts messages under "detail"; GoTrue uses "msg" or
// "error_description".
type errorBody struct {
	Detail           string `json:"detail"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

// ExtractMessage pulls the best human-readable message out of an error
// response body. Returns "" when the body carries nothing usable.
func ExtractMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, m := range []string{parsed.Detail, parsed.Msg, parsed.ErrorDescription} {
			if m != "" {
				return m
			}
		}
		return ""
	}
	return strings.TrimSpace(string(body))
}
