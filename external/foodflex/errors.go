package foodflex

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrSessionExpired means the access token expired and the one permitted
// refresh attempt failed too. The token source has already been cleared.
var ErrSessionExpired = errors.New("session expired")

// APIError carries a server rejection verbatim: either a single message
// ({"error": ...}) or a field-keyed validation map from the serializer.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports a 404-class rejection, which cart removal treats as
// already done.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil || len(body) == 0 {
		apiErr.Message = fallbackMessage(status, raw)
		return apiErr
	}

	for _, key := range []string{"error", "detail", "message"} {
		var msg string
		if rm, ok := body[key]; ok && json.Unmarshal(rm, &msg) == nil && msg != "" {
			apiErr.Message = msg
			return apiErr
		}
	}

	// Field-keyed serializer errors: values are either a string or a list.
	fields := make(map[string][]string)
	for key, rm := range body {
		var list []string
		if json.Unmarshal(rm, &list) == nil {
			fields[key] = list
			continue
		}
		var single string
		if json.Unmarshal(rm, &single) == nil {
			fields[key] = []string{single}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
		apiErr.Message = joinFieldErrors(fields)
		return apiErr
	}

	apiErr.Message = fallbackMessage(status, raw)
	return apiErr
}

func joinFieldErrors(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(fields[k], " ")))
	}
	return strings.Join(parts, "; ")
}

func fallbackMessage(status int, raw []byte) string {
	if s := strings.TrimSpace(string(raw)); s != "" && len(s) < 200 && !strings.HasPrefix(s, "<") {
		return s
	}
	return fmt.Sprintf("request failed: %s", http.StatusText(status))
}
