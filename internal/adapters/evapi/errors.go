package evapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	apperrors "github.com/electromove/ev-admin-api/internal/errors"
)

// FieldErrors is the upstream API's error payload, which arrives either as
// a list of messages or as a field→message map. It is an explicit tagged
// union; Join flattens either shape into one display string.
type FieldErrors struct {
	list   []string
	fields map[string]string
}

// UnmarshalJSON accepts null, a list of strings, or a string map. Any
// other shape is ignored (left empty) so that error classification can
// fall through to the response's other fields.
func (fe *FieldErrors) UnmarshalJSON(data []byte) error {
	*fe = FieldErrors{}
	if string(data) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		fe.list = list
		return nil
	}

	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err == nil {
		fe.fields = fields
		return nil
	}

	return nil
}

// IsEmpty reports whether no messages are present in either shape.
func (fe FieldErrors) IsEmpty() bool {
	return len(fe.list) == 0 && len(fe.fields) == 0
}

// Join flattens the union into a single ", "-joined string. Map values are
// joined in sorted key order for deterministic output.
func (fe FieldErrors) Join() string {
	if len(fe.list) > 0 {
		parts := make([]string, 0, len(fe.list))
		for _, msg := range fe.list {
			if msg != "" {
				parts = append(parts, msg)
			}
		}
		return strings.Join(parts, ", ")
	}

	keys := make([]string, 0, len(fe.fields))
	for k := range fe.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if msg := fe.fields[k]; msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, ", ")
}

// authEnvelope is the response shape shared by the upstream auth
// endpoints. Success is a pointer so an absent field is distinguishable
// from an explicit false.
type authEnvelope struct {
	Success      *bool       `json:"success"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	Messages     []string    `json:"messages"`
	Errors       FieldErrors `json:"errors"`
	ErrorCode    int         `json:"errorCode"`
	Message      string      `json:"message"`
	Title        string      `json:"title"`
}

// failed reports whether the envelope carries an explicit success=false.
func (e *authEnvelope) failed() bool {
	return e.Success != nil && !*e.Success
}

// serverMessage returns the most specific free-form message the upstream
// attached, or "".
func (e *authEnvelope) serverMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Title
}

// classifyStatus maps a non-2xx catalog response to the error taxonomy.
// Structured field errors win, then 401/404, then the server's free-form
// message.
func classifyStatus(status int, body []byte) error {
	var env authEnvelope
	_ = json.Unmarshal(body, &env)

	if !env.Errors.IsEmpty() {
		return apperrors.Validation(env.Errors.Join())
	}

	switch status {
	case http.StatusUnauthorized:
		return apperrors.Unauthorized("upstream rejected the access token")
	case http.StatusForbidden:
		return apperrors.Unauthorized("insufficient permissions")
	case http.StatusNotFound:
		return apperrors.NotFound("resource not found")
	}

	if msg := env.serverMessage(); msg != "" {
		if status < http.StatusInternalServerError {
			return apperrors.Validation(msg)
		}
		return apperrors.Internal(msg)
	}

	return apperrors.Internalf("upstream API returned status %d", status)
}
