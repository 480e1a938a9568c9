package evapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/electromove/ev-admin-api/internal/errors"
)

func TestFieldErrors_UnmarshalShapes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		empty bool
		join  string
	}{
		{"null", `null`, true, ""},
		{"empty list", `[]`, true, ""},
		{"list", `["user not found", "account locked"]`, false, "user not found, account locked"},
		{"list with blanks", `["", "account locked"]`, false, "account locked"},
		{"map", `{"Password": "too short", "Email": "is required"}`, false, "is required, too short"},
		{"unknown shape", `42`, true, ""},
		{"nested shape", `{"Password": ["too short"]}`, true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var fe FieldErrors
			require.NoError(t, json.Unmarshal([]byte(tc.input), &fe))
			assert.Equal(t, tc.empty, fe.IsEmpty())
			assert.Equal(t, tc.join, fe.Join())
		})
	}
}

func TestFieldErrors_UnmarshalResetsPreviousValue(t *testing.T) {
	var fe FieldErrors
	require.NoError(t, json.Unmarshal([]byte(`["first"]`), &fe))
	require.NoError(t, json.Unmarshal([]byte(`null`), &fe))
	assert.True(t, fe.IsEmpty())
}

func TestAuthEnvelope_Failed(t *testing.T) {
	var env authEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"token":"t"}`), &env))
	assert.False(t, env.failed(), "absent success must not read as failure")

	require.NoError(t, json.Unmarshal([]byte(`{"success":false}`), &env))
	assert.True(t, env.failed())

	require.NoError(t, json.Unmarshal([]byte(`{"success":true}`), &env))
	assert.False(t, env.failed())
}

func TestAuthEnvelope_ServerMessage(t *testing.T) {
	env := &authEnvelope{Title: "One or more validation errors occurred."}
	assert.Equal(t, "One or more validation errors occurred.", env.serverMessage())

	env.Message = "account disabled"
	assert.Equal(t, "account disabled", env.serverMessage(), "message wins over title")
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantCode apperrors.ErrorCode
		wantMsg  string
	}{
		{"field errors win over status", 401, `{"errors":["vin already registered"]}`, apperrors.ErrCodeValidation, "vin already registered"},
		{"unauthorized", 401, `{}`, apperrors.ErrCodeUnauthorized, ""},
		{"forbidden", 403, `{}`, apperrors.ErrCodeUnauthorized, ""},
		{"not found", 404, `{}`, apperrors.ErrCodeNotFound, ""},
		{"message on 4xx", 400, `{"message":"brand name is required"}`, apperrors.ErrCodeValidation, "brand name is required"},
		{"title on 4xx", 422, `{"title":"Unprocessable Entity"}`, apperrors.ErrCodeValidation, "Unprocessable Entity"},
		{"message on 5xx", 500, `{"message":"database unavailable"}`, apperrors.ErrCodeInternal, "database unavailable"},
		{"bare 5xx", 503, `not even json`, apperrors.ErrCodeInternal, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyStatus(tc.status, []byte(tc.body))
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, apperrors.GetCode(err))
			if tc.wantMsg != "" {
				assert.EqualError(t, err, tc.wantMsg)
			}
		})
	}
}
