package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/pattarin-dev/webboard/internal/errors"
)

type testBody struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func TestDecodeValidate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantStatus int
	}{
		{
			name:  "valid body",
			input: `{"username": "somchai", "password": "secret"}`,
		},
		{
			name:       "invalid json",
			input:      `{not json`,
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing required field",
			input:      `{"username": "somchai"}`,
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty required field",
			input:      `{"username": "somchai", "password": ""}`,
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body testBody
			err := DecodeValidate(strings.NewReader(tt.input), &body)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "somchai", body.Username)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, internal_errors.StatusCode(err))
		})
	}
}

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("error with status code", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, &internal_errors.ErrorWithStatusCode{Message: "Username already exists", StatusCode: http.StatusConflict})

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.JSONEq(t, `{"message":"Username already exists"}`, rr.Body.String())
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})

	t.Run("plain error defaults to 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"boom"}`, rr.Body.String())
	})
}
