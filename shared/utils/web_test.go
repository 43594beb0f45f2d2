package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gamefeed/gamefeed/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	type TestStruct struct {
		Field1 string `json:"field1"`
	}

	tests := []struct {
		name        string
		requestBody string
		expectedErr *errors.ErrorWithStatusCode
	}{
		{name: "Valid JSON", requestBody: `{"field1": "value"}`},
		{
			name:        "Invalid JSON",
			requestBody: `{"field1": "value"`,
			expectedErr: &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400},
		},
		{
			name:        "Empty Body",
			requestBody: "",
			expectedErr: &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target TestStruct
			err := Decode(io.NopCloser(strings.NewReader(tt.requestBody)), &target)
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "value", target.Field1)
				return
			}
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	t.Run("encodes value", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteJSON(rr, map[string]string{"message": "hello"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.Equal(t, `{"message":"hello"}`+"\n", rr.Body.String())
	})

	t.Run("unencodable value", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteJSON(rr, make(chan int))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal error\n", rr.Body.String())
	})
}

func TestWriteErrorAndStatusCode(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteErrorAndStatusCode(rr, errors.BadRequest("nope"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "nope\n", rr.Body.String())

	rr = httptest.NewRecorder()
	WriteErrorAndStatusCode(rr, io.EOF)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
