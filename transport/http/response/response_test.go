package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boatsandjoy/shared/failure"
	"boatsandjoy/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithJSONWrapsPayload(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, map[string]any{"id": 1})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var envelope struct {
		Error bool           `json:"error"`
		Data  map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.False(t, envelope.Error)
	assert.EqualValues(t, 1, envelope.Data["id"])
}

func TestWithErrorRendersErrorInfo(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithError(recorder, failure.NotFound("booking"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope struct {
		Error bool               `json:"error"`
		Data  response.ErrorInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.True(t, envelope.Error)
	assert.Equal(t, http.StatusNotFound, envelope.Data.Code)
	assert.Equal(t, "booking not found", envelope.Data.Message)
}

func TestWithErrorDefaultsToInternalError(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithError(recorder, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
