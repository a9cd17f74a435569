package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"message": "ok"}, http.StatusCreated)

	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteJSON_Slice(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, []int{1, 2, 3}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", w.Body.String())
}

func TestWriteDetail(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteDetail(w, "invalid credentials", http.StatusUnauthorized)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"invalid credentials"}`, w.Body.String())
}
