package oauth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-samples/internal/errors"
)

func serve(t *testing.T, h *CallbackHandler, target string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	rec := httptest.NewRecorder()
	err := h.Callback(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec, err
}

func TestCallbackDeliversCodeOnce(t *testing.T) {
	results := make(chan Result, 2)
	h := NewCallbackHandler("s1", results)

	rec, err := serve(t, h, "/?state=s1&code=abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication flow has completed")

	_, err = serve(t, h, "/?state=s1&code=def")
	require.NoError(t, err)

	require.Len(t, results, 1)
	res := <-results
	assert.Equal(t, "abc", res.Code)
	assert.NoError(t, res.Err)
}

func TestCallbackStateMismatch(t *testing.T) {
	results := make(chan Result, 1)
	h := NewCallbackHandler("expected", results)

	rec, err := serve(t, h, "/?state=other&code=abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.IsType(t, errors.BadRequest{}, err)
	assert.Len(t, results, 0)
}

func TestCallbackErrorFailsFlow(t *testing.T) {
	results := make(chan Result, 1)
	h := NewCallbackHandler("s", results)

	rec, err := serve(t, h, "/?state=s&error=access_denied")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Error(t, err)
	res := <-results
	assert.ErrorContains(t, res.Err, "access_denied")
}

func TestCallbackMissingCode(t *testing.T) {
	results := make(chan Result, 1)
	h := NewCallbackHandler("s", results)

	rec, _ := serve(t, h, "/?state=s")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	res := <-results
	assert.Error(t, res.Err)
}

func TestNotFound(t *testing.T) {
	h := NewCallbackHandler("s", make(chan Result, 1))
	rec := httptest.NewRecorder()

	require.NoError(t, h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
