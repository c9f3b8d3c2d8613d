package oauth

import (
	"fmt"
	"net/http"
	"sync"

	"shopping-samples/internal/errors"
	"shopping-samples/platform/web/response"
)

// Result is what the consent redirect delivered: an authorization code, or
// the reason the user did not grant access.
type Result struct {
	Code string
	Err  error
}

// CallbackHandler receives the OAuth2 redirect of an installed application
// flow. The first valid result is sent on the results channel, later
// requests are answered but not delivered.
type CallbackHandler struct {
	state   string
	results chan<- Result
	once    sync.Once
}

func NewCallbackHandler(state string, results chan<- Result) *CallbackHandler {
	return &CallbackHandler{state: state, results: results}
}

func (h *CallbackHandler) deliver(res Result) {
	h.once.Do(func() {
		h.results <- res
	})
}

func (h *CallbackHandler) Callback(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	if q.Get("state") != h.state {
		response.Error(w, http.StatusBadRequest, "state mismatch")
		return errors.NewBadRequest("oauth callback: state mismatch")
	}

	if reason := q.Get("error"); reason != "" {
		h.deliver(Result{Err: fmt.Errorf("authorization was not granted: %s", reason)})
		response.Error(w, http.StatusBadRequest, "authorization was not granted: "+reason)
		return errors.NewBadRequest("oauth callback: %s", reason)
	}

	code := q.Get("code")
	if code == "" {
		h.deliver(Result{Err: fmt.Errorf("authorization response did not include a code")})
		response.Error(w, http.StatusBadRequest, "missing code")
		return errors.NewBadRequest("oauth callback: missing code")
	}

	h.deliver(Result{Code: code})
	response.Text(w, http.StatusOK, "The authentication flow has completed. You may close this window.\n")
	return nil
}

// NotFound answers every path other than the redirect, such as the browser's
// favicon request.
func (h *CallbackHandler) NotFound(w http.ResponseWriter, r *http.Request) error {
	http.NotFound(w, r)
	return nil
}
