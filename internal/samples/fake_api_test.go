package samples

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-samples/internal/config"
	"shopping-samples/internal/merchant"
)

const (
	apiPrefix     = "/content/v2.1/"
	sandboxPrefix = "/content/v2.1sandbox/"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]interface{}
}

// fakeAPI is a Content API stand-in. Tests register the exact routes a
// sample is expected to call; anything else answers 404.
type fakeAPI struct {
	t        *testing.T
	router   *chi.Mux
	srv      *httptest.Server
	requests []recordedRequest
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{t: t, router: chi.NewRouter()}
	f.router.Use(f.record)
	f.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, apiError(http.StatusNotFound, "no route for "+r.Method+" "+r.URL.Path))
	})
	f.srv = httptest.NewServer(f.router)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
		data, _ := io.ReadAll(r.Body)
		if len(bytes.TrimSpace(data)) > 0 {
			assert.NoError(f.t, json.Unmarshal(data, &rec.Body))
		}
		r.Body = io.NopCloser(bytes.NewReader(data))
		f.requests = append(f.requests, rec)
		next.ServeHTTP(w, r)
	})
}

// reply answers method on path (relative to the API base) with body.
func (f *fakeAPI) reply(method, path string, status int, body interface{}) {
	f.handle(method, path, func(*http.Request, map[string]interface{}) (int, interface{}) {
		return status, body
	})
}

// handle answers method on path with whatever fn returns for the request and
// its decoded body.
func (f *fakeAPI) handle(method, path string, fn func(r *http.Request, body map[string]interface{}) (int, interface{})) {
	if !strings.HasPrefix(path, "/") {
		path = apiPrefix + path
	}
	f.router.MethodFunc(method, path, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		status, resp := fn(r, body)
		if resp == nil {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, resp)
	})
}

// calls returns the recorded requests for method and path.
func (f *fakeAPI) calls(method, path string) []recordedRequest {
	if !strings.HasPrefix(path, "/") {
		path = apiPrefix + path
	}
	var out []recordedRequest
	for _, r := range f.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeAPI) env(info *config.MerchantInfo) (*Env, *bytes.Buffer) {
	f.t.Helper()
	client, err := merchant.NewClient(f.srv.Client()).WithEndpoint(f.srv.URL + apiPrefix)
	require.NoError(f.t, err)
	out := &bytes.Buffer{}
	return &Env{
		Client: client,
		Info:   info,
		Out:    out,
		Retry:  []merchant.RetryOption{merchant.WithSlotTime(time.Millisecond), merchant.WithMaxTime(50 * time.Millisecond)},
	}, out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func apiError(code int, message string) map[string]interface{} {
	return map[string]interface{}{"error": map[string]interface{}{"code": code, "message": message}}
}

type obj = map[string]interface{}

type arr = []interface{}

// echo answers with the request body.
func echo(_ *http.Request, body map[string]interface{}) (int, interface{}) {
	return http.StatusOK, body
}

func page(resources ...interface{}) obj {
	return obj{"resources": arr(resources)}
}
