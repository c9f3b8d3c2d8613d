package merchant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

type loggedRequest struct {
	RequestID  string          `json:"requestId"`
	Method     string          `json:"method"`
	URL        string          `json:"url"`
	ParsedBody json.RawMessage `json:"parsedBody,omitempty"`
	RawBody    []byte          `json:"rawBody,omitempty"`
}

type loggedResponse struct {
	RequestID  string          `json:"requestId"`
	StatusCode int             `json:"statusCode"`
	ParsedBody json.RawMessage `json:"parsedBody,omitempty"`
	RawBody    []byte          `json:"rawBody,omitempty"`
}

// loggingTransport writes every request and response passing through it as
// indented JSON documents. Bodies holding a single JSON value are embedded as
// JSON, anything else is kept raw.
type loggingTransport struct {
	mu   sync.Mutex
	enc  *json.Encoder
	next http.RoundTripper
}

// NewLoggingTransport wraps next so that all API traffic is written to w.
func NewLoggingTransport(w io.Writer, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return &loggingTransport{enc: enc, next: next}
}

// LogClient installs the logging transport on hc.
func LogClient(hc *http.Client, w io.Writer) {
	hc.Transport = NewLoggingTransport(w, hc.Transport)
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.New().String()
	logged := loggedRequest{
		RequestID: id,
		Method:    req.Method,
		URL:       req.URL.String(),
	}
	if req.Body != nil && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("copying request body for log: %w", err)
		}
		buf, err := io.ReadAll(body)
		if err != nil {
			return nil, fmt.Errorf("reading request body for log: %w", err)
		}
		logged.ParsedBody, logged.RawBody = splitBody(buf)
	}
	if err := t.write(logged); err != nil {
		return nil, fmt.Errorf("logging request: %w", err)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	loggedResp := loggedResponse{RequestID: id, StatusCode: resp.StatusCode}
	if resp.Body != nil && resp.ContentLength != 0 {
		contents, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading response body for log: %w", err)
		}
		resp.Body = io.NopCloser(bytes.NewReader(contents))
		loggedResp.ParsedBody, loggedResp.RawBody = splitBody(contents)
	}
	if err := t.write(loggedResp); err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("logging response: %w", err)
	}
	return resp, nil
}

func (t *loggingTransport) write(v interface{}) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enc.Encode(v)
}

// splitBody returns buf as JSON when it is exactly one JSON value and as raw
// bytes otherwise.
func splitBody(buf []byte) (json.RawMessage, []byte) {
	if len(buf) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	var v json.RawMessage
	if err := dec.Decode(&v); err != nil || dec.More() {
		return nil, buf
	}
	return v, nil
}
