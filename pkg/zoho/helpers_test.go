package zoho

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testToken = "test-access-token"

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]interface{}
	Raw    string
}

// fakeZoho serves canned responses keyed by "METHOD /path" and records every
// request it sees.
type fakeZoho struct {
	server   *httptest.Server
	handlers map[string]http.HandlerFunc

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeZoho(t *testing.T) *fakeZoho {
	t.Helper()

	f := &fakeZoho{handlers: map[string]http.HandlerFunc{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeZoho) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	rec := recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Raw:    string(raw),
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &rec.Body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	f.mu.Unlock()

	h, ok := f.handlers[r.Method+" "+r.URL.Path]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "INVALID_URL_PATTERN", "message": "no handler for " + r.URL.Path})
		return
	}
	h(w, r)
}

func (f *fakeZoho) handle(method, path string, h http.HandlerFunc) {
	f.handlers[method+" "+path] = h
}

func (f *fakeZoho) reply(method, path string, status int, body interface{}) {
	f.handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, body)
	})
}

// requestsTo returns the recorded requests for method and path.
func (f *fakeZoho) requestsTo(method, path string) []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []recordedRequest
	for _, r := range f.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeZoho) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func newTestClient(t *testing.T, f *fakeZoho, opts ...Option) *Client {
	t.Helper()

	creds := Credentials{BaseURL: f.server.URL, AccessToken: testToken}
	c, err := NewWithLogger(creds, zaptest.NewLogger(t), opts...)
	require.NoError(t, err)
	return c
}

func records(rs ...map[string]interface{}) map[string]interface{} {
	data := make([]interface{}, 0, len(rs))
	for _, r := range rs {
		data = append(data, r)
	}
	return map[string]interface{}{"data": data}
}

func success(id string) map[string]interface{} {
	return map[string]interface{}{
		"data": []interface{}{
			map[string]interface{}{
				"code":    "SUCCESS",
				"status":  "success",
				"message": "record added",
				"details": map[string]interface{}{"id": id},
			},
		},
	}
}

func failure(code, message string) map[string]interface{} {
	return map[string]interface{}{
		"data": []interface{}{
			map[string]interface{}{"code": code, "status": "error", "message": message},
		},
	}
}

func listBody(info map[string]interface{}, rs ...map[string]interface{}) map[string]interface{} {
	body := records(rs...)
	body["info"] = info
	return body
}
