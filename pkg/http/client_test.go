package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestClientDo(t *testing.T) {
	t.Run("sends JSON body with default headers", func(t *testing.T) {
		var gotBody, gotContentType, gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			gotBody = string(b)
			gotContentType = r.Header.Get("Content-Type")
			gotAccept = r.Header.Get("Accept")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		c := NewClientWithHTTPClient(nil, zaptest.NewLogger(t))
		resp, err := c.Post(context.Background(), srv.URL, nil, map[string]string{"a": "b"})
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
		assert.JSONEq(t, `{"a":"b"}`, gotBody)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "application/json", gotAccept)
	})

	t.Run("form encodes when requested", func(t *testing.T) {
		var form url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			form = r.PostForm
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClientWithHTTPClient(nil, zaptest.NewLogger(t))
		_, err := c.Post(context.Background(), srv.URL,
			map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
			url.Values{"grant_type": {"refresh_token"}, "client_id": {"abc"}})
		require.NoError(t, err)

		assert.Equal(t, "refresh_token", form.Get("grant_type"))
		assert.Equal(t, "abc", form.Get("client_id"))
	})

	t.Run("returns error statuses without failing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClientWithHTTPClient(nil, zaptest.NewLogger(t))
		resp, err := c.Do(RequestOptions{Method: http.MethodGet, URL: srv.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("custom headers override defaults", func(t *testing.T) {
		var gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAccept = r.Header.Get("Accept")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		c := NewClientWithHTTPClient(nil, zaptest.NewLogger(t))
		resp, err := c.Do(RequestOptions{
			Method:  http.MethodDelete,
			URL:     srv.URL,
			Headers: map[string]string{"Accept": "text/plain"},
			Context: context.Background(),
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Empty(t, resp.Body)
		assert.Equal(t, "text/plain", gotAccept)
	})

	t.Run("rejects form bodies that are not url.Values", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request %s", r.Method)
		}))
		defer srv.Close()

		c := NewClientWithHTTPClient(nil, zaptest.NewLogger(t))
		_, err := c.Post(context.Background(), srv.URL,
			map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
			map[string]string{"grant_type": "refresh_token"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "url.Values")
	})
}

func TestBuildURL(t *testing.T) {
	t.Run("joins path and query", func(t *testing.T) {
		u, err := BuildURL("https://www.zohoapis.com", "/crm/v6/Contacts", url.Values{"page": {"2"}})
		require.NoError(t, err)
		assert.Equal(t, "https://www.zohoapis.com/crm/v6/Contacts?page=2", u)
	})

	t.Run("keeps base path prefix", func(t *testing.T) {
		u, err := BuildURL("http://127.0.0.1:9000/proxy/", "/crm/v6/Deals", nil)
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:9000/proxy/crm/v6/Deals", u)
	})

	t.Run("rejects relative base", func(t *testing.T) {
		_, err := BuildURL("zohoapis.com", "/crm/v6/Deals", nil)
		assert.Error(t, err)
	})
}
