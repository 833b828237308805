package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/config"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/zoho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestCLI(t *testing.T, handler http.HandlerFunc) *cli {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := zoho.NewWithLogger(zoho.Credentials{BaseURL: server.URL, AccessToken: "tok"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	return &cli{
		crm: client,
		cfg: &config.Config{CharacterLimit: 50000, DefaultPageSize: 20, MaxPageSize: 100},
	}
}

func execute(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := newRootCmd(c)
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestTestCommand(t *testing.T) {
	c := newTestCLI(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/crm/v6/users", req.URL.Path)
		assert.Equal(t, "CurrentUser", req.URL.Query().Get("type"))
		writeJSON(w, map[string]interface{}{
			"users": []map[string]interface{}{{"id": "u1", "full_name": "Ada Lovelace", "email": "ada@example.com"}},
		})
	})

	out, err := execute(t, c, "test")
	require.NoError(t, err)

	var status zoho.ConnectionStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.True(t, status.Connected)
	assert.Equal(t, "Connected as Ada Lovelace", status.Message)
}

func TestListCommand_ClampsLimit(t *testing.T) {
	var query map[string]string
	c := newTestCLI(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/crm/v6/Contacts", req.URL.Path)
		query = map[string]string{
			"page":     req.URL.Query().Get("page"),
			"per_page": req.URL.Query().Get("per_page"),
		}
		writeJSON(w, map[string]interface{}{
			"data": []map[string]interface{}{{"id": "c1", "Last_Name": "Lovelace"}},
			"info": map[string]interface{}{"count": 1, "more_records": false},
		})
	})

	out, err := execute(t, c, "list", "contacts", "--limit", "500")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"page": "1", "per_page": "100"}, query)

	var page zoho.Page[zoho.Contact]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Lovelace", page.Items[0].LastName)
}

func TestSearchCommand(t *testing.T) {
	c := newTestCLI(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/crm/v6/Leads/search", req.URL.Path)
		assert.Equal(t, "acme", req.URL.Query().Get("word"))
		writeJSON(w, map[string]interface{}{})
	})

	out, err := execute(t, c, "search", "leads", "-q", "acme")
	require.NoError(t, err)

	var page zoho.Page[zoho.Lead]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown command", args: []string{"frobnicate"}, want: `unknown command "frobnicate"`},
		{name: "unknown kind", args: []string{"list", "widgets"}, want: `unknown kind "widgets"`},
		{name: "get without id", args: []string{"get", "deals"}, want: "accepts 2 arg(s)"},
		{name: "coql without query", args: []string{"coql"}, want: "requires at least 1 arg(s)"},
		{name: "search unsupported kind", args: []string{"search", "notes"}, want: `unknown kind "notes"`},
		{name: "audit disabled", args: []string{"audit", "5f0c8a4e-3a7e-4c43-9c2a-0d1f2b3c4d5e"}, want: "audit trail is not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t, func(w http.ResponseWriter, req *http.Request) {
				t.Errorf("unexpected request %s %s", req.Method, req.URL.Path)
			})

			_, err := execute(t, c, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetCommand_NotFound(t *testing.T) {
	c := newTestCLI(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	_, err := execute(t, c, "get", "deals", "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, zoho.ErrNotFound))
	assert.Equal(t, "Deal not found: 42", err.Error())
}

func TestPrintJSON_Truncates(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, printJSON(out, 10, strings.Repeat("x", 50)))
	assert.Equal(t, `"xxxxxxxxx`+truncatedSuffix, out.String())
}

func TestAuditRunsWithoutCredentials(t *testing.T) {
	c := &cli{
		cfg: &config.Config{CharacterLimit: 50000, DefaultPageSize: 20, MaxPageSize: 100},
		connect: func() (zoho.CRM, error) {
			t.Fatal("audit must not build a CRM client")
			return nil, nil
		},
	}

	_, err := execute(t, c, "audit", "5f0c8a4e-3a7e-4c43-9c2a-0d1f2b3c4d5e")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit trail is not available")
	assert.Nil(t, c.crm)
}

func TestClientBuiltOnFirstCRMCommand(t *testing.T) {
	t.Run("surfaces credential errors", func(t *testing.T) {
		c := &cli{
			cfg: &config.Config{CharacterLimit: 50000, DefaultPageSize: 20, MaxPageSize: 100},
			connect: func() (zoho.CRM, error) {
				return zoho.NewWithLogger(zoho.Credentials{}, zaptest.NewLogger(t))
			},
		}

		_, err := execute(t, c, "modules")
		require.Error(t, err)
		assert.True(t, errors.Is(err, zoho.ErrAuthentication))
	})

	t.Run("connects once", func(t *testing.T) {
		ready := newTestCLI(t, func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]interface{}{
				"users": []map[string]interface{}{{"id": "u1", "full_name": "Ada Lovelace", "email": "ada@example.com"}},
			})
		})
		calls := 0
		c := &cli{
			cfg: ready.cfg,
			connect: func() (zoho.CRM, error) {
				calls++
				return ready.crm, nil
			},
		}

		_, err := execute(t, c, "test")
		require.NoError(t, err)
		_, err = execute(t, c, "test")
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}
