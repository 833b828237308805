package zoho

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name        string
		params      PageParams
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults", params: PageParams{}, wantPage: 1, wantPerPage: 20},
		{name: "offset maps to page", params: PageParams{Limit: 25, Offset: 50}, wantPage: 3, wantPerPage: 25},
		{name: "per_page capped", params: PageParams{Limit: 250}, wantPage: 1, wantPerPage: 200},
		{name: "cursor selects page", params: PageParams{Limit: 10, Cursor: "4"}, wantPage: 4, wantPerPage: 10},
		{name: "offset wins over cursor", params: PageParams{Limit: 10, Offset: 10, Cursor: "4"}, wantPage: 2, wantPerPage: 10},
		{name: "bad cursor ignored", params: PageParams{Limit: 10, Cursor: "abc"}, wantPage: 1, wantPerPage: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.params.window()
			assert.Equal(t, tt.wantPage, w.page)
			assert.Equal(t, tt.wantPerPage, w.perPage)
		})
	}
}

func TestListContacts_Pagination(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodGet, "/crm/v6/Contacts", http.StatusOK, listBody(
		map[string]interface{}{"count": 120, "more_records": true, "page": 3, "per_page": 25},
		map[string]interface{}{
			"id":           "c1",
			"First_Name":   "Ada",
			"Last_Name":    "Lovelace",
			"Email":        "ada@example.com",
			"Account_Name": map[string]interface{}{"id": "a1", "name": "Analytical Engines"},
			"Owner":        map[string]interface{}{"id": "u1", "name": "Owner"},
		},
	))
	c := newTestClient(t, f)

	page, err := c.ListContacts(context.Background(), PageParams{Limit: 25, Offset: 50})
	require.NoError(t, err)

	reqs := f.requestsTo(http.MethodGet, "/crm/v6/Contacts")
	require.Len(t, reqs, 1)
	assert.Equal(t, "3", reqs[0].Query.Get("page"))
	assert.Equal(t, "25", reqs[0].Query.Get("per_page"))
	assert.Equal(t, contactsModule.fields, reqs[0].Query.Get("fields"))

	assert.Equal(t, 1, page.Count)
	assert.Equal(t, 120, page.Total)
	assert.True(t, page.HasMore)
	assert.Equal(t, "4", page.NextCursor)

	got := page.Items[0]
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "a1", got.CompanyID)
	assert.Equal(t, "Analytical Engines", got.CompanyName)
	assert.Equal(t, "u1", got.OwnerID)
}

func TestGetContact_EmptyDataIsNotFound(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodGet, "/crm/v6/Contacts/404", http.StatusOK, map[string]interface{}{"data": []interface{}{}})
	c := newTestClient(t, f)

	_, err := c.GetContact(context.Background(), "404")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Contact not found: 404", err.Error())
}

func TestCreateContact_FetchesCreatedRecord(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodPost, "/crm/v6/Contacts", http.StatusCreated, success("new-1"))
	f.reply(http.MethodGet, "/crm/v6/Contacts/new-1", http.StatusOK, records(map[string]interface{}{
		"id":        "new-1",
		"Last_Name": "Hopper",
		"Full_Name": "Grace Hopper",
	}))
	c := newTestClient(t, f)

	contact, err := c.CreateContact(context.Background(), ContactInput{
		FirstName: String("Grace"),
		LastName:  String("Hopper"),
		Phone:     String(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-1", contact.ID)
	assert.Equal(t, "Grace Hopper", contact.FullName)

	posts := f.requestsTo(http.MethodPost, "/crm/v6/Contacts")
	require.Len(t, posts, 1)
	data := posts[0].Body["data"].([]interface{})
	require.Len(t, data, 1)
	payload := data[0].(map[string]interface{})
	assert.Equal(t, "Grace", payload["First_Name"])
	assert.NotContains(t, payload, "Phone")
	assert.Len(t, f.requestsTo(http.MethodGet, "/crm/v6/Contacts/new-1"), 1)
}

func TestCreateContact_FailureSkipsFetch(t *testing.T) {
	tests := []struct {
		name    string
		body    interface{}
		wantMsg string
	}{
		{name: "error code", body: failure("DUPLICATE_DATA", "duplicate data"), wantMsg: "Failed to create contact: duplicate data"},
		{name: "empty data", body: map[string]interface{}{"data": []interface{}{}}, wantMsg: "Failed to create contact: Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeZoho(t)
			f.reply(http.MethodPost, "/crm/v6/Contacts", http.StatusOK, tt.body)
			c := newTestClient(t, f)

			_, err := c.CreateContact(context.Background(), ContactInput{LastName: String("Hopper")})
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, 400, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, 1, f.requestCount())
		})
	}
}

func TestUpdateContact_SendsClearedFields(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodPut, "/crm/v6/Contacts/c1", http.StatusOK, success("c1"))
	f.reply(http.MethodGet, "/crm/v6/Contacts/c1", http.StatusOK, records(map[string]interface{}{"id": "c1"}))
	c := newTestClient(t, f)

	_, err := c.UpdateContact(context.Background(), "c1", ContactInput{Phone: String(""), Source: String("Web")})
	require.NoError(t, err)

	puts := f.requestsTo(http.MethodPut, "/crm/v6/Contacts/c1")
	require.Len(t, puts, 1)
	payload := puts[0].Body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"Phone": ""}, payload)
}

func TestDeleteContact(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    interface{}
		wantErr string
	}{
		{name: "success", status: http.StatusOK, body: success("c1")},
		{name: "no content", status: http.StatusNoContent, body: nil},
		{name: "empty data", status: http.StatusOK, body: map[string]interface{}{"data": []interface{}{}}},
		{name: "rejected", status: http.StatusOK, body: failure("INVALID_DATA", "the id given seems to be invalid"), wantErr: "Failed to delete contact: the id given seems to be invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeZoho(t)
			f.reply(http.MethodDelete, "/crm/v6/Contacts", tt.status, tt.body)
			c := newTestClient(t, f)

			err := c.DeleteContact(context.Background(), "c1")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			} else {
				require.NoError(t, err)
			}

			reqs := f.requestsTo(http.MethodDelete, "/crm/v6/Contacts")
			require.Len(t, reqs, 1)
			assert.Equal(t, "c1", reqs[0].Query.Get("ids"))
		})
	}
}

func TestSearchContacts_Criteria(t *testing.T) {
	tests := []struct {
		name         string
		params       SearchParams
		wantWord     string
		wantCriteria string
	}{
		{name: "word only", params: SearchParams{Query: "ada"}, wantWord: "ada"},
		{
			name:         "email filter",
			params:       SearchParams{Filters: []Filter{{Field: "phone", Value: "555"}, {Field: "email", Value: "ada@example.com"}}},
			wantCriteria: "(Email:equals:ada@example.com)",
		},
		{
			name:         "phone filter",
			params:       SearchParams{Filters: []Filter{{Field: "phone", Value: "555"}}},
			wantCriteria: "(Phone:equals:555)",
		},
		{
			name:   "unknown filter ignored",
			params: SearchParams{Filters: []Filter{{Field: "city", Value: "London"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeZoho(t)
			f.reply(http.MethodGet, "/crm/v6/Contacts/search", http.StatusOK, map[string]interface{}{})
			c := newTestClient(t, f)

			page, err := c.SearchContacts(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Empty(t, page.Items)
			assert.Equal(t, 0, page.Total)

			reqs := f.requestsTo(http.MethodGet, "/crm/v6/Contacts/search")
			require.Len(t, reqs, 1)
			assert.Equal(t, tt.wantWord, reqs[0].Query.Get("word"))
			assert.Equal(t, tt.wantCriteria, reqs[0].Query.Get("criteria"))
		})
	}
}

func TestUpdateDeal_StatusWonClosesDeal(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodPut, "/crm/v6/Deals/d1", http.StatusOK, success("d1"))
	f.reply(http.MethodGet, "/crm/v6/Deals/d1", http.StatusOK, records(map[string]interface{}{
		"id":        "d1",
		"Deal_Name": "Big",
		"Stage":     "Closed Won",
		"Pipeline":  "Standard",
	}))
	c := newTestClient(t, f)

	deal, err := c.UpdateDeal(context.Background(), "d1", DealInput{Status: String(DealStatusWon)})
	require.NoError(t, err)
	assert.Equal(t, "Closed Won", deal.Stage)
	assert.Equal(t, "Standard", deal.PipelineID)

	payload := f.requestsTo(http.MethodPut, "/crm/v6/Deals/d1")[0].Body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"Stage": "Closed Won"}, payload)
}

func TestMoveDealStage(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodPut, "/crm/v6/Deals/d1", http.StatusOK, success("d1"))
	f.reply(http.MethodGet, "/crm/v6/Deals/d1", http.StatusOK, records(map[string]interface{}{"id": "d1", "Stage": "Negotiation"}))
	c := newTestClient(t, f)

	deal, err := c.MoveDealStage(context.Background(), "d1", "Negotiation")
	require.NoError(t, err)
	assert.Equal(t, "Negotiation", deal.StageID)
}

func TestConvertLead(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodPost, "/crm/v6/Leads/l1/actions/convert", http.StatusOK, records(map[string]interface{}{
		"Contacts": map[string]interface{}{"id": "c9", "name": "Ada"},
		"Accounts": "a9",
		"Deals":    nil,
	}))
	c := newTestClient(t, f)

	conv, err := c.ConvertLead(context.Background(), "l1", LeadConvertInput{
		Deals: &ConvertDeal{DealName: "From lead", ClosingDate: "2026-12-01", Stage: "Qualification"},
	})
	require.NoError(t, err)
	assert.Equal(t, "c9", conv.Contact)
	assert.Equal(t, "a9", conv.Account)
	assert.Empty(t, conv.Deal)

	reqs := f.requestsTo(http.MethodPost, "/crm/v6/Leads/l1/actions/convert")
	require.Len(t, reqs, 1)
	data := reqs[0].Body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "From lead", data["Deals"].(map[string]interface{})["Deal_Name"])
}

func TestConvertLead_EmptyResponse(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodPost, "/crm/v6/Leads/l1/actions/convert", http.StatusOK, map[string]interface{}{"data": []interface{}{}})
	c := newTestClient(t, f)

	_, err := c.ConvertLead(context.Background(), "l1", LeadConvertInput{})
	require.Error(t, err)
	assert.Equal(t, "Failed to convert lead", err.Error())
}

func TestAddNoteToRecord(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodPost, "/crm/v6/Deals/d1/Notes", http.StatusOK, success("n1"))
	f.reply(http.MethodGet, "/crm/v6/Notes/n1", http.StatusOK, records(map[string]interface{}{
		"id":           "n1",
		"Note_Content": "Call back",
		"Parent_Id": map[string]interface{}{
			"id":     "d1",
			"module": map[string]interface{}{"api_name": "Deals"},
		},
	}))
	c := newTestClient(t, f)

	note, err := c.AddNoteToRecord(context.Background(), "Deals", "d1", NoteInput{NoteContent: String("Call back")})
	require.NoError(t, err)
	assert.Equal(t, "Deals", note.ParentModule)
	assert.Equal(t, "d1", note.ParentID)

	payload := f.requestsTo(http.MethodPost, "/crm/v6/Deals/d1/Notes")[0].Body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"Note_Content": "Call back"}, payload)
}

func TestTestConnection(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		f := newFakeZoho(t)
		f.reply(http.MethodGet, "/crm/v6/users", http.StatusOK, map[string]interface{}{
			"users": []interface{}{map[string]interface{}{"id": "u1", "email": "ops@example.com"}},
		})
		c := newTestClient(t, f)

		status := c.TestConnection(context.Background())
		assert.True(t, status.Connected)
		assert.Equal(t, "Connected as ops@example.com", status.Message)
		assert.Equal(t, UsersCurrentUser, f.requestsTo(http.MethodGet, "/crm/v6/users")[0].Query.Get("type"))
	})

	t.Run("failure is reported", func(t *testing.T) {
		f := newFakeZoho(t)
		f.reply(http.MethodGet, "/crm/v6/users", http.StatusUnauthorized, nil)
		c := newTestClient(t, f)

		status := c.TestConnection(context.Background())
		assert.False(t, status.Connected)
		assert.Equal(t, "Authentication failed. Check your OAuth credentials.", status.Message)
	})
}

func TestTags_CreateRequiresSuccess(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodPost, "/crm/v6/settings/tags", http.StatusOK, map[string]interface{}{
		"tags": []interface{}{map[string]interface{}{"code": "DUPLICATE_DATA", "details": map[string]interface{}{}}},
	})
	c := newTestClient(t, f)

	_, err := c.CreateTag(context.Background(), "Leads", TagInput{Name: String("hot")})
	require.Error(t, err)
	assert.Equal(t, "Failed to create tag", err.Error())
	assert.Equal(t, "Leads", f.requestsTo(http.MethodPost, "/crm/v6/settings/tags")[0].Query.Get("module"))
}

func TestExecuteCOQL_Defaults(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodPost, "/crm/v6/coql", http.StatusOK, map[string]interface{}{})
	c := newTestClient(t, f)

	res, err := c.ExecuteCOQL(context.Background(), "select Last_Name from Contacts limit 1")
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, 1, res.Info.Page)
	assert.Equal(t, "select Last_Name from Contacts limit 1", f.requestsTo(http.MethodPost, "/crm/v6/coql")[0].Body["select_query"])
}

func TestGetBulkReadJob_NotFound(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodGet, "/crm/bulk/v6/read/j1", http.StatusOK, map[string]interface{}{"data": []interface{}{}})
	c := newTestClient(t, f)

	_, err := c.GetBulkReadJob(context.Background(), "j1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Bulk read job not found: j1", err.Error())
}
