package zoho

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	apiPrefix   = "/crm/v6"
	codeSuccess = "SUCCESS"
)

// module describes one CRM record module.
type module struct {
	apiName string
	// label is the lower-case singular used in error messages.
	label string
	// fields is the projection requested on list, if any.
	fields string
}

func (m module) path() string {
	return apiPrefix + "/" + m.apiName
}

func (m module) recordPath(id string) string {
	return m.path() + "/" + id
}

func (m module) title() string {
	if m.label == "" {
		return m.apiName
	}
	return strings.ToUpper(m.label[:1]) + m.label[1:]
}

type listResponse struct {
	Data []Record `json:"data"`
	Info *pageInfo `json:"info"`
}

type writeResult struct {
	Code    string `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Details Record `json:"details"`
}

type writeResponse struct {
	Data []writeResult `json:"data"`
}

// check returns the created or updated record id, or an error naming action
// when the first result is missing or not a success.
func (r writeResponse) check(action string) (string, error) {
	if len(r.Data) == 0 || r.Data[0].Code != codeSuccess {
		return "", writeFailure(action, r.Data)
	}
	return r.Data[0].Details.ID(), nil
}

// checkDelete fails only when a result is present and not a success.
func (r writeResponse) checkDelete(action string) error {
	if len(r.Data) > 0 && r.Data[0].Code != codeSuccess {
		return writeFailure(action, r.Data)
	}
	return nil
}

func writeFailure(action string, results []writeResult) error {
	msg := "Unknown error"
	if len(results) > 0 && results[0].Message != "" {
		msg = results[0].Message
	}
	return NewAPIError(fmt.Sprintf("Failed to %s: %s", action, msg), 400)
}

func mapRecords[T any](records []Record, mapFn func(Record) T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, mapFn(r))
	}
	return out
}

// listPath fetches one page from any paginated collection endpoint.
func listPath[T any](ctx context.Context, c *Client, path string, params PageParams, extra map[string]string, mapFn func(Record) T) (*Page[T], error) {
	w := params.window()
	q := w.query()
	for k, v := range extra {
		q[k] = v
	}

	var resp listResponse
	if err := c.get(ctx, path, q, &resp); err != nil {
		return nil, err
	}
	return newPage(mapRecords(resp.Data, mapFn), resp.Info, w), nil
}

func listRecords[T any](ctx context.Context, c *Client, m module, params PageParams, mapFn func(Record) T) (*Page[T], error) {
	c.logger.Debug("Listing records", zap.String("module", m.apiName))

	var extra map[string]string
	if m.fields != "" {
		extra = map[string]string{"fields": m.fields}
	}
	return listPath(ctx, c, m.path(), params, extra, mapFn)
}

func searchRecords[T any](ctx context.Context, c *Client, m module, params SearchParams, criteria string, mapFn func(Record) T) (*Page[T], error) {
	extra := map[string]string{}
	if params.Query != "" {
		extra["word"] = params.Query
	}
	if criteria != "" {
		extra["criteria"] = criteria
	}
	return listPath(ctx, c, m.path()+"/search", params.PageParams, extra, mapFn)
}

func getRecord[T any](ctx context.Context, c *Client, m module, id string, mapFn func(Record) T) (*T, error) {
	var resp listResponse
	if err := c.get(ctx, m.recordPath(id), nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, NewAPIError(fmt.Sprintf("%s not found: %s", m.title(), id), 404)
	}
	v := mapFn(resp.Data[0])
	return &v, nil
}

// writeRecord sends {"data":[payload]} and returns the affected record id.
func (c *Client) writeRecord(ctx context.Context, method, path, action string, payload map[string]interface{}) (string, error) {
	body := map[string]interface{}{"data": []interface{}{payload}}

	var resp writeResponse
	if err := c.send(ctx, method, path, body, &resp); err != nil {
		return "", err
	}
	id, err := resp.check(action)
	if err != nil {
		c.logger.Error("CRM write rejected", zap.String("action", action), zap.Error(err))
		return "", err
	}
	return id, nil
}

// createRecord creates then re-fetches so the caller sees server-computed
// fields.
func createRecord[T any](ctx context.Context, c *Client, m module, payload map[string]interface{}, mapFn func(Record) T) (*T, error) {
	id, err := c.writeRecord(ctx, http.MethodPost, m.path(), "create "+m.label, payload)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Created record", zap.String("module", m.apiName), zap.String("id", id))
	return getRecord(ctx, c, m, id, mapFn)
}

func updateRecord[T any](ctx context.Context, c *Client, m module, id string, payload map[string]interface{}, mapFn func(Record) T) (*T, error) {
	if _, err := c.writeRecord(ctx, http.MethodPut, m.recordPath(id), "update "+m.label, payload); err != nil {
		return nil, err
	}
	c.logger.Info("Updated record", zap.String("module", m.apiName), zap.String("id", id))
	return getRecord(ctx, c, m, id, mapFn)
}

func deleteRecord(ctx context.Context, c *Client, m module, id string) error {
	var resp writeResponse
	req := &Request{
		Method: http.MethodDelete,
		Path:   m.path(),
		Query:  toValues(map[string]string{"ids": id}),
	}
	if err := c.do(ctx, req, &resp); err != nil {
		return err
	}
	if err := resp.checkDelete("delete " + m.label); err != nil {
		return err
	}
	c.logger.Info("Deleted record", zap.String("module", m.apiName), zap.String("id", id))
	return nil
}
