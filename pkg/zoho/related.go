package zoho

import (
	"context"
	"net/http"
)

func relatedPath(moduleName, recordID, relatedList string) string {
	return apiPrefix + "/" + moduleName + "/" + recordID + "/" + relatedList
}

// ListRelatedRecords pages a related list. Records are returned as the
// vendor sent them.
func (c *Client) ListRelatedRecords(ctx context.Context, moduleName, recordID, relatedList string, params PageParams) (*Page[Record], error) {
	return listPath(ctx, c, relatedPath(moduleName, recordID, relatedList), params, nil, func(r Record) Record { return r })
}

func (c *Client) AddRelatedRecord(ctx context.Context, moduleName, recordID, relatedList, relatedRecordID string) error {
	return c.send(ctx, http.MethodPut, relatedPath(moduleName, recordID, relatedList)+"/"+relatedRecordID, nil, nil)
}

func (c *Client) RemoveRelatedRecord(ctx context.Context, moduleName, recordID, relatedList, relatedRecordID string) error {
	return c.send(ctx, http.MethodDelete, relatedPath(moduleName, recordID, relatedList)+"/"+relatedRecordID, nil, nil)
}
