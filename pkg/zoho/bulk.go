package zoho

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

const bulkPrefix = "/crm/bulk/v6"

// Bulk job states.
const (
	BulkAdded      = "ADDED"
	BulkQueued     = "QUEUED"
	BulkInProgress = "IN PROGRESS"
	BulkCompleted  = "COMPLETED"
	BulkFailed     = "FAILED"
)

// Bulk job payloads keep the vendor field names.

type ModuleRef struct {
	APIName string `json:"api_name"`
}

type BulkCallback struct {
	URL    string `json:"url"`
	Method string `json:"method"`
}

type BulkCriterion struct {
	Field      ModuleRef   `json:"field"`
	Comparator string      `json:"comparator"`
	Value      interface{} `json:"value"`
}

type BulkCriteria struct {
	GroupOperator string          `json:"group_operator,omitempty"`
	Group         []BulkCriterion `json:"group,omitempty"`
}

type BulkReadQuery struct {
	Module   ModuleRef     `json:"module"`
	Criteria *BulkCriteria `json:"criteria,omitempty"`
	Fields   []string      `json:"fields,omitempty"`
	Page     int           `json:"page,omitempty"`
}

type BulkReadRequest struct {
	Callback *BulkCallback `json:"callback,omitempty"`
	Query    BulkReadQuery `json:"query"`
}

type BulkResult struct {
	DownloadURL string `json:"download_url,omitempty"`
}

type BulkReadJob struct {
	ID          string         `json:"id"`
	Operation   string         `json:"operation,omitempty"`
	CreatedBy   *UserRef       `json:"created_by,omitempty"`
	CreatedTime string         `json:"created_time,omitempty"`
	State       string         `json:"state"`
	Result      *BulkResult    `json:"result,omitempty"`
	Query       *BulkReadQuery `json:"query,omitempty"`
}

type BulkWriteResource struct {
	Type   string    `json:"type"`
	Status string    `json:"status,omitempty"`
	Module ModuleRef `json:"module"`
	FileID string    `json:"file_id"`
	FindBy string    `json:"find_by,omitempty"`
}

// BulkWriteRequest Operation is one of insert, update or upsert.
type BulkWriteRequest struct {
	Operation string              `json:"operation"`
	Callback  *BulkCallback       `json:"callback,omitempty"`
	Resource  []BulkWriteResource `json:"resource"`
}

type BulkWriteJob struct {
	ID          string              `json:"id"`
	Operation   string              `json:"operation,omitempty"`
	CreatedBy   *UserRef            `json:"created_by,omitempty"`
	CreatedTime string              `json:"created_time,omitempty"`
	State       string              `json:"state"`
	Result      *BulkResult         `json:"result,omitempty"`
	Resource    []BulkWriteResource `json:"resource,omitempty"`
}

type bulkCreateResponse[T any] struct {
	Data []struct {
		Details T `json:"details"`
	} `json:"data"`
}

type bulkGetResponse[T any] struct {
	Data []T `json:"data"`
}

func createBulkJob[T any](ctx context.Context, c *Client, path, kind string, req interface{}) (*T, error) {
	var resp bulkCreateResponse[T]
	if err := c.send(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, NewAPIError("Failed to create "+kind, 400)
	}
	c.logger.Info("Created bulk job", zap.String("kind", kind))
	return &resp.Data[0].Details, nil
}

func getBulkJob[T any](ctx context.Context, c *Client, path, title, id string) (*T, error) {
	var resp bulkGetResponse[T]
	if err := c.get(ctx, path+"/"+id, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, NewAPIError(title+" not found: "+id, 404)
	}
	return &resp.Data[0], nil
}

func (c *Client) CreateBulkReadJob(ctx context.Context, req BulkReadRequest) (*BulkReadJob, error) {
	return createBulkJob[BulkReadJob](ctx, c, bulkPrefix+"/read", "bulk read job", req)
}

func (c *Client) GetBulkReadJob(ctx context.Context, id string) (*BulkReadJob, error) {
	return getBulkJob[BulkReadJob](ctx, c, bulkPrefix+"/read", "Bulk read job", id)
}

func (c *Client) CreateBulkWriteJob(ctx context.Context, req BulkWriteRequest) (*BulkWriteJob, error) {
	return createBulkJob[BulkWriteJob](ctx, c, bulkPrefix+"/write", "bulk write job", req)
}

func (c *Client) GetBulkWriteJob(ctx context.Context, id string) (*BulkWriteJob, error) {
	return getBulkJob[BulkWriteJob](ctx, c, bulkPrefix+"/write", "Bulk write job", id)
}
