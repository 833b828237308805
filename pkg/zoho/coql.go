package zoho

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// COQLResult is the raw result of a COQL select.
type COQLResult struct {
	Data []Record `json:"data"`
	Info COQLInfo `json:"info"`
}

type COQLInfo struct {
	Count       int  `json:"count"`
	MoreRecords bool `json:"moreRecords"`
	Page        int  `json:"page"`
}

// ExecuteCOQL runs a COQL select_query. Rows are returned untouched.
func (c *Client) ExecuteCOQL(ctx context.Context, query string) (*COQLResult, error) {
	var resp listResponse
	body := map[string]string{"select_query": query}
	if err := c.send(ctx, http.MethodPost, apiPrefix+"/coql", body, &resp); err != nil {
		c.logger.Error("Failed to execute COQL query", zap.Error(err))
		return nil, err
	}

	out := &COQLResult{Data: resp.Data, Info: COQLInfo{Page: 1}}
	if out.Data == nil {
		out.Data = []Record{}
	}
	if resp.Info != nil {
		out.Info.Count = resp.Info.Count
		out.Info.MoreRecords = resp.Info.MoreRecords
		if resp.Info.Page > 0 {
			out.Info.Page = resp.Info.Page
		}
	}
	return out, nil
}
