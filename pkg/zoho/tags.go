package zoho

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type Tag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ColorCode string `json:"colorCode,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type TagInput struct {
	Name      *string `json:"name,omitempty"`
	ColorCode *string `json:"colorCode,omitempty"`
}

type vendorTag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ColorCode   string `json:"color_code,omitempty"`
	CreatedTime string `json:"created_time,omitempty"`
}

func (t vendorTag) tag() Tag {
	return Tag{ID: t.ID, Name: t.Name, ColorCode: t.ColorCode, CreatedAt: t.CreatedTime}
}

type tagWriteResponse struct {
	Tags []struct {
		Code    string    `json:"code"`
		Details vendorTag `json:"details"`
	} `json:"tags"`
}

func (r tagWriteResponse) check(action string) (*Tag, error) {
	if len(r.Tags) == 0 || r.Tags[0].Code != codeSuccess {
		return nil, NewAPIError("Failed to "+action, 400)
	}
	t := r.Tags[0].Details.tag()
	return &t, nil
}

func tagsPath() string {
	return settingsPrefix + "/tags"
}

func (c *Client) ListTags(ctx context.Context, moduleName string) ([]Tag, error) {
	var resp struct {
		Tags []vendorTag `json:"tags"`
	}
	if err := c.get(ctx, tagsPath(), map[string]string{"module": moduleName}, &resp); err != nil {
		return nil, err
	}
	out := make([]Tag, 0, len(resp.Tags))
	for _, t := range resp.Tags {
		out = append(out, t.tag())
	}
	return out, nil
}

func (c *Client) CreateTag(ctx context.Context, moduleName string, in TagInput) (*Tag, error) {
	tag := map[string]interface{}{"name": opt(in.Name)}
	if in.ColorCode != nil {
		tag["color_code"] = *in.ColorCode
	}
	req := &Request{
		Method: http.MethodPost,
		Path:   tagsPath(),
		Query:  toValues(map[string]string{"module": moduleName}),
		Body:   map[string]interface{}{"tags": []interface{}{tag}},
	}

	var resp tagWriteResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	t, err := resp.check("create tag")
	if err != nil {
		return nil, err
	}
	c.logger.Info("Created tag", zap.String("module", moduleName), zap.String("id", t.ID))
	return t, nil
}

func (c *Client) UpdateTag(ctx context.Context, moduleName, tagID string, in TagInput) (*Tag, error) {
	tag := map[string]interface{}{"id": tagID}
	if in.Name != nil {
		tag["name"] = *in.Name
	}
	if in.ColorCode != nil {
		tag["color_code"] = *in.ColorCode
	}
	req := &Request{
		Method: http.MethodPut,
		Path:   tagsPath() + "/" + tagID,
		Query:  toValues(map[string]string{"module": moduleName}),
		Body:   map[string]interface{}{"tags": []interface{}{tag}},
	}

	var resp tagWriteResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.check("update tag")
}

func (c *Client) DeleteTag(ctx context.Context, tagID string) error {
	return c.send(ctx, http.MethodDelete, tagsPath()+"/"+tagID, nil, nil)
}

func (c *Client) AddTagsToRecords(ctx context.Context, moduleName string, recordIDs, tagNames []string) error {
	return c.tagRecords(ctx, moduleName, "add_tags", recordIDs, tagNames)
}

func (c *Client) RemoveTagsFromRecords(ctx context.Context, moduleName string, recordIDs, tagNames []string) error {
	return c.tagRecords(ctx, moduleName, "remove_tags", recordIDs, tagNames)
}

func (c *Client) tagRecords(ctx context.Context, moduleName, action string, recordIDs, tagNames []string) error {
	body := map[string]interface{}{"ids": recordIDs, "tag_names": tagNames}
	return c.send(ctx, http.MethodPost, apiPrefix+"/"+moduleName+"/actions/"+action, body, nil)
}
