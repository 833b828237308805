package zoho

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type Attachment struct {
	ID             string `json:"id"`
	FileName       string `json:"fileName"`
	FileID         string `json:"fileId,omitempty"`
	Size           string `json:"size,omitempty"`
	ParentModule   string `json:"parentModule,omitempty"`
	ParentID       string `json:"parentId,omitempty"`
	AttachmentType string `json:"attachmentType,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

func mapAttachment(r Record) Attachment {
	parent := r.Object("Parent_Id")
	return Attachment{
		ID:             r.ID(),
		FileName:       r.String("File_Name"),
		FileID:         r.String("File_Id"),
		Size:           r.String("Size"),
		ParentModule:   parentModule(parent),
		ParentID:       parent.ID(),
		AttachmentType: r.String("Attachment_Type"),
		CreatedAt:      r.String("Created_Time"),
		UpdatedAt:      r.String("Modified_Time"),
	}
}

func attachmentsPath(moduleName, recordID string) string {
	return apiPrefix + "/" + moduleName + "/" + recordID + "/Attachments"
}

func (c *Client) ListAttachments(ctx context.Context, moduleName, recordID string, params PageParams) (*Page[Attachment], error) {
	return listPath(ctx, c, attachmentsPath(moduleName, recordID), params, nil, mapAttachment)
}

func (c *Client) DeleteAttachment(ctx context.Context, moduleName, recordID, attachmentID string) error {
	var resp writeResponse
	if err := c.send(ctx, http.MethodDelete, attachmentsPath(moduleName, recordID)+"/"+attachmentID, nil, &resp); err != nil {
		return err
	}
	if err := resp.checkDelete("delete attachment"); err != nil {
		return err
	}
	c.logger.Info("Deleted attachment",
		zap.String("module", moduleName),
		zap.String("record_id", recordID),
		zap.String("id", attachmentID))
	return nil
}
