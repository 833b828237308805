package zoho

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type Note struct {
	ID           string      `json:"id"`
	NoteTitle    string      `json:"noteTitle,omitempty"`
	NoteContent  string      `json:"noteContent"`
	ParentModule string      `json:"parentModule,omitempty"`
	ParentID     string      `json:"parentId,omitempty"`
	VoiceNote    interface{} `json:"voiceNote,omitempty"`
	OwnerID      string      `json:"ownerId,omitempty"`
	CreatedAt    string      `json:"createdAt,omitempty"`
	UpdatedAt    string      `json:"updatedAt,omitempty"`
}

// NoteInput ParentModule and ParentID are required by CreateNote and
// ignored elsewhere.
type NoteInput struct {
	NoteTitle    *string `json:"noteTitle,omitempty"`
	NoteContent  *string `json:"noteContent,omitempty"`
	ParentModule string  `json:"parentModule,omitempty"`
	ParentID     string  `json:"parentId,omitempty"`
}

var notesModule = module{apiName: "Notes", label: "note"}

var noteFields = []payloadField[NoteInput]{
	field("Note_Title", func(in NoteInput) interface{} { return opt(in.NoteTitle) }),
	field("Note_Content", func(in NoteInput) interface{} { return opt(in.NoteContent) }),
}

func mapNote(r Record) Note {
	parent := r.Object("Parent_Id")
	return Note{
		ID:           r.ID(),
		NoteTitle:    r.String("Note_Title"),
		NoteContent:  r.String("Note_Content"),
		ParentModule: parentModule(parent),
		ParentID:     parent.ID(),
		VoiceNote:    r.Raw("Voice_Note"),
		OwnerID:      r.RefID("Owner"),
		CreatedAt:    r.String("Created_Time"),
		UpdatedAt:    r.String("Modified_Time"),
	}
}

// parentModule reads Parent_Id.module, which is either a plain api name or
// an object carrying api_name.
func parentModule(parent Record) string {
	if m := parent.Object("module"); m != nil {
		return m.String("api_name")
	}
	return parent.String("module")
}

// notePayload always carries Note_Content, even when empty.
func notePayload(in NoteInput) map[string]interface{} {
	payload := buildPayload(in, noteFields, opCreate)
	content := ""
	if in.NoteContent != nil {
		content = *in.NoteContent
	}
	payload["Note_Content"] = content
	return payload
}

func (c *Client) ListNotes(ctx context.Context, params PageParams) (*Page[Note], error) {
	return listRecords(ctx, c, notesModule, params, mapNote)
}

func (c *Client) GetNote(ctx context.Context, id string) (*Note, error) {
	return getRecord(ctx, c, notesModule, id, mapNote)
}

func (c *Client) CreateNote(ctx context.Context, in NoteInput) (*Note, error) {
	payload := notePayload(in)
	payload["Parent_Id"] = map[string]interface{}{"module": in.ParentModule, "id": in.ParentID}
	return createRecord(ctx, c, notesModule, payload, mapNote)
}

func (c *Client) UpdateNote(ctx context.Context, id string, in NoteInput) (*Note, error) {
	return updateRecord(ctx, c, notesModule, id, buildPayload(in, noteFields, opUpdate), mapNote)
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, notesModule, id)
}

// ListRecordNotes pages the notes attached to one record.
func (c *Client) ListRecordNotes(ctx context.Context, moduleName, recordID string, params PageParams) (*Page[Note], error) {
	return listPath(ctx, c, apiPrefix+"/"+moduleName+"/"+recordID+"/Notes", params, nil, mapNote)
}

// AddNoteToRecord attaches a note to the record and returns it as stored.
func (c *Client) AddNoteToRecord(ctx context.Context, moduleName, recordID string, in NoteInput) (*Note, error) {
	path := apiPrefix + "/" + moduleName + "/" + recordID + "/Notes"
	id, err := c.writeRecord(ctx, http.MethodPost, path, "add note to record", notePayload(in))
	if err != nil {
		return nil, err
	}
	c.logger.Info("Added note to record",
		zap.String("module", moduleName),
		zap.String("record_id", recordID),
		zap.String("id", id))
	return c.GetNote(ctx, id)
}
