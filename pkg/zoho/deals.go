package zoho

import "context"

// Deal is a sales opportunity. StageID and Stage carry the same stage name.
type Deal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Amount      float64  `json:"amount,omitempty"`
	Stage       string   `json:"stage,omitempty"`
	StageID     string   `json:"stageId,omitempty"`
	CloseDate   string   `json:"closeDate,omitempty"`
	CompanyID   string   `json:"companyId,omitempty"`
	CompanyName string   `json:"companyName,omitempty"`
	ContactIDs  []string `json:"contactIds,omitempty"`
	Probability float64  `json:"probability,omitempty"`
	PipelineID  string   `json:"pipelineId,omitempty"`
	OwnerID     string   `json:"ownerId,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// DealStatus values accepted on update.
const (
	DealStatusOpen = "open"
	DealStatusWon  = "won"
	DealStatusLost = "lost"
)

type DealInput struct {
	Name       *string  `json:"name,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	StageID    *string  `json:"stageId,omitempty"`
	CloseDate  *string  `json:"closeDate,omitempty"`
	CompanyID  *string  `json:"companyId,omitempty"`
	ContactIDs []string `json:"contactIds,omitempty"`
	PipelineID *string  `json:"pipelineId,omitempty"`
	// Status is only applied on update; won and lost override StageID.
	Status *string `json:"status,omitempty"`
}

type Pipeline struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	IsDefault bool            `json:"isDefault"`
	Stages    []PipelineStage `json:"stages"`
}

type PipelineStage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

var dealsModule = module{
	apiName: "Deals",
	label:   "deal",
	fields:  "Deal_Name,Amount,Stage,Closing_Date,Account_Name,Contact_Name,Probability,Pipeline,Owner,Created_Time,Modified_Time",
}

var closedStages = map[string]string{
	DealStatusWon:  "Closed Won",
	DealStatusLost: "Closed Lost",
}

var dealFields = []payloadField[DealInput]{
	field("Deal_Name", func(in DealInput) interface{} { return opt(in.Name) }),
	field("Amount", func(in DealInput) interface{} { return opt(in.Amount) }).whenDefined(),
	field("Stage", func(in DealInput) interface{} { return opt(in.StageID) }),
	field("Closing_Date", func(in DealInput) interface{} { return opt(in.CloseDate) }),
	field("Account_Name", func(in DealInput) interface{} { return opt(in.CompanyID) }).createOnly(),
	field("Contact_Name", func(in DealInput) interface{} { return first(in.ContactIDs) }).createOnly(),
	field("Pipeline", func(in DealInput) interface{} { return opt(in.PipelineID) }).createOnly(),
	field("Stage", func(in DealInput) interface{} {
		if in.Status == nil {
			return nil
		}
		if stage, ok := closedStages[*in.Status]; ok {
			return stage
		}
		return nil
	}).updateOnly(),
}

func mapDeal(r Record) Deal {
	companyID, companyName := r.Ref("Account_Name")
	d := Deal{
		ID:          r.ID(),
		Name:        r.String("Deal_Name"),
		Amount:      r.Number("Amount"),
		Stage:       r.String("Stage"),
		StageID:     r.String("Stage"),
		CloseDate:   r.String("Closing_Date"),
		CompanyID:   companyID,
		CompanyName: companyName,
		Probability: r.Number("Probability"),
		PipelineID:  stringOrRefID(r, "Pipeline"),
		OwnerID:     r.RefID("Owner"),
		CreatedAt:   r.String("Created_Time"),
		UpdatedAt:   r.String("Modified_Time"),
	}
	if contactID := r.RefID("Contact_Name"); contactID != "" {
		d.ContactIDs = []string{contactID}
	}
	return d
}

// stringOrRefID reads a field the API returns either as a plain string or
// as a lookup object.
func stringOrRefID(r Record, key string) string {
	if s := r.String(key); s != "" {
		return s
	}
	return r.RefID(key)
}

func (c *Client) ListDeals(ctx context.Context, params PageParams) (*Page[Deal], error) {
	return listRecords(ctx, c, dealsModule, params, mapDeal)
}

func (c *Client) GetDeal(ctx context.Context, id string) (*Deal, error) {
	return getRecord(ctx, c, dealsModule, id, mapDeal)
}

func (c *Client) CreateDeal(ctx context.Context, in DealInput) (*Deal, error) {
	return createRecord(ctx, c, dealsModule, buildPayload(in, dealFields, opCreate), mapDeal)
}

func (c *Client) UpdateDeal(ctx context.Context, id string, in DealInput) (*Deal, error) {
	return updateRecord(ctx, c, dealsModule, id, buildPayload(in, dealFields, opUpdate), mapDeal)
}

// MoveDealStage sets the deal's stage by name.
func (c *Client) MoveDealStage(ctx context.Context, id, stageID string) (*Deal, error) {
	return c.UpdateDeal(ctx, id, DealInput{StageID: &stageID})
}

type pipelineResponse struct {
	Pipeline []struct {
		ID           string `json:"id"`
		DisplayValue string `json:"display_value"`
		Default      bool   `json:"default"`
		Maps         []struct {
			ID             string `json:"id"`
			DisplayValue   string `json:"display_value"`
			SequenceNumber int    `json:"sequence_number"`
		} `json:"maps"`
	} `json:"pipeline"`
}

func (c *Client) ListPipelines(ctx context.Context) ([]Pipeline, error) {
	var resp pipelineResponse
	if err := c.get(ctx, apiPrefix+"/settings/pipeline", map[string]string{"module": "Deals"}, &resp); err != nil {
		return nil, err
	}

	pipelines := make([]Pipeline, 0, len(resp.Pipeline))
	for _, p := range resp.Pipeline {
		stages := make([]PipelineStage, 0, len(p.Maps))
		for _, m := range p.Maps {
			stages = append(stages, PipelineStage{ID: m.ID, Name: m.DisplayValue, Order: m.SequenceNumber})
		}
		pipelines = append(pipelines, Pipeline{
			ID:        p.ID,
			Name:      p.DisplayValue,
			IsDefault: p.Default,
			Stages:    stages,
		})
	}
	return pipelines, nil
}
