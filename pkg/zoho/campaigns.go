package zoho

import "context"

type Campaign struct {
	ID               string  `json:"id"`
	CampaignName     string  `json:"campaignName"`
	Type             string  `json:"type,omitempty"`
	Status           string  `json:"status,omitempty"`
	StartDate        string  `json:"startDate,omitempty"`
	EndDate          string  `json:"endDate,omitempty"`
	ExpectedRevenue  float64 `json:"expectedRevenue,omitempty"`
	BudgetedCost     float64 `json:"budgetedCost,omitempty"`
	ActualCost       float64 `json:"actualCost,omitempty"`
	ExpectedResponse float64 `json:"expectedResponse,omitempty"`
	NumSent          float64 `json:"numSent,omitempty"`
	ParentCampaign   string  `json:"parentCampaign,omitempty"`
	Description      string  `json:"description,omitempty"`
	OwnerID          string  `json:"ownerId,omitempty"`
	CreatedAt        string  `json:"createdAt,omitempty"`
	UpdatedAt        string  `json:"updatedAt,omitempty"`
}

// CampaignInput ActualCost is only applied on update.
type CampaignInput struct {
	CampaignName    *string  `json:"campaignName,omitempty"`
	Type            *string  `json:"type,omitempty"`
	Status          *string  `json:"status,omitempty"`
	StartDate       *string  `json:"startDate,omitempty"`
	EndDate         *string  `json:"endDate,omitempty"`
	ExpectedRevenue *float64 `json:"expectedRevenue,omitempty"`
	BudgetedCost    *float64 `json:"budgetedCost,omitempty"`
	ActualCost      *float64 `json:"actualCost,omitempty"`
	Description     *string  `json:"description,omitempty"`
}

var campaignsModule = module{apiName: "Campaigns", label: "campaign"}

var campaignFields = []payloadField[CampaignInput]{
	field("Campaign_Name", func(in CampaignInput) interface{} { return opt(in.CampaignName) }).whenDefined(),
	field("Type", func(in CampaignInput) interface{} { return opt(in.Type) }),
	field("Status", func(in CampaignInput) interface{} { return opt(in.Status) }),
	field("Start_Date", func(in CampaignInput) interface{} { return opt(in.StartDate) }),
	field("End_Date", func(in CampaignInput) interface{} { return opt(in.EndDate) }),
	field("Expected_Revenue", func(in CampaignInput) interface{} { return opt(in.ExpectedRevenue) }).whenDefined(),
	field("Budgeted_Cost", func(in CampaignInput) interface{} { return opt(in.BudgetedCost) }).whenDefined(),
	field("Actual_Cost", func(in CampaignInput) interface{} { return opt(in.ActualCost) }).updateOnly(),
	field("Description", func(in CampaignInput) interface{} { return opt(in.Description) }),
}

func mapCampaign(r Record) Campaign {
	return Campaign{
		ID:               r.ID(),
		CampaignName:     r.String("Campaign_Name"),
		Type:             r.String("Type"),
		Status:           r.String("Status"),
		StartDate:        r.String("Start_Date"),
		EndDate:          r.String("End_Date"),
		ExpectedRevenue:  r.Number("Expected_Revenue"),
		BudgetedCost:     r.Number("Budgeted_Cost"),
		ActualCost:       r.Number("Actual_Cost"),
		ExpectedResponse: r.Number("Expected_Response"),
		NumSent:          r.Number("Num_sent"),
		ParentCampaign:   r.RefName("Parent_Campaign"),
		Description:      r.String("Description"),
		OwnerID:          r.RefID("Owner"),
		CreatedAt:        r.String("Created_Time"),
		UpdatedAt:        r.String("Modified_Time"),
	}
}

func (c *Client) ListCampaigns(ctx context.Context, params PageParams) (*Page[Campaign], error) {
	return listRecords(ctx, c, campaignsModule, params, mapCampaign)
}

func (c *Client) GetCampaign(ctx context.Context, id string) (*Campaign, error) {
	return getRecord(ctx, c, campaignsModule, id, mapCampaign)
}

func (c *Client) CreateCampaign(ctx context.Context, in CampaignInput) (*Campaign, error) {
	return createRecord(ctx, c, campaignsModule, buildPayload(in, campaignFields, opCreate), mapCampaign)
}

func (c *Client) UpdateCampaign(ctx context.Context, id string, in CampaignInput) (*Campaign, error) {
	return updateRecord(ctx, c, campaignsModule, id, buildPayload(in, campaignFields, opUpdate), mapCampaign)
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, campaignsModule, id)
}

func (c *Client) SearchCampaigns(ctx context.Context, params SearchParams) (*Page[Campaign], error) {
	return searchRecords(ctx, c, campaignsModule, params, "", mapCampaign)
}
