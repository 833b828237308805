package zoho

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type Lead struct {
	ID                string  `json:"id"`
	FirstName         string  `json:"firstName,omitempty"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email,omitempty"`
	Phone             string  `json:"phone,omitempty"`
	Mobile            string  `json:"mobile,omitempty"`
	Company           string  `json:"company,omitempty"`
	Title             string  `json:"title,omitempty"`
	Website           string  `json:"website,omitempty"`
	Industry          string  `json:"industry,omitempty"`
	AnnualRevenue     float64 `json:"annualRevenue,omitempty"`
	NumberOfEmployees int     `json:"numberOfEmployees,omitempty"`
	LeadSource        string  `json:"leadSource,omitempty"`
	LeadStatus        string  `json:"leadStatus,omitempty"`
	Rating            string  `json:"rating,omitempty"`
	Description       string  `json:"description,omitempty"`
	Street            string  `json:"street,omitempty"`
	City              string  `json:"city,omitempty"`
	State             string  `json:"state,omitempty"`
	ZipCode           string  `json:"zipCode,omitempty"`
	Country           string  `json:"country,omitempty"`
	OwnerID           string  `json:"ownerId,omitempty"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}

type LeadInput struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Company     *string `json:"company,omitempty"`
	Title       *string `json:"title,omitempty"`
	Website     *string `json:"website,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	LeadSource  *string `json:"leadSource,omitempty"`
	LeadStatus  *string `json:"leadStatus,omitempty"`
	Description *string `json:"description,omitempty"`
}

// LeadConvertInput uses the vendor's field names for the entities created
// by a conversion.
type LeadConvertInput struct {
	Deals                *ConvertDeal    `json:"Deals,omitempty"`
	Accounts             *ConvertAccount `json:"Accounts,omitempty"`
	Contacts             *ConvertContact `json:"Contacts,omitempty"`
	CarryOverTags        *bool           `json:"carry_over_tags,omitempty"`
	NotifyLeadOwner      *bool           `json:"notify_lead_owner,omitempty"`
	NotifyNewEntityOwner *bool           `json:"notify_new_entity_owner,omitempty"`
}

type ConvertDeal struct {
	DealName    string   `json:"Deal_Name"`
	ClosingDate string   `json:"Closing_Date"`
	Stage       string   `json:"Stage"`
	Amount      *float64 `json:"Amount,omitempty"`
}

type ConvertAccount struct {
	AccountName string `json:"Account_Name,omitempty"`
}

type ConvertContact struct {
	LastName  string `json:"Last_Name,omitempty"`
	FirstName string `json:"First_Name,omitempty"`
}

// LeadConversion holds the ids of the records a conversion produced.
type LeadConversion struct {
	Contact string `json:"contact"`
	Account string `json:"account"`
	Deal    string `json:"deal,omitempty"`
}

var leadsModule = module{
	apiName: "Leads",
	label:   "lead",
	fields:  "First_Name,Last_Name,Email,Phone,Mobile,Company,Designation,Website,Industry,Annual_Revenue,No_of_Employees,Lead_Source,Lead_Status,Rating,Description,Street,City,State,Zip_Code,Country,Owner,Created_Time,Modified_Time",
}

var leadFields = []payloadField[LeadInput]{
	field("Last_Name", func(in LeadInput) interface{} { return opt(in.LastName) }).whenDefined(),
	field("First_Name", func(in LeadInput) interface{} { return opt(in.FirstName) }),
	field("Email", func(in LeadInput) interface{} { return opt(in.Email) }),
	field("Phone", func(in LeadInput) interface{} { return opt(in.Phone) }),
	field("Company", func(in LeadInput) interface{} { return opt(in.Company) }),
	field("Designation", func(in LeadInput) interface{} { return opt(in.Title) }),
	field("Website", func(in LeadInput) interface{} { return opt(in.Website) }),
	field("Industry", func(in LeadInput) interface{} { return opt(in.Industry) }),
	field("Lead_Source", func(in LeadInput) interface{} { return opt(in.LeadSource) }),
	field("Lead_Status", func(in LeadInput) interface{} { return opt(in.LeadStatus) }),
	field("Description", func(in LeadInput) interface{} { return opt(in.Description) }),
}

func mapLead(r Record) Lead {
	return Lead{
		ID:                r.ID(),
		FirstName:         r.String("First_Name"),
		LastName:          r.String("Last_Name"),
		Email:             r.String("Email"),
		Phone:             r.String("Phone"),
		Mobile:            r.String("Mobile"),
		Company:           r.String("Company"),
		Title:             r.String("Designation"),
		Website:           r.String("Website"),
		Industry:          r.String("Industry"),
		AnnualRevenue:     r.Number("Annual_Revenue"),
		NumberOfEmployees: r.Int("No_of_Employees"),
		LeadSource:        r.String("Lead_Source"),
		LeadStatus:        r.String("Lead_Status"),
		Rating:            r.String("Rating"),
		Description:       r.String("Description"),
		Street:            r.String("Street"),
		City:              r.String("City"),
		State:             r.String("State"),
		ZipCode:           r.String("Zip_Code"),
		Country:           r.String("Country"),
		OwnerID:           r.RefID("Owner"),
		CreatedAt:         r.String("Created_Time"),
		UpdatedAt:         r.String("Modified_Time"),
	}
}

func (c *Client) ListLeads(ctx context.Context, params PageParams) (*Page[Lead], error) {
	return listRecords(ctx, c, leadsModule, params, mapLead)
}

func (c *Client) GetLead(ctx context.Context, id string) (*Lead, error) {
	return getRecord(ctx, c, leadsModule, id, mapLead)
}

func (c *Client) CreateLead(ctx context.Context, in LeadInput) (*Lead, error) {
	return createRecord(ctx, c, leadsModule, buildPayload(in, leadFields, opCreate), mapLead)
}

func (c *Client) UpdateLead(ctx context.Context, id string, in LeadInput) (*Lead, error) {
	return updateRecord(ctx, c, leadsModule, id, buildPayload(in, leadFields, opUpdate), mapLead)
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, leadsModule, id)
}

func (c *Client) SearchLeads(ctx context.Context, params SearchParams) (*Page[Lead], error) {
	return searchRecords(ctx, c, leadsModule, params, "", mapLead)
}

// ConvertLead turns a lead into a contact plus optional account and deal.
func (c *Client) ConvertLead(ctx context.Context, id string, in LeadConvertInput) (*LeadConversion, error) {
	body := map[string]interface{}{"data": []LeadConvertInput{in}}

	var resp struct {
		Data []Record `json:"data"`
	}
	if err := c.send(ctx, http.MethodPost, leadsModule.recordPath(id)+"/actions/convert", body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, NewAPIError("Failed to convert lead", 400)
	}

	r := resp.Data[0]
	conv := &LeadConversion{
		Contact: stringOrRefID(r, "Contacts"),
		Account: stringOrRefID(r, "Accounts"),
		Deal:    stringOrRefID(r, "Deals"),
	}
	c.logger.Info("Converted lead",
		zap.String("lead_id", id),
		zap.String("contact_id", conv.Contact))
	return conv, nil
}
