package zoho

import "context"

// Case is a support ticket.
type Case struct {
	ID               string `json:"id"`
	Subject          string `json:"subject"`
	CaseNumber       string `json:"caseNumber,omitempty"`
	Status           string `json:"status,omitempty"`
	Type             string `json:"type,omitempty"`
	Priority         string `json:"priority,omitempty"`
	Origin           string `json:"origin,omitempty"`
	Reason           string `json:"reason,omitempty"`
	ReportedBy       string `json:"reportedBy,omitempty"`
	AccountID        string `json:"accountId,omitempty"`
	AccountName      string `json:"accountName,omitempty"`
	ContactID        string `json:"contactId,omitempty"`
	ContactName      string `json:"contactName,omitempty"`
	DealID           string `json:"dealId,omitempty"`
	DealName         string `json:"dealName,omitempty"`
	ProductID        string `json:"productId,omitempty"`
	ProductName      string `json:"productName,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Solution         string `json:"solution,omitempty"`
	InternalComments string `json:"internalComments,omitempty"`
	Description      string `json:"description,omitempty"`
	OwnerID          string `json:"ownerId,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// CaseInput links (AccountID, ContactID) are create-only; Solution and
// InternalComments are update-only.
type CaseInput struct {
	Subject          *string `json:"subject,omitempty"`
	Status           *string `json:"status,omitempty"`
	Type             *string `json:"type,omitempty"`
	Priority         *string `json:"priority,omitempty"`
	Origin           *string `json:"origin,omitempty"`
	AccountID        *string `json:"accountId,omitempty"`
	ContactID        *string `json:"contactId,omitempty"`
	Solution         *string `json:"solution,omitempty"`
	InternalComments *string `json:"internalComments,omitempty"`
	Description      *string `json:"description,omitempty"`
}

var casesModule = module{apiName: "Cases", label: "case"}

var caseFields = []payloadField[CaseInput]{
	field("Subject", func(in CaseInput) interface{} { return opt(in.Subject) }).whenDefined(),
	field("Status", func(in CaseInput) interface{} { return opt(in.Status) }),
	field("Type", func(in CaseInput) interface{} { return opt(in.Type) }),
	field("Priority", func(in CaseInput) interface{} { return opt(in.Priority) }),
	field("Case_Origin", func(in CaseInput) interface{} { return opt(in.Origin) }),
	field("Account_Name", func(in CaseInput) interface{} { return opt(in.AccountID) }).asRef().createOnly(),
	field("Contact_Name", func(in CaseInput) interface{} { return opt(in.ContactID) }).asRef().createOnly(),
	field("Solution", func(in CaseInput) interface{} { return opt(in.Solution) }).updateOnly(),
	field("Internal_Comments", func(in CaseInput) interface{} { return opt(in.InternalComments) }).updateOnly(),
	field("Description", func(in CaseInput) interface{} { return opt(in.Description) }),
}

func mapCase(r Record) Case {
	accountID, accountName := r.Ref("Account_Name")
	contactID, contactName := r.Ref("Contact_Name")
	dealID, dealName := r.Ref("Deal_Name")
	productID, productName := r.Ref("Product_Name")
	return Case{
		ID:               r.ID(),
		Subject:          r.String("Subject"),
		CaseNumber:       r.String("Case_Number"),
		Status:           r.String("Status"),
		Type:             r.String("Type"),
		Priority:         r.String("Priority"),
		Origin:           r.String("Case_Origin"),
		Reason:           r.String("Case_Reason"),
		ReportedBy:       r.String("Reported_By"),
		AccountID:        accountID,
		AccountName:      accountName,
		ContactID:        contactID,
		ContactName:      contactName,
		DealID:           dealID,
		DealName:         dealName,
		ProductID:        productID,
		ProductName:      productName,
		Email:            r.String("Email"),
		Phone:            r.String("Phone"),
		Solution:         r.String("Solution"),
		InternalComments: r.String("Internal_Comments"),
		Description:      r.String("Description"),
		OwnerID:          r.RefID("Owner"),
		CreatedAt:        r.String("Created_Time"),
		UpdatedAt:        r.String("Modified_Time"),
	}
}

func (c *Client) ListCases(ctx context.Context, params PageParams) (*Page[Case], error) {
	return listRecords(ctx, c, casesModule, params, mapCase)
}

func (c *Client) GetCase(ctx context.Context, id string) (*Case, error) {
	return getRecord(ctx, c, casesModule, id, mapCase)
}

func (c *Client) CreateCase(ctx context.Context, in CaseInput) (*Case, error) {
	return createRecord(ctx, c, casesModule, buildPayload(in, caseFields, opCreate), mapCase)
}

func (c *Client) UpdateCase(ctx context.Context, id string, in CaseInput) (*Case, error) {
	return updateRecord(ctx, c, casesModule, id, buildPayload(in, caseFields, opUpdate), mapCase)
}

func (c *Client) DeleteCase(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, casesModule, id)
}

func (c *Client) SearchCases(ctx context.Context, params SearchParams) (*Page[Case], error) {
	return searchRecords(ctx, c, casesModule, params, "", mapCase)
}
