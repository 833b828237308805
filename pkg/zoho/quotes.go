package zoho

import "context"

type Quote struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	QuoteNumber string `json:"quoteNumber,omitempty"`
	QuoteStage  string `json:"quoteStage,omitempty"`
	DealID      string `json:"dealId,omitempty"`
	DealName    string `json:"dealName,omitempty"`
	ContactID   string `json:"contactId,omitempty"`
	ContactName string `json:"contactName,omitempty"`
	AccountID   string `json:"accountId,omitempty"`
	AccountName string `json:"accountName,omitempty"`
	ValidUntil  string `json:"validUntil,omitempty"`
	Team        string `json:"team,omitempty"`
	Carrier     string `json:"carrier,omitempty"`

	ShippingStreet  string `json:"shippingStreet,omitempty"`
	ShippingCity    string `json:"shippingCity,omitempty"`
	ShippingState   string `json:"shippingState,omitempty"`
	ShippingCode    string `json:"shippingCode,omitempty"`
	ShippingCountry string `json:"shippingCountry,omitempty"`
	BillingStreet   string `json:"billingStreet,omitempty"`
	BillingCity     string `json:"billingCity,omitempty"`
	BillingState    string `json:"billingState,omitempty"`
	BillingCode     string `json:"billingCode,omitempty"`
	BillingCountry  string `json:"billingCountry,omitempty"`

	Totals
	TermsAndConditions string     `json:"termsAndConditions,omitempty"`
	Description        string     `json:"description,omitempty"`
	QuotedItems        []LineItem `json:"quotedItems,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	UpdatedAt          string     `json:"updatedAt,omitempty"`
}

// QuoteInput line items are only sent on create.
type QuoteInput struct {
	Subject            *string         `json:"subject,omitempty"`
	DealID             *string         `json:"dealId,omitempty"`
	ContactID          *string         `json:"contactId,omitempty"`
	AccountID          *string         `json:"accountId,omitempty"`
	ValidUntil         *string         `json:"validUntil,omitempty"`
	QuoteStage         *string         `json:"quoteStage,omitempty"`
	TermsAndConditions *string         `json:"termsAndConditions,omitempty"`
	Description        *string         `json:"description,omitempty"`
	QuotedItems        []LineItemInput `json:"quotedItems,omitempty"`
}

var quotesModule = module{apiName: "Quotes", label: "quote"}

var quoteFields = []payloadField[QuoteInput]{
	field("Subject", func(in QuoteInput) interface{} { return opt(in.Subject) }).whenDefined(),
	field("Deal_Name", func(in QuoteInput) interface{} { return opt(in.DealID) }).asRef(),
	field("Contact_Name", func(in QuoteInput) interface{} { return opt(in.ContactID) }).asRef(),
	field("Account_Name", func(in QuoteInput) interface{} { return opt(in.AccountID) }).asRef(),
	field("Valid_Till", func(in QuoteInput) interface{} { return opt(in.ValidUntil) }),
	field("Quote_Stage", func(in QuoteInput) interface{} { return opt(in.QuoteStage) }),
	field("Terms_and_Conditions", func(in QuoteInput) interface{} { return opt(in.TermsAndConditions) }),
	field("Description", func(in QuoteInput) interface{} { return opt(in.Description) }),
	field("Quoted_Items", func(in QuoteInput) interface{} { return lineItemsPayload(in.QuotedItems) }).createOnly(),
}

func mapQuote(r Record) Quote {
	dealID, dealName := r.Ref("Deal_Name")
	contactID, contactName := r.Ref("Contact_Name")
	accountID, accountName := r.Ref("Account_Name")
	return Quote{
		ID:                 r.ID(),
		Subject:            r.String("Subject"),
		QuoteNumber:        r.String("Quote_Number"),
		QuoteStage:         r.String("Quote_Stage"),
		DealID:             dealID,
		DealName:           dealName,
		ContactID:          contactID,
		ContactName:        contactName,
		AccountID:          accountID,
		AccountName:        accountName,
		ValidUntil:         r.String("Valid_Till"),
		Team:               r.String("Team"),
		Carrier:            r.String("Carrier"),
		ShippingStreet:     r.String("Shipping_Street"),
		ShippingCity:       r.String("Shipping_City"),
		ShippingState:      r.String("Shipping_State"),
		ShippingCode:       r.String("Shipping_Code"),
		ShippingCountry:    r.String("Shipping_Country"),
		BillingStreet:      r.String("Billing_Street"),
		BillingCity:        r.String("Billing_City"),
		BillingState:       r.String("Billing_State"),
		BillingCode:        r.String("Billing_Code"),
		BillingCountry:     r.String("Billing_Country"),
		Totals:             mapTotals(r),
		TermsAndConditions: r.String("Terms_and_Conditions"),
		Description:        r.String("Description"),
		QuotedItems:        mapLineItems(r, "Quoted_Items", true),
		CreatedAt:          r.String("Created_Time"),
		UpdatedAt:          r.String("Modified_Time"),
	}
}

func (c *Client) ListQuotes(ctx context.Context, params PageParams) (*Page[Quote], error) {
	return listRecords(ctx, c, quotesModule, params, mapQuote)
}

func (c *Client) GetQuote(ctx context.Context, id string) (*Quote, error) {
	return getRecord(ctx, c, quotesModule, id, mapQuote)
}

func (c *Client) CreateQuote(ctx context.Context, in QuoteInput) (*Quote, error) {
	return createRecord(ctx, c, quotesModule, buildPayload(in, quoteFields, opCreate), mapQuote)
}

func (c *Client) UpdateQuote(ctx context.Context, id string, in QuoteInput) (*Quote, error) {
	return updateRecord(ctx, c, quotesModule, id, buildPayload(in, quoteFields, opUpdate), mapQuote)
}

func (c *Client) DeleteQuote(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, quotesModule, id)
}

func (c *Client) SearchQuotes(ctx context.Context, params SearchParams) (*Page[Quote], error) {
	return searchRecords(ctx, c, quotesModule, params, "", mapQuote)
}
