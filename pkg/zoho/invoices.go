package zoho

import "context"

type Invoice struct {
	ID              string  `json:"id"`
	Subject         string  `json:"subject"`
	InvoiceNumber   string  `json:"invoiceNumber,omitempty"`
	Status          string  `json:"status,omitempty"`
	SalesOrderID    string  `json:"salesOrderId,omitempty"`
	SalesOrderName  string  `json:"salesOrderName,omitempty"`
	DealID          string  `json:"dealId,omitempty"`
	DealName        string  `json:"dealName,omitempty"`
	ContactID       string  `json:"contactId,omitempty"`
	ContactName     string  `json:"contactName,omitempty"`
	AccountID       string  `json:"accountId,omitempty"`
	AccountName     string  `json:"accountName,omitempty"`
	InvoiceDate     string  `json:"invoiceDate,omitempty"`
	DueDate         string  `json:"dueDate,omitempty"`
	SalesCommission float64 `json:"salesCommission,omitempty"`
	ExciseDuty      float64 `json:"exciseDuty,omitempty"`
	Totals
	InvoicedItems      []LineItem `json:"invoicedItems,omitempty"`
	TermsAndConditions string     `json:"termsAndConditions,omitempty"`
	Description        string     `json:"description,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	UpdatedAt          string     `json:"updatedAt,omitempty"`
}

type InvoiceInput struct {
	Subject       *string         `json:"subject,omitempty"`
	SalesOrderID  *string         `json:"salesOrderId,omitempty"`
	DealID        *string         `json:"dealId,omitempty"`
	ContactID     *string         `json:"contactId,omitempty"`
	AccountID     *string         `json:"accountId,omitempty"`
	Status        *string         `json:"status,omitempty"`
	InvoiceDate   *string         `json:"invoiceDate,omitempty"`
	DueDate       *string         `json:"dueDate,omitempty"`
	Description   *string         `json:"description,omitempty"`
	InvoicedItems []LineItemInput `json:"invoicedItems,omitempty"`
}

var invoicesModule = module{apiName: "Invoices", label: "invoice"}

var invoiceFields = []payloadField[InvoiceInput]{
	field("Subject", func(in InvoiceInput) interface{} { return opt(in.Subject) }).whenDefined(),
	field("Sales_Order", func(in InvoiceInput) interface{} { return opt(in.SalesOrderID) }).asRef().createOnly(),
	field("Deal_Name", func(in InvoiceInput) interface{} { return opt(in.DealID) }).asRef().createOnly(),
	field("Contact_Name", func(in InvoiceInput) interface{} { return opt(in.ContactID) }).asRef().createOnly(),
	field("Account_Name", func(in InvoiceInput) interface{} { return opt(in.AccountID) }).asRef().createOnly(),
	field("Status", func(in InvoiceInput) interface{} { return opt(in.Status) }),
	field("Invoice_Date", func(in InvoiceInput) interface{} { return opt(in.InvoiceDate) }),
	field("Due_Date", func(in InvoiceInput) interface{} { return opt(in.DueDate) }),
	field("Description", func(in InvoiceInput) interface{} { return opt(in.Description) }),
	field("Invoiced_Items", func(in InvoiceInput) interface{} { return lineItemsPayload(in.InvoicedItems) }).createOnly(),
}

func mapInvoice(r Record) Invoice {
	salesOrderID, salesOrderName := r.Ref("Sales_Order")
	dealID, dealName := r.Ref("Deal_Name")
	contactID, contactName := r.Ref("Contact_Name")
	accountID, accountName := r.Ref("Account_Name")
	return Invoice{
		ID:                 r.ID(),
		Subject:            r.String("Subject"),
		InvoiceNumber:      r.String("Invoice_Number"),
		Status:             r.String("Status"),
		SalesOrderID:       salesOrderID,
		SalesOrderName:     salesOrderName,
		DealID:             dealID,
		DealName:           dealName,
		ContactID:          contactID,
		ContactName:        contactName,
		AccountID:          accountID,
		AccountName:        accountName,
		InvoiceDate:        r.String("Invoice_Date"),
		DueDate:            r.String("Due_Date"),
		SalesCommission:    r.Number("Sales_Commission"),
		ExciseDuty:         r.Number("Excise_Duty"),
		Totals:             mapTotals(r),
		InvoicedItems:      mapLineItems(r, "Invoiced_Items", false),
		TermsAndConditions: r.String("Terms_and_Conditions"),
		Description:        r.String("Description"),
		CreatedAt:          r.String("Created_Time"),
		UpdatedAt:          r.String("Modified_Time"),
	}
}

func (c *Client) ListInvoices(ctx context.Context, params PageParams) (*Page[Invoice], error) {
	return listRecords(ctx, c, invoicesModule, params, mapInvoice)
}

func (c *Client) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	return getRecord(ctx, c, invoicesModule, id, mapInvoice)
}

func (c *Client) CreateInvoice(ctx context.Context, in InvoiceInput) (*Invoice, error) {
	return createRecord(ctx, c, invoicesModule, buildPayload(in, invoiceFields, opCreate), mapInvoice)
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, in InvoiceInput) (*Invoice, error) {
	return updateRecord(ctx, c, invoicesModule, id, buildPayload(in, invoiceFields, opUpdate), mapInvoice)
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, invoicesModule, id)
}

func (c *Client) SearchInvoices(ctx context.Context, params SearchParams) (*Page[Invoice], error) {
	return searchRecords(ctx, c, invoicesModule, params, "", mapInvoice)
}
