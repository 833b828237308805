package zoho

import "context"

type SalesOrder struct {
	ID              string  `json:"id"`
	Subject         string  `json:"subject"`
	SONumber        string  `json:"soNumber,omitempty"`
	Status          string  `json:"status,omitempty"`
	DealID          string  `json:"dealId,omitempty"`
	DealName        string  `json:"dealName,omitempty"`
	ContactID       string  `json:"contactId,omitempty"`
	ContactName     string  `json:"contactName,omitempty"`
	AccountID       string  `json:"accountId,omitempty"`
	AccountName     string  `json:"accountName,omitempty"`
	QuoteID         string  `json:"quoteId,omitempty"`
	QuoteName       string  `json:"quoteName,omitempty"`
	DueDate         string  `json:"dueDate,omitempty"`
	Carrier         string  `json:"carrier,omitempty"`
	Pending         string  `json:"pending,omitempty"`
	ExciseDuty      float64 `json:"exciseDuty,omitempty"`
	SalesCommission float64 `json:"salesCommission,omitempty"`
	Totals
	OrderedItems       []LineItem `json:"orderedItems,omitempty"`
	TermsAndConditions string     `json:"termsAndConditions,omitempty"`
	Description        string     `json:"description,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	UpdatedAt          string     `json:"updatedAt,omitempty"`
}

type SalesOrderInput struct {
	Subject      *string         `json:"subject,omitempty"`
	DealID       *string         `json:"dealId,omitempty"`
	ContactID    *string         `json:"contactId,omitempty"`
	AccountID    *string         `json:"accountId,omitempty"`
	QuoteID      *string         `json:"quoteId,omitempty"`
	Status       *string         `json:"status,omitempty"`
	DueDate      *string         `json:"dueDate,omitempty"`
	Description  *string         `json:"description,omitempty"`
	OrderedItems []LineItemInput `json:"orderedItems,omitempty"`
}

type PurchaseOrder struct {
	ID              string  `json:"id"`
	Subject         string  `json:"subject"`
	PONumber        string  `json:"poNumber,omitempty"`
	Status          string  `json:"status,omitempty"`
	VendorID        string  `json:"vendorId,omitempty"`
	VendorName      string  `json:"vendorName,omitempty"`
	ContactID       string  `json:"contactId,omitempty"`
	ContactName     string  `json:"contactName,omitempty"`
	DueDate         string  `json:"dueDate,omitempty"`
	Carrier         string  `json:"carrier,omitempty"`
	RequisitionNo   string  `json:"requisitionNo,omitempty"`
	TrackingNumber  string  `json:"trackingNumber,omitempty"`
	SalesCommission float64 `json:"salesCommission,omitempty"`
	ExciseDuty      float64 `json:"exciseDuty,omitempty"`
	Totals
	OrderedItems       []LineItem `json:"orderedItems,omitempty"`
	TermsAndConditions string     `json:"termsAndConditions,omitempty"`
	Description        string     `json:"description,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	UpdatedAt          string     `json:"updatedAt,omitempty"`
}

type PurchaseOrderInput struct {
	Subject      *string         `json:"subject,omitempty"`
	VendorID     *string         `json:"vendorId,omitempty"`
	ContactID    *string         `json:"contactId,omitempty"`
	Status       *string         `json:"status,omitempty"`
	DueDate      *string         `json:"dueDate,omitempty"`
	Description  *string         `json:"description,omitempty"`
	OrderedItems []LineItemInput `json:"orderedItems,omitempty"`
}

var (
	salesOrdersModule    = module{apiName: "Sales_Orders", label: "sales order"}
	purchaseOrdersModule = module{apiName: "Purchase_Orders", label: "purchase order"}
)

var salesOrderFields = []payloadField[SalesOrderInput]{
	field("Subject", func(in SalesOrderInput) interface{} { return opt(in.Subject) }).whenDefined(),
	field("Deal_Name", func(in SalesOrderInput) interface{} { return opt(in.DealID) }).asRef().createOnly(),
	field("Contact_Name", func(in SalesOrderInput) interface{} { return opt(in.ContactID) }).asRef().createOnly(),
	field("Account_Name", func(in SalesOrderInput) interface{} { return opt(in.AccountID) }).asRef().createOnly(),
	field("Quote_Name", func(in SalesOrderInput) interface{} { return opt(in.QuoteID) }).asRef().createOnly(),
	field("Status", func(in SalesOrderInput) interface{} { return opt(in.Status) }),
	field("Due_Date", func(in SalesOrderInput) interface{} { return opt(in.DueDate) }),
	field("Description", func(in SalesOrderInput) interface{} { return opt(in.Description) }),
	field("Ordered_Items", func(in SalesOrderInput) interface{} { return lineItemsPayload(in.OrderedItems) }).createOnly(),
}

var purchaseOrderFields = []payloadField[PurchaseOrderInput]{
	field("Subject", func(in PurchaseOrderInput) interface{} { return opt(in.Subject) }).whenDefined(),
	field("Vendor_Name", func(in PurchaseOrderInput) interface{} { return opt(in.VendorID) }).asRef().whenDefined(),
	field("Contact_Name", func(in PurchaseOrderInput) interface{} { return opt(in.ContactID) }).asRef().createOnly(),
	field("Status", func(in PurchaseOrderInput) interface{} { return opt(in.Status) }),
	field("Due_Date", func(in PurchaseOrderInput) interface{} { return opt(in.DueDate) }),
	field("Description", func(in PurchaseOrderInput) interface{} { return opt(in.Description) }),
	field("Ordered_Items", func(in PurchaseOrderInput) interface{} { return lineItemsPayload(in.OrderedItems) }).createOnly(),
}

func mapSalesOrder(r Record) SalesOrder {
	dealID, dealName := r.Ref("Deal_Name")
	contactID, contactName := r.Ref("Contact_Name")
	accountID, accountName := r.Ref("Account_Name")
	quoteID, quoteName := r.Ref("Quote_Name")
	return SalesOrder{
		ID:                 r.ID(),
		Subject:            r.String("Subject"),
		SONumber:           r.String("SO_Number"),
		Status:             r.String("Status"),
		DealID:             dealID,
		DealName:           dealName,
		ContactID:          contactID,
		ContactName:        contactName,
		AccountID:          accountID,
		AccountName:        accountName,
		QuoteID:            quoteID,
		QuoteName:          quoteName,
		DueDate:            r.String("Due_Date"),
		Carrier:            r.String("Carrier"),
		Pending:            r.String("Pending"),
		ExciseDuty:         r.Number("Excise_Duty"),
		SalesCommission:    r.Number("Sales_Commission"),
		Totals:             mapTotals(r),
		OrderedItems:       mapLineItems(r, "Ordered_Items", false),
		TermsAndConditions: r.String("Terms_and_Conditions"),
		Description:        r.String("Description"),
		CreatedAt:          r.String("Created_Time"),
		UpdatedAt:          r.String("Modified_Time"),
	}
}

func mapPurchaseOrder(r Record) PurchaseOrder {
	vendorID, vendorName := r.Ref("Vendor_Name")
	contactID, contactName := r.Ref("Contact_Name")
	return PurchaseOrder{
		ID:                 r.ID(),
		Subject:            r.String("Subject"),
		PONumber:           r.String("PO_Number"),
		Status:             r.String("Status"),
		VendorID:           vendorID,
		VendorName:         vendorName,
		ContactID:          contactID,
		ContactName:        contactName,
		DueDate:            r.String("Due_Date"),
		Carrier:            r.String("Carrier"),
		RequisitionNo:      r.String("Requisition_No"),
		TrackingNumber:     r.String("Tracking_Number"),
		SalesCommission:    r.Number("Sales_Commission"),
		ExciseDuty:         r.Number("Excise_Duty"),
		Totals:             mapTotals(r),
		OrderedItems:       mapLineItems(r, "Ordered_Items", false),
		TermsAndConditions: r.String("Terms_and_Conditions"),
		Description:        r.String("Description"),
		CreatedAt:          r.String("Created_Time"),
		UpdatedAt:          r.String("Modified_Time"),
	}
}

func (c *Client) ListSalesOrders(ctx context.Context, params PageParams) (*Page[SalesOrder], error) {
	return listRecords(ctx, c, salesOrdersModule, params, mapSalesOrder)
}

func (c *Client) GetSalesOrder(ctx context.Context, id string) (*SalesOrder, error) {
	return getRecord(ctx, c, salesOrdersModule, id, mapSalesOrder)
}

func (c *Client) CreateSalesOrder(ctx context.Context, in SalesOrderInput) (*SalesOrder, error) {
	return createRecord(ctx, c, salesOrdersModule, buildPayload(in, salesOrderFields, opCreate), mapSalesOrder)
}

func (c *Client) UpdateSalesOrder(ctx context.Context, id string, in SalesOrderInput) (*SalesOrder, error) {
	return updateRecord(ctx, c, salesOrdersModule, id, buildPayload(in, salesOrderFields, opUpdate), mapSalesOrder)
}

func (c *Client) DeleteSalesOrder(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, salesOrdersModule, id)
}

func (c *Client) ListPurchaseOrders(ctx context.Context, params PageParams) (*Page[PurchaseOrder], error) {
	return listRecords(ctx, c, purchaseOrdersModule, params, mapPurchaseOrder)
}

func (c *Client) GetPurchaseOrder(ctx context.Context, id string) (*PurchaseOrder, error) {
	return getRecord(ctx, c, purchaseOrdersModule, id, mapPurchaseOrder)
}

func (c *Client) CreatePurchaseOrder(ctx context.Context, in PurchaseOrderInput) (*PurchaseOrder, error) {
	return createRecord(ctx, c, purchaseOrdersModule, buildPayload(in, purchaseOrderFields, opCreate), mapPurchaseOrder)
}

func (c *Client) UpdatePurchaseOrder(ctx context.Context, id string, in PurchaseOrderInput) (*PurchaseOrder, error) {
	return updateRecord(ctx, c, purchaseOrdersModule, id, buildPayload(in, purchaseOrderFields, opUpdate), mapPurchaseOrder)
}

func (c *Client) DeletePurchaseOrder(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, purchaseOrdersModule, id)
}
