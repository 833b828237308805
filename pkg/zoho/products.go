package zoho

import "context"

type Product struct {
	ID                string  `json:"id"`
	ProductName       string  `json:"productName"`
	ProductCode       string  `json:"productCode,omitempty"`
	ProductCategory   string  `json:"productCategory,omitempty"`
	Manufacturer      string  `json:"manufacturer,omitempty"`
	VendorName        string  `json:"vendorName,omitempty"`
	ProductActive     *bool   `json:"productActive,omitempty"`
	UnitPrice         float64 `json:"unitPrice,omitempty"`
	SalesStartDate    string  `json:"salesStartDate,omitempty"`
	SalesEndDate      string  `json:"salesEndDate,omitempty"`
	SupportStartDate  string  `json:"supportStartDate,omitempty"`
	SupportExpiryDate string  `json:"supportExpiryDate,omitempty"`
	UsageUnit         string  `json:"usageUnit,omitempty"`
	QuantityInStock   float64 `json:"quantityInStock,omitempty"`
	QuantityInDemand  float64 `json:"quantityInDemand,omitempty"`
	ReorderLevel      float64 `json:"reorderLevel,omitempty"`
	Handler           string  `json:"handler,omitempty"`
	QuantityOrdered   float64 `json:"quantityOrdered,omitempty"`
	Taxable           *bool   `json:"taxable,omitempty"`
	CommissionRate    float64 `json:"commissionRate,omitempty"`
	Description       string  `json:"description,omitempty"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}

type ProductInput struct {
	ProductName     *string  `json:"productName,omitempty"`
	ProductCode     *string  `json:"productCode,omitempty"`
	ProductCategory *string  `json:"productCategory,omitempty"`
	Manufacturer    *string  `json:"manufacturer,omitempty"`
	ProductActive   *bool    `json:"productActive,omitempty"`
	UnitPrice       *float64 `json:"unitPrice,omitempty"`
	UsageUnit       *string  `json:"usageUnit,omitempty"`
	Taxable         *bool    `json:"taxable,omitempty"`
	Description     *string  `json:"description,omitempty"`
}

var productsModule = module{apiName: "Products", label: "product"}

var productFields = []payloadField[ProductInput]{
	field("Product_Name", func(in ProductInput) interface{} { return opt(in.ProductName) }).whenDefined(),
	field("Product_Code", func(in ProductInput) interface{} { return opt(in.ProductCode) }),
	field("Product_Category", func(in ProductInput) interface{} { return opt(in.ProductCategory) }),
	field("Manufacturer", func(in ProductInput) interface{} { return opt(in.Manufacturer) }),
	field("Product_Active", func(in ProductInput) interface{} { return opt(in.ProductActive) }).whenDefined(),
	field("Unit_Price", func(in ProductInput) interface{} { return opt(in.UnitPrice) }).whenDefined(),
	field("Usage_Unit", func(in ProductInput) interface{} { return opt(in.UsageUnit) }),
	field("Taxable", func(in ProductInput) interface{} { return opt(in.Taxable) }).whenDefined(),
	field("Description", func(in ProductInput) interface{} { return opt(in.Description) }),
}

func mapProduct(r Record) Product {
	return Product{
		ID:                r.ID(),
		ProductName:       r.String("Product_Name"),
		ProductCode:       r.String("Product_Code"),
		ProductCategory:   r.String("Product_Category"),
		Manufacturer:      r.String("Manufacturer"),
		VendorName:        r.RefName("Vendor_Name"),
		ProductActive:     r.Bool("Product_Active"),
		UnitPrice:         r.Number("Unit_Price"),
		SalesStartDate:    r.String("Sales_Start_Date"),
		SalesEndDate:      r.String("Sales_End_Date"),
		SupportStartDate:  r.String("Support_Start_Date"),
		SupportExpiryDate: r.String("Support_Expiry_Date"),
		UsageUnit:         r.String("Usage_Unit"),
		QuantityInStock:   r.Number("Qty_in_Stock"),
		QuantityInDemand:  r.Number("Qty_in_Demand"),
		ReorderLevel:      r.Number("Reorder_Level"),
		Handler:           r.RefName("Handler"),
		QuantityOrdered:   r.Number("Qty_Ordered"),
		Taxable:           r.Bool("Taxable"),
		CommissionRate:    r.Number("Commission_Rate"),
		Description:       r.String("Description"),
		CreatedAt:         r.String("Created_Time"),
		UpdatedAt:         r.String("Modified_Time"),
	}
}

func (c *Client) ListProducts(ctx context.Context, params PageParams) (*Page[Product], error) {
	return listRecords(ctx, c, productsModule, params, mapProduct)
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	return getRecord(ctx, c, productsModule, id, mapProduct)
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	return createRecord(ctx, c, productsModule, buildPayload(in, productFields, opCreate), mapProduct)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (*Product, error) {
	return updateRecord(ctx, c, productsModule, id, buildPayload(in, productFields, opUpdate), mapProduct)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, productsModule, id)
}

func (c *Client) SearchProducts(ctx context.Context, params SearchParams) (*Page[Product], error) {
	return searchRecords(ctx, c, productsModule, params, "", mapProduct)
}
