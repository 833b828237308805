package zoho

import "context"

// Pricing models.
const (
	PricingFlat         = "Flat"
	PricingDifferential = "Differential"
)

type PriceBook struct {
	ID             string         `json:"id"`
	PriceBookName  string         `json:"priceBookName"`
	PricingModel   string         `json:"pricingModel,omitempty"`
	PricingDetails []PricingRange `json:"pricingDetails,omitempty"`
	Active         *bool          `json:"active,omitempty"`
	Description    string         `json:"description,omitempty"`
	CreatedAt      string         `json:"createdAt,omitempty"`
	UpdatedAt      string         `json:"updatedAt,omitempty"`
}

type PricingRange struct {
	ID        string  `json:"id,omitempty"`
	FromRange float64 `json:"fromRange"`
	ToRange   float64 `json:"toRange"`
	Discount  float64 `json:"discount"`
}

type PriceBookInput struct {
	PriceBookName *string `json:"priceBookName,omitempty"`
	PricingModel  *string `json:"pricingModel,omitempty"`
	Active        *bool   `json:"active,omitempty"`
	Description   *string `json:"description,omitempty"`
}

var priceBooksModule = module{apiName: "Price_Books", label: "price book"}

var priceBookFields = []payloadField[PriceBookInput]{
	field("Price_Book_Name", func(in PriceBookInput) interface{} { return opt(in.PriceBookName) }).whenDefined(),
	field("Pricing_Model", func(in PriceBookInput) interface{} { return opt(in.PricingModel) }),
	field("Active", func(in PriceBookInput) interface{} { return opt(in.Active) }).whenDefined(),
	field("Description", func(in PriceBookInput) interface{} { return opt(in.Description) }),
}

func mapPriceBook(r Record) PriceBook {
	pb := PriceBook{
		ID:            r.ID(),
		PriceBookName: r.String("Price_Book_Name"),
		PricingModel:  r.String("Pricing_Model"),
		Active:        r.Bool("Active"),
		Description:   r.String("Description"),
		CreatedAt:     r.String("Created_Time"),
		UpdatedAt:     r.String("Modified_Time"),
	}
	for _, d := range r.Records("Pricing_Details") {
		pb.PricingDetails = append(pb.PricingDetails, PricingRange{
			ID:        d.ID(),
			FromRange: d.Number("from_range"),
			ToRange:   d.Number("to_range"),
			Discount:  d.Number("discount"),
		})
	}
	return pb
}

func (c *Client) ListPriceBooks(ctx context.Context, params PageParams) (*Page[PriceBook], error) {
	return listRecords(ctx, c, priceBooksModule, params, mapPriceBook)
}

func (c *Client) GetPriceBook(ctx context.Context, id string) (*PriceBook, error) {
	return getRecord(ctx, c, priceBooksModule, id, mapPriceBook)
}

func (c *Client) CreatePriceBook(ctx context.Context, in PriceBookInput) (*PriceBook, error) {
	return createRecord(ctx, c, priceBooksModule, buildPayload(in, priceBookFields, opCreate), mapPriceBook)
}

func (c *Client) UpdatePriceBook(ctx context.Context, id string, in PriceBookInput) (*PriceBook, error) {
	return updateRecord(ctx, c, priceBooksModule, id, buildPayload(in, priceBookFields, opUpdate), mapPriceBook)
}

func (c *Client) DeletePriceBook(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, priceBooksModule, id)
}
