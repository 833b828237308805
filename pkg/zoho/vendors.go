package zoho

import "context"

type Vendor struct {
	ID          string `json:"id"`
	VendorName  string `json:"vendorName"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	Category    string `json:"category,omitempty"`
	GLAccount   string `json:"glAccount,omitempty"`
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zipCode,omitempty"`
	Country     string `json:"country,omitempty"`
	Description string `json:"description,omitempty"`
	OwnerID     string `json:"ownerId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type VendorInput struct {
	VendorName  *string `json:"vendorName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

var vendorsModule = module{apiName: "Vendors", label: "vendor"}

var vendorFields = []payloadField[VendorInput]{
	field("Vendor_Name", func(in VendorInput) interface{} { return opt(in.VendorName) }).whenDefined(),
	field("Email", func(in VendorInput) interface{} { return opt(in.Email) }),
	field("Phone", func(in VendorInput) interface{} { return opt(in.Phone) }),
	field("Website", func(in VendorInput) interface{} { return opt(in.Website) }),
	field("Category", func(in VendorInput) interface{} { return opt(in.Category) }),
	field("Description", func(in VendorInput) interface{} { return opt(in.Description) }),
}

func mapVendor(r Record) Vendor {
	return Vendor{
		ID:          r.ID(),
		VendorName:  r.String("Vendor_Name"),
		Email:       r.String("Email"),
		Phone:       r.String("Phone"),
		Website:     r.String("Website"),
		Category:    r.String("Category"),
		GLAccount:   r.String("GL_Account"),
		Street:      r.String("Street"),
		City:        r.String("City"),
		State:       r.String("State"),
		ZipCode:     r.String("Zip_Code"),
		Country:     r.String("Country"),
		Description: r.String("Description"),
		OwnerID:     r.RefID("Owner"),
		CreatedAt:   r.String("Created_Time"),
		UpdatedAt:   r.String("Modified_Time"),
	}
}

func (c *Client) ListVendors(ctx context.Context, params PageParams) (*Page[Vendor], error) {
	return listRecords(ctx, c, vendorsModule, params, mapVendor)
}

func (c *Client) GetVendor(ctx context.Context, id string) (*Vendor, error) {
	return getRecord(ctx, c, vendorsModule, id, mapVendor)
}

func (c *Client) CreateVendor(ctx context.Context, in VendorInput) (*Vendor, error) {
	return createRecord(ctx, c, vendorsModule, buildPayload(in, vendorFields, opCreate), mapVendor)
}

func (c *Client) UpdateVendor(ctx context.Context, id string, in VendorInput) (*Vendor, error) {
	return updateRecord(ctx, c, vendorsModule, id, buildPayload(in, vendorFields, opUpdate), mapVendor)
}

func (c *Client) DeleteVendor(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, vendorsModule, id)
}

func (c *Client) SearchVendors(ctx context.Context, params SearchParams) (*Page[Vendor], error) {
	return searchRecords(ctx, c, vendorsModule, params, "", mapVendor)
}
