package zoho

import "context"

// Company is an organisation record, stored by the vendor as an Account.
type Company struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Website           string   `json:"website,omitempty"`
	Industry          string   `json:"industry,omitempty"`
	Description       string   `json:"description,omitempty"`
	NumberOfEmployees int      `json:"numberOfEmployees,omitempty"`
	AnnualRevenue     float64  `json:"annualRevenue,omitempty"`
	Type              string   `json:"type,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Address           *Address `json:"address,omitempty"`
	OwnerID           string   `json:"ownerId,omitempty"`
	CreatedAt         string   `json:"createdAt,omitempty"`
	UpdatedAt         string   `json:"updatedAt,omitempty"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

type CompanyInput struct {
	Name              *string       `json:"name,omitempty"`
	Domain            *string       `json:"domain,omitempty"`
	Industry          *string       `json:"industry,omitempty"`
	Description       *string       `json:"description,omitempty"`
	NumberOfEmployees *int          `json:"numberOfEmployees,omitempty"`
	Type              *string       `json:"type,omitempty"`
	Phone             *string       `json:"phone,omitempty"`
	Address           *AddressInput `json:"address,omitempty"`
}

type AddressInput struct {
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
}

var companiesModule = module{
	apiName: "Accounts",
	label:   "company",
	fields:  "Account_Name,Website,Industry,Description,Employees,Annual_Revenue,Account_Type,Phone,Billing_Street,Billing_City,Billing_State,Billing_Country,Owner,Created_Time,Modified_Time",
}

func addressPart(get func(*AddressInput) *string) func(CompanyInput) interface{} {
	return func(in CompanyInput) interface{} {
		if in.Address == nil {
			return nil
		}
		return opt(get(in.Address))
	}
}

var companyFields = []payloadField[CompanyInput]{
	field("Account_Name", func(in CompanyInput) interface{} { return opt(in.Name) }),
	field("Website", func(in CompanyInput) interface{} { return opt(in.Domain) }),
	field("Industry", func(in CompanyInput) interface{} { return opt(in.Industry) }),
	field("Description", func(in CompanyInput) interface{} { return opt(in.Description) }),
	field("Employees", func(in CompanyInput) interface{} { return opt(in.NumberOfEmployees) }),
	field("Account_Type", func(in CompanyInput) interface{} { return opt(in.Type) }),
	field("Phone", func(in CompanyInput) interface{} { return opt(in.Phone) }),
	field("Billing_Street", addressPart(func(a *AddressInput) *string { return a.Street })),
	field("Billing_City", addressPart(func(a *AddressInput) *string { return a.City })),
	field("Billing_State", addressPart(func(a *AddressInput) *string { return a.State })),
	field("Billing_Country", addressPart(func(a *AddressInput) *string { return a.Country })),
}

func mapCompany(r Record) Company {
	co := Company{
		ID:                r.ID(),
		Name:              r.String("Account_Name"),
		Website:           r.String("Website"),
		Industry:          r.String("Industry"),
		Description:       r.String("Description"),
		NumberOfEmployees: r.Int("Employees"),
		AnnualRevenue:     r.Number("Annual_Revenue"),
		Type:              r.String("Account_Type"),
		Phone:             r.String("Phone"),
		OwnerID:           r.RefID("Owner"),
		CreatedAt:         r.String("Created_Time"),
		UpdatedAt:         r.String("Modified_Time"),
	}
	if street := r.String("Billing_Street"); street != "" {
		co.Address = &Address{
			Street:  street,
			City:    r.String("Billing_City"),
			State:   r.String("Billing_State"),
			Country: r.String("Billing_Country"),
		}
	}
	return co
}

func (c *Client) ListCompanies(ctx context.Context, params PageParams) (*Page[Company], error) {
	return listRecords(ctx, c, companiesModule, params, mapCompany)
}

func (c *Client) GetCompany(ctx context.Context, id string) (*Company, error) {
	return getRecord(ctx, c, companiesModule, id, mapCompany)
}

func (c *Client) CreateCompany(ctx context.Context, in CompanyInput) (*Company, error) {
	return createRecord(ctx, c, companiesModule, buildPayload(in, companyFields, opCreate), mapCompany)
}

func (c *Client) UpdateCompany(ctx context.Context, id string, in CompanyInput) (*Company, error) {
	return updateRecord(ctx, c, companiesModule, id, buildPayload(in, companyFields, opUpdate), mapCompany)
}
