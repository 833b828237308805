package zoho

import (
	"context"
	"fmt"
)

// Contact is a person record.
type Contact struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	MobilePhone string `json:"mobilePhone,omitempty"`
	Title       string `json:"title,omitempty"`
	Department  string `json:"department,omitempty"`
	CompanyID   string `json:"companyId,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Source      string `json:"source,omitempty"`
	OwnerID     string `json:"ownerId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// ContactInput carries create and update values. Nil fields are not sent;
// on update a pointer to "" clears the field.
type ContactInput struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Title     *string `json:"title,omitempty"`
	CompanyID *string `json:"companyId,omitempty"`
	// Source is only applied on create.
	Source *string `json:"source,omitempty"`
}

var contactsModule = module{
	apiName: "Contacts",
	label:   "contact",
	fields:  "First_Name,Last_Name,Full_Name,Email,Phone,Mobile,Title,Department,Account_Name,Lead_Source,Owner,Created_Time,Modified_Time",
}

var contactFields = []payloadField[ContactInput]{
	field("First_Name", func(in ContactInput) interface{} { return opt(in.FirstName) }),
	field("Last_Name", func(in ContactInput) interface{} { return opt(in.LastName) }),
	field("Email", func(in ContactInput) interface{} { return opt(in.Email) }),
	field("Phone", func(in ContactInput) interface{} { return opt(in.Phone) }),
	field("Title", func(in ContactInput) interface{} { return opt(in.Title) }),
	field("Account_Name", func(in ContactInput) interface{} { return opt(in.CompanyID) }),
	field("Lead_Source", func(in ContactInput) interface{} { return opt(in.Source) }).createOnly(),
}

func mapContact(r Record) Contact {
	companyID, companyName := r.Ref("Account_Name")
	return Contact{
		ID:          r.ID(),
		FirstName:   r.String("First_Name"),
		LastName:    r.String("Last_Name"),
		FullName:    r.String("Full_Name"),
		Email:       r.String("Email"),
		Phone:       r.String("Phone"),
		MobilePhone: r.String("Mobile"),
		Title:       r.String("Title"),
		Department:  r.String("Department"),
		CompanyID:   companyID,
		CompanyName: companyName,
		Source:      r.String("Lead_Source"),
		OwnerID:     r.RefID("Owner"),
		CreatedAt:   r.String("Created_Time"),
		UpdatedAt:   r.String("Modified_Time"),
	}
}

func (c *Client) ListContacts(ctx context.Context, params PageParams) (*Page[Contact], error) {
	return listRecords(ctx, c, contactsModule, params, mapContact)
}

func (c *Client) GetContact(ctx context.Context, id string) (*Contact, error) {
	return getRecord(ctx, c, contactsModule, id, mapContact)
}

func (c *Client) CreateContact(ctx context.Context, in ContactInput) (*Contact, error) {
	return createRecord(ctx, c, contactsModule, buildPayload(in, contactFields, opCreate), mapContact)
}

func (c *Client) UpdateContact(ctx context.Context, id string, in ContactInput) (*Contact, error) {
	return updateRecord(ctx, c, contactsModule, id, buildPayload(in, contactFields, opUpdate), mapContact)
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, contactsModule, id)
}

// SearchContacts matches Query as a word search. An "email" filter, or
// failing that a "phone" filter, adds an exact-match criterion.
func (c *Client) SearchContacts(ctx context.Context, params SearchParams) (*Page[Contact], error) {
	return searchRecords(ctx, c, contactsModule, params, contactCriteria(params.Filters), mapContact)
}

func contactCriteria(filters []Filter) string {
	if f, ok := findFilter(filters, "email"); ok {
		return fmt.Sprintf("(Email:equals:%s)", f.Value)
	}
	if f, ok := findFilter(filters, "phone"); ok {
		return fmt.Sprintf("(Phone:equals:%s)", f.Value)
	}
	return ""
}

func findFilter(filters []Filter, name string) (Filter, bool) {
	for _, f := range filters {
		if f.Field == name {
			return f, true
		}
	}
	return Filter{}, false
}
