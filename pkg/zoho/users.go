package zoho

import (
	"context"
	"fmt"
)

// User types accepted by ListUsers.
const (
	UsersAll         = "AllUsers"
	UsersActive      = "ActiveUsers"
	UsersAdmin       = "AdminUsers"
	UsersCurrentUser = "CurrentUser"
)

// UserRef is a lookup onto a user, role or profile.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      *UserRef `json:"role,omitempty"`
	Profile   *UserRef `json:"profile,omitempty"`
	Status    string   `json:"status,omitempty"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Mobile    string   `json:"mobile,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Street    string   `json:"street,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Country   string   `json:"country,omitempty"`
	TimeZone  string   `json:"timeZone,omitempty"`
	Language  string   `json:"language,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Default     bool   `json:"default"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ReportingTo *UserRef `json:"reportingTo,omitempty"`
	Description string   `json:"description,omitempty"`
}

func mapUser(r Record) User {
	u := User{
		ID:        r.ID(),
		Name:      r.String("full_name"),
		Email:     r.String("email"),
		Status:    r.String("status"),
		FirstName: r.String("first_name"),
		LastName:  r.String("last_name"),
		Mobile:    r.String("mobile"),
		Phone:     r.String("phone"),
		Street:    r.String("street"),
		City:      r.String("city"),
		State:     r.String("state"),
		Country:   r.String("country"),
		TimeZone:  r.String("time_zone"),
		Language:  r.String("language"),
		CreatedAt: r.String("created_time"),
		UpdatedAt: r.String("Modified_Time"),
	}
	if u.UpdatedAt == "" {
		u.UpdatedAt = r.String("modified_time")
	}
	u.Role = userRef(r, "role")
	u.Profile = userRef(r, "profile")
	return u
}

func userRef(r Record, key string) *UserRef {
	obj := r.Object(key)
	if obj == nil {
		return nil
	}
	return &UserRef{ID: obj.ID(), Name: obj.String("name")}
}

type usersResponse struct {
	Users []Record `json:"users"`
}

// ListUsers lists users, optionally restricted to one of the Users* types.
func (c *Client) ListUsers(ctx context.Context, userType string) ([]User, error) {
	var query map[string]string
	if userType != "" {
		query = map[string]string{"type": userType}
	}
	var resp usersResponse
	if err := c.get(ctx, apiPrefix+"/users", query, &resp); err != nil {
		return nil, err
	}
	return mapRecords(resp.Users, mapUser), nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var resp usersResponse
	if err := c.get(ctx, apiPrefix+"/users/"+id, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Users) == 0 {
		return nil, NewAPIError(fmt.Sprintf("User not found: %s", id), 404)
	}
	u := mapUser(resp.Users[0])
	return &u, nil
}

// GetCurrentUser returns the user the credentials belong to.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	users, err := c.ListUsers(ctx, UsersCurrentUser)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, NewAPIError("Current user not found", 404)
	}
	return &users[0], nil
}

func mapProfile(r Record) Profile {
	p := Profile{
		ID:          r.ID(),
		Name:        r.String("name"),
		Description: r.String("description"),
		CreatedAt:   r.String("created_time"),
	}
	if d := r.Bool("default"); d != nil {
		p.Default = *d
	}
	return p
}

func (c *Client) ListProfiles(ctx context.Context) ([]Profile, error) {
	var resp struct {
		Profiles []Record `json:"profiles"`
	}
	if err := c.get(ctx, settingsPrefix+"/profiles", nil, &resp); err != nil {
		return nil, err
	}
	return mapRecords(resp.Profiles, mapProfile), nil
}

func (c *Client) GetProfile(ctx context.Context, id string) (*Profile, error) {
	var resp struct {
		Profiles []Record `json:"profiles"`
	}
	if err := c.get(ctx, settingsPrefix+"/profiles/"+id, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Profiles) == 0 {
		return nil, NewAPIError(fmt.Sprintf("Profile not found: %s", id), 404)
	}
	p := mapProfile(resp.Profiles[0])
	return &p, nil
}

func mapRole(r Record) Role {
	return Role{
		ID:          r.ID(),
		Name:        r.String("name"),
		ReportingTo: userRef(r, "reporting_to"),
		Description: r.String("description"),
	}
}

func (c *Client) ListRoles(ctx context.Context) ([]Role, error) {
	var resp struct {
		Roles []Record `json:"roles"`
	}
	if err := c.get(ctx, settingsPrefix+"/roles", nil, &resp); err != nil {
		return nil, err
	}
	return mapRecords(resp.Roles, mapRole), nil
}

func (c *Client) GetRole(ctx context.Context, id string) (*Role, error) {
	var resp struct {
		Roles []Record `json:"roles"`
	}
	if err := c.get(ctx, settingsPrefix+"/roles/"+id, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Roles) == 0 {
		return nil, NewAPIError(fmt.Sprintf("Role not found: %s", id), 404)
	}
	r := mapRole(resp.Roles[0])
	return &r, nil
}
