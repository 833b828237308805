package zoho

import (
	"context"

	"go.uber.org/zap"
)

// ConnectionStatus reports whether the credentials reach the CRM.
type ConnectionStatus struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

// TestConnection never returns an error; failures are reported in the
// status message.
func (c *Client) TestConnection(ctx context.Context) ConnectionStatus {
	users, err := c.ListUsers(ctx, UsersCurrentUser)
	if err != nil {
		c.logger.Warn("Connection test failed", zap.Error(err))
		return ConnectionStatus{Connected: false, Message: err.Error()}
	}
	if len(users) > 0 {
		name := users[0].Name
		if name == "" {
			name = users[0].Email
		}
		return ConnectionStatus{Connected: true, Message: "Connected as " + name}
	}
	return ConnectionStatus{Connected: true, Message: "Connected to Zoho CRM"}
}
