package zoho

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

const watchPath = apiPrefix + "/actions/watch"

// NotificationChannel is a webhook subscription on record events such as
// "Deals.create".
type NotificationChannel struct {
	ChannelID     string   `json:"channel_id"`
	ChannelExpiry string   `json:"channel_expiry,omitempty"`
	Events        []string `json:"events"`
	Token         string   `json:"token,omitempty"`
	NotifyURL     string   `json:"notify_url"`
	ResourceURI   string   `json:"resource_uri,omitempty"`
	ResourceID    string   `json:"resource_id,omitempty"`
	ResourceName  string   `json:"resource_name,omitempty"`
}

type watchRequest struct {
	Watch []NotificationChannel `json:"watch"`
}

type watchDelete struct {
	ChannelID    string `json:"channel_id"`
	DeleteEvents bool   `json:"_delete_events"`
}

type watchResponse struct {
	Watch []NotificationChannel `json:"watch"`
}

func (c *Client) EnableNotifications(ctx context.Context, channels []NotificationChannel) ([]NotificationChannel, error) {
	watch := make([]NotificationChannel, 0, len(channels))
	for _, ch := range channels {
		watch = append(watch, NotificationChannel{
			ChannelID:     ch.ChannelID,
			ChannelExpiry: ch.ChannelExpiry,
			Events:        ch.Events,
			Token:         ch.Token,
			NotifyURL:     ch.NotifyURL,
		})
	}

	var resp watchResponse
	if err := c.send(ctx, http.MethodPost, watchPath, watchRequest{Watch: watch}, &resp); err != nil {
		return nil, err
	}
	c.logger.Info("Enabled notifications", zap.Int("channels", len(channels)))
	return channelsOrEmpty(resp.Watch), nil
}

func (c *Client) DisableNotifications(ctx context.Context, channelIDs []string) error {
	watch := make([]watchDelete, 0, len(channelIDs))
	for _, id := range channelIDs {
		watch = append(watch, watchDelete{ChannelID: id, DeleteEvents: true})
	}
	body := map[string]interface{}{"watch": watch}
	if err := c.send(ctx, http.MethodPatch, watchPath, body, nil); err != nil {
		return err
	}
	c.logger.Info("Disabled notifications", zap.Int("channels", len(channelIDs)))
	return nil
}

func (c *Client) GetNotificationDetails(ctx context.Context) ([]NotificationChannel, error) {
	var resp watchResponse
	if err := c.get(ctx, watchPath, nil, &resp); err != nil {
		return nil, err
	}
	return channelsOrEmpty(resp.Watch), nil
}

func channelsOrEmpty(ch []NotificationChannel) []NotificationChannel {
	if ch == nil {
		return []NotificationChannel{}
	}
	return ch
}
