package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

/* Ntfy publishes plain text events to an ntfy style topic URL over HTTP.
When disabled every publish is a no-op, so callers never need to check. */
type Ntfy struct {
	baseURL string
	enabled bool
	client  *http.Client
}

func NewNtfy(enableNotifications bool, notificationsBaseURL string, client *http.Client) *Ntfy {
	if client == nil {
		client = &http.Client{}
	}
	return &Ntfy{
		baseURL: notificationsBaseURL,
		enabled: enableNotifications,
		client:  client,
	}
}

func (ntf *Ntfy) FlowerCreated(ctx context.Context, name string, stock int) error {
	message := fmt.Sprintf("New flower created:\nName: %s\nStock: %v", name, stock)
	return ntf.publish(ctx, "flower_created", message)
}

func (ntf *Ntfy) LowStock(ctx context.Context, name string, stock int) error {
	message := fmt.Sprintf("Low stock alert:\nName: %s\nStock: %v", name, stock)
	return ntf.publish(ctx, "low_stock", message)
}

func (ntf *Ntfy) publish(ctx context.Context, topic, message string) error {
	if !ntf.enabled {
		return nil
	}

	url := ntf.baseURL + "/" + topic
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("delivering message to topic (%s): %w", url, err)
	}

	resp, err := ntf.client.Do(req)
	if err != nil {
		return fmt.Errorf("delivering message to topic (%s): %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("delivering message to topic (%s): unexpected status %v", url, resp.StatusCode)
	}

	return nil
}
