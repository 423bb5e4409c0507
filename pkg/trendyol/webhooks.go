package trendyol

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Webhooks lists the seller's webhook subscriptions.
func (c *Client) Webhooks(ctx context.Context) Response[[]Webhook] {
	return list[Webhook](ctx, c, c.sellerRequest(http.MethodGet, RouteWebhooks, nil, nil), "webhooks")
}

// CreateWebhook registers a webhook. Any ID on w is ignored.
func (c *Client) CreateWebhook(ctx context.Context, w Webhook) (Response[Webhook], error) {
	if err := requireValue(w.URL, "url"); err != nil {
		return Response[Webhook]{}, err
	}
	w.ID = ""
	req := c.sellerRequest(http.MethodPost, RouteWebhooks, nil, nil).withBody(w)
	return send[Webhook](ctx, c, req), nil
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID ID) (Response[json.RawMessage], error) {
	if err := requireValue(webhookID, "webhookId"); err != nil {
		return Response[json.RawMessage]{}, err
	}
	req := c.sellerRequest(http.MethodDelete, RouteWebhookByID, Params{"webhookId": url.PathEscape(webhookID.String())}, nil)
	return send[json.RawMessage](ctx, c, req), nil
}
