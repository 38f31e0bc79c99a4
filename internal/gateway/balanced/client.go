// Package balanced is an HTTP client for the payment gateway's REST API,
// implementing the ports.GatewayClient surface the services consume.
package balanced

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/billyhq/billing_backend/internal/core/ports"
)

// Client talks to the gateway over HTTP with basic auth (API key as user).
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.RWMutex
	apiKey string
}

// NewClient creates a gateway client against baseURL. The API key is set
// later via Configure.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

var _ ports.GatewayClient = (*Client)(nil)

// Configure implements ports.GatewayClient.
func (c *Client) Configure(apiKey string) {
	c.mu.Lock()
	c.apiKey = apiKey
	c.mu.Unlock()
}

type eventEnvelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Entity     struct {
		Status string            `json:"status"`
		Meta   map[string]string `json:"meta"`
	} `json:"entity"`
}

type resourceEnvelope struct {
	URI    string `json:"uri"`
	Status string `json:"status"`
}

type resourcePage struct {
	Items []resourceEnvelope `json:"items"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	req.SetBasicAuth(c.apiKey, "")
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("gateway responded %d to %s %s: %s", resp.StatusCode, method, path, payload)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}
	return nil
}

// FetchEvent implements ports.GatewayClient.
func (c *Client) FetchEvent(ctx context.Context, eventID string) (*ports.GatewayEvent, error) {
	var env eventEnvelope
	if err := c.do(ctx, http.MethodGet, "/v1/events/"+url.PathEscape(eventID), nil, &env); err != nil {
		return nil, err
	}
	return &ports.GatewayEvent{
		ID:           env.ID,
		Type:         env.Type,
		OccurredAt:   env.OccurredAt,
		EntityStatus: env.Entity.Status,
		EntityMeta:   env.Entity.Meta,
	}, nil
}

// QueryResourcesByTransactionID implements ports.GatewayClient.
func (c *Client) QueryResourcesByTransactionID(ctx context.Context, kind ports.ResourceKind, transactionID string) ([]ports.GatewayResource, error) {
	q := url.Values{}
	q.Set("meta.billing.transaction_id", transactionID)
	var page resourcePage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/%s?%s", kind, q.Encode()), nil, &page); err != nil {
		return nil, err
	}
	resources := make([]ports.GatewayResource, len(page.Items))
	for i, item := range page.Items {
		resources[i] = ports.GatewayResource{URI: item.URI, Status: item.Status}
	}
	return resources, nil
}

// FetchResource implements ports.GatewayClient. The resource URI already
// identifies its collection, so kind is only a sanity hint here.
func (c *Client) FetchResource(ctx context.Context, kind ports.ResourceKind, uri string) (*ports.GatewayResource, error) {
	var env resourceEnvelope
	if err := c.do(ctx, http.MethodGet, uri, nil, &env); err != nil {
		return nil, err
	}
	return &ports.GatewayResource{URI: env.URI, Status: env.Status}, nil
}

// CreateCustomer implements ports.GatewayClient.
func (c *Client) CreateCustomer(ctx context.Context, meta map[string]string) (*ports.GatewayResource, error) {
	var env resourceEnvelope
	body := map[string]any{"meta": meta}
	if err := c.do(ctx, http.MethodPost, "/v1/customers", body, &env); err != nil {
		return nil, err
	}
	return &ports.GatewayResource{URI: env.URI, Status: env.Status}, nil
}

// AddCard implements ports.GatewayClient.
func (c *Client) AddCard(ctx context.Context, customerURI, cardURI string) error {
	body := map[string]any{"card_uri": cardURI}
	return c.do(ctx, http.MethodPut, customerURI, body, nil)
}

// AddBankAccount implements ports.GatewayClient.
func (c *Client) AddBankAccount(ctx context.Context, customerURI, bankAccountURI string) error {
	body := map[string]any{"bank_account_uri": bankAccountURI}
	return c.do(ctx, http.MethodPut, customerURI, body, nil)
}

func chargeBody(params ports.ChargeParams) map[string]any {
	body := map[string]any{
		"amount":      params.AmountCents,
		"description": params.Description,
		"meta":        params.Meta,
	}
	if params.AppearsOnStatementAs != "" {
		body["appears_on_statement_as"] = params.AppearsOnStatementAs
	}
	if params.SourceURI != "" {
		body["source_uri"] = params.SourceURI
	}
	if params.DestinationURI != "" {
		body["destination_uri"] = params.DestinationURI
	}
	return body
}

// Debit implements ports.GatewayClient.
func (c *Client) Debit(ctx context.Context, customerURI string, params ports.ChargeParams) (*ports.GatewayResource, error) {
	var env resourceEnvelope
	if err := c.do(ctx, http.MethodPost, customerURI+"/debits", chargeBody(params), &env); err != nil {
		return nil, err
	}
	return &ports.GatewayResource{URI: env.URI, Status: env.Status}, nil
}

// Credit implements ports.GatewayClient.
func (c *Client) Credit(ctx context.Context, customerURI string, params ports.ChargeParams) (*ports.GatewayResource, error) {
	var env resourceEnvelope
	if err := c.do(ctx, http.MethodPost, customerURI+"/credits", chargeBody(params), &env); err != nil {
		return nil, err
	}
	return &ports.GatewayResource{URI: env.URI, Status: env.Status}, nil
}

// Refund implements ports.GatewayClient.
func (c *Client) Refund(ctx context.Context, debitURI string, params ports.ChargeParams) (*ports.GatewayResource, error) {
	var env resourceEnvelope
	if err := c.do(ctx, http.MethodPost, debitURI+"/refunds", chargeBody(params), &env); err != nil {
		return nil, err
	}
	return &ports.GatewayResource{URI: env.URI, Status: env.Status}, nil
}

// RegisterCallback implements ports.GatewayClient.
func (c *Client) RegisterCallback(ctx context.Context, callbackURL string) error {
	body := map[string]any{"url": callbackURL}
	return c.do(ctx, http.MethodPost, "/v1/callbacks", body, nil)
}
