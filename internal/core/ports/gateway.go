package ports

import (
	"context"
	"time"
)

// ResourceKind names the gateway resource collections this application
// touches. The set is closed; the dispatcher selects the kind per operation.
type ResourceKind string

const (
	ResourceDebits       ResourceKind = "debits"
	ResourceCredits      ResourceKind = "credits"
	ResourceRefunds      ResourceKind = "refunds"
	ResourceCards        ResourceKind = "cards"
	ResourceBankAccounts ResourceKind = "bank_accounts"
	ResourceCustomers    ResourceKind = "customers"
)

// GatewayEvent is the full event record fetched from the gateway by id.
// EntityMeta carries the metadata tags of the entity the event refers to.
type GatewayEvent struct {
	ID           string
	Type         string
	OccurredAt   time.Time
	EntityStatus string
	EntityMeta   map[string]string
}

// GatewayResource is a gateway-side resource reference. Status is one of a
// small set of known gateway strings; unknown values are tolerated downstream.
type GatewayResource struct {
	URI    string
	Status string
}

// ChargeParams holds the arguments of a mutating gateway call.
type ChargeParams struct {
	AmountCents          int64
	SourceURI            string // debit only
	DestinationURI       string // credit only
	Description          string
	AppearsOnStatementAs string
	Meta                 map[string]string
}

// GatewayClient is the opaque RPC surface of the external payment gateway.
// Calls block until they return a result or fail; timeout and retry policy
// belong to the gateway adapter, not to the services consuming this port.
type GatewayClient interface {
	// Configure sets the API credential used by all subsequent calls.
	Configure(apiKey string)

	// FetchEvent retrieves the full event record by gateway event id.
	FetchEvent(ctx context.Context, eventID string) (*GatewayEvent, error)

	// QueryResourcesByTransactionID finds resources of the given kind tagged
	// with the transaction id. Expected to match at most one.
	QueryResourcesByTransactionID(ctx context.Context, kind ResourceKind, transactionID string) ([]GatewayResource, error)

	// FetchResource retrieves a resource of the given kind by URI.
	FetchResource(ctx context.Context, kind ResourceKind, uri string) (*GatewayResource, error)

	// CreateCustomer creates a gateway-side customer record with metadata.
	CreateCustomer(ctx context.Context, meta map[string]string) (*GatewayResource, error)

	// AddCard associates a card with a gateway-side customer record.
	AddCard(ctx context.Context, customerURI, cardURI string) error

	// AddBankAccount associates a bank account with a gateway-side customer record.
	AddBankAccount(ctx context.Context, customerURI, bankAccountURI string) error

	// Debit charges the customer's funding instrument.
	Debit(ctx context.Context, customerURI string, params ChargeParams) (*GatewayResource, error)

	// Credit pays out to the customer's funding instrument.
	Credit(ctx context.Context, customerURI string, params ChargeParams) (*GatewayResource, error)

	// Refund reverses a previously settled debit resource.
	Refund(ctx context.Context, debitURI string, params ChargeParams) (*GatewayResource, error)

	// RegisterCallback registers a callback URL with the gateway.
	RegisterCallback(ctx context.Context, url string) error
}
