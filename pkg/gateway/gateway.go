package gateway

import "context"

// Gateway abstracts the card payment provider. Customers and their default
// card live on the provider's side; we only persist the opaque identifiers.
type Gateway interface {
	// CreateCustomer registers a customer with the provider from a one-time
	// card token and returns the customer and default card identifiers.
	CreateCustomer(ctx context.Context, email, description, cardToken string) (customerID, cardID string, err error)

	// RetrieveCustomer looks up an existing customer and returns the
	// identifier of their default card.
	RetrieveCustomer(ctx context.Context, customerID string) (cardID string, err error)

	// CreateCharge charges the given card for amount in the smallest
	// currency unit and returns the provider's charge identifier. A charge
	// the provider declines comes back as an error.
	CreateCharge(ctx context.Context, customerID, cardID string, amount int64, currency, description string) (chargeID string, err error)
}
