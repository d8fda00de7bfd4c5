package gateway

import (
	"context"
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// OmiseGateway implements Gateway on top of the Omise API. The Omise client
// does not take a context, so the ctx arguments are accepted for interface
// compatibility only.
type OmiseGateway struct {
	client *omise.Client
}

func NewOmiseGateway(publicKey, secretKey string) (*OmiseGateway, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("create omise client: %w", err)
	}
	return &OmiseGateway{client: client}, nil
}

func (g *OmiseGateway) CreateCustomer(_ context.Context, email, description, cardToken string) (string, string, error) {
	customer := &omise.Customer{}
	err := g.client.Do(customer, &operations.CreateCustomer{
		Email:       email,
		Description: description,
		Card:        cardToken,
	})
	if err != nil {
		return "", "", fmt.Errorf("create customer: %w", err)
	}
	return customer.ID, customer.DefaultCard, nil
}

func (g *OmiseGateway) RetrieveCustomer(_ context.Context, customerID string) (string, error) {
	customer := &omise.Customer{}
	err := g.client.Do(customer, &operations.RetrieveCustomer{
		CustomerID: customerID,
	})
	if err != nil {
		return "", fmt.Errorf("retrieve customer: %w", err)
	}
	return customer.DefaultCard, nil
}

func (g *OmiseGateway) CreateCharge(_ context.Context, customerID, cardID string, amount int64, currency, description string) (string, error) {
	charge := &omise.Charge{}
	err := g.client.Do(charge, &operations.CreateCharge{
		Amount:      amount,
		Currency:    currency,
		Customer:    customerID,
		Card:        cardID,
		Description: description,
	})
	if err != nil {
		return "", fmt.Errorf("create charge: %w", err)
	}
	if charge.Status != "successful" {
		reason := "charge was not successful"
		if charge.FailureMessage != nil {
			reason = *charge.FailureMessage
		}
		return "", fmt.Errorf("charge %s declined: %s", charge.ID, reason)
	}
	return charge.ID, nil
}
