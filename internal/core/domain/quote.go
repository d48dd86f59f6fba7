package domain

import (
	"errors"
	"time"
)

// QuoteStatus is the lifecycle label of a quote.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
	QuoteExpired  QuoteStatus = "expired"
)

var ErrQuoteNotFound = errors.New("quote not found")

// Quote is a priced proposal to a client. All amounts are integer cents.
type Quote struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	ClientID        string      `json:"clientId"`
	QuoteNumber     string      `json:"quoteNumber"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	AmountCents     int64       `json:"amountCents"`
	TaxCents        int64       `json:"taxCents"`
	TotalCents      int64       `json:"totalCents"`
	Status          QuoteStatus `json:"status"`
	ValidUntil      *time.Time  `json:"validUntil,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	TemplateVariant string      `json:"templateVariant"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
