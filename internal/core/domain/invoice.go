package domain

import (
	"errors"
	"time"
)

// InvoiceStatus is the lifecycle label of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Template variants assigned uniformly at random on document creation.
// A variant is a display/reporting label only; it never affects content.
const (
	VariantA = "A"
	VariantB = "B"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// Invoice bills a client, optionally for a specific project. All amounts
// are integer cents.
type Invoice struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	ClientID        string        `json:"clientId"`
	InvoiceNumber   string        `json:"invoiceNumber"`
	ProjectID       *string       `json:"projectId,omitempty"`
	AmountCents     int64         `json:"amountCents"`
	TaxCents        int64         `json:"taxCents"`
	TotalCents      int64         `json:"totalCents"`
	Status          InvoiceStatus `json:"status"`
	IssueDate       time.Time     `json:"issueDate"`
	DueDate         *time.Time    `json:"dueDate,omitempty"`
	PaidDate        *time.Time    `json:"paidDate,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	TemplateVariant string        `json:"templateVariant"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
