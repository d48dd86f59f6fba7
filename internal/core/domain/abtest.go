package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// TestStatus is the lifecycle label of an A/B test.
type TestStatus string

const (
	TestDraft     TestStatus = "draft"
	TestRunning   TestStatus = "running"
	TestPaused    TestStatus = "paused"
	TestCompleted TestStatus = "completed"
)

var ErrAbTestNotFound = errors.New("ab test not found")

// AbTest groups two variant configurations under a named experiment.
// The server records results; it performs no statistical analysis.
type AbTest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Type          string          `json:"type"` // invoice_template, quote_template, ...
	VariantA      json.RawMessage `json:"variantA"`
	VariantB      json.RawMessage `json:"variantB"`
	Status        TestStatus      `json:"status"`
	StartDate     *time.Time      `json:"startDate,omitempty"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	SuccessMetric string          `json:"successMetric"` // payment_rate, response_rate, ...
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// AbTestResult binds one entity's variant exposure to a success flag.
type AbTestResult struct {
	ID         string    `json:"id"`
	TestID     string    `json:"testId"`
	EntityID   string    `json:"entityId"`
	EntityType string    `json:"entityType"` // invoice, quote
	Variant    string    `json:"variant"`
	Success    bool      `json:"success"`
	RecordedAt time.Time `json:"recordedAt"`
}
