package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
)

// CreateAbTestInput carries the fields accepted when creating an A/B test.
type CreateAbTestInput struct {
	Name          string
	Description   string
	Type          string
	VariantA      json.RawMessage
	VariantB      json.RawMessage
	Status        domain.TestStatus
	StartDate     *time.Time
	EndDate       *time.Time
	SuccessMetric string
}

// RecordResultInput binds one entity's variant exposure to an outcome.
type RecordResultInput struct {
	TestID     string
	EntityID   string
	EntityType string
	Variant    string
	Success    bool
}

// AbTestRepository defines persistence operations for A/B tests.
type AbTestRepository interface {
	List(ctx context.Context) ([]*domain.AbTest, error)
	Get(ctx context.Context, id string) (*domain.AbTest, error)
	Create(ctx context.Context, t *domain.AbTest) error
	RecordResult(ctx context.Context, r *domain.AbTestResult) error
	ListResults(ctx context.Context, testID string) ([]*domain.AbTestResult, error)
}

// AbTestService defines experiment use cases.
type AbTestService interface {
	List(ctx context.Context) ([]*domain.AbTest, error)
	Create(ctx context.Context, in CreateAbTestInput) (*domain.AbTest, error)
	RecordResult(ctx context.Context, in RecordResultInput) (*domain.AbTestResult, error)
	ListResults(ctx context.Context, testID string) ([]*domain.AbTestResult, error)
}
