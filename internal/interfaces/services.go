package interfaces

import (
	"context"
	"time"

	"github.com/glucokit/glucokit/internal/domain"
	"github.com/glucokit/glucokit/internal/services"
)

// EvaluationServiceInterface defines the contract for risk evaluation
type EvaluationServiceInterface interface {
	EvaluateUser(ctx context.Context, userID uint, at time.Time) (domain.IOBResult, []domain.Alert, error)
}

// GamificationServiceInterface defines the contract for streaks and points
type GamificationServiceInterface interface {
	UserSummary(ctx context.Context, userID uint, asOf time.Time) (*services.GamificationSummary, error)
}

// InventoryServiceInterface defines the contract for sensor supply forecasts
type InventoryServiceInterface interface {
	ReorderProjection(ctx context.Context, userID uint, asOf time.Time) (*domain.ReorderProjection, error)
}
