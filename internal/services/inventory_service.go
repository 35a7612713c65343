package services

import (
	"context"
	"fmt"
	"time"

	"github.com/glucokit/glucokit/internal/domain"
	"github.com/glucokit/glucokit/internal/inventory"
)

// defaultLeadTimeDays is the typical supplier delivery time used when a user
// has not recorded one.
const defaultLeadTimeDays = 7

// InventoryService projects sensor supply and reorder dates.
type InventoryService struct {
	sensors domain.SensorProvider
}

// NewInventoryService creates a new inventory service
func NewInventoryService(sensors domain.SensorProvider) *InventoryService {
	return &InventoryService{sensors: sensors}
}

// ReorderProjection forecasts when the user's sensor supply runs out and
// whether a replacement order is already due.
func (s *InventoryService) ReorderProjection(ctx context.Context, userID uint, asOf time.Time) (*domain.ReorderProjection, error) {
	items, err := s.sensors.UserSensors(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user sensors: %w", err)
	}

	projection := inventory.ProjectReorder(items, asOf, defaultLeadTimeDays)
	return &projection, nil
}
