package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/glucokit/glucokit/internal/database"
	"github.com/glucokit/glucokit/internal/domain"
)

// SensorRepository reads CGM sensor inventory, on hand and on order.
type SensorRepository struct {
	db *gorm.DB
}

// NewSensorRepository creates a new sensor repository
func NewSensorRepository(db *gorm.DB) *SensorRepository {
	return &SensorRepository{db: db}
}

// UserSensors returns the full sensor inventory for a user.
func (r *SensorRepository) UserSensors(ctx context.Context, userID uint) ([]domain.SensorItem, error) {
	var records []database.SensorItemRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get user sensors: %w", err)
	}

	items := make([]domain.SensorItem, 0, len(records))
	for _, rec := range records {
		items = append(items, domain.SensorItem{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Model:     rec.Model,
			Supplier:  rec.Supplier,
			WearDays:  rec.WearDays,
			ExpiresAt: rec.ExpiresAt,
			OrderedAt: rec.OrderedAt,
			Pending:   rec.Pending,
		})
	}
	return items, nil
}
