package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/glucokit/glucokit/internal/database"
	"github.com/glucokit/glucokit/internal/domain"
)

// GlucoseRepository stores and reads glucose readings.
type GlucoseRepository struct {
	db *gorm.DB
}

// NewGlucoseRepository creates a new glucose repository
func NewGlucoseRepository(db *gorm.DB) *GlucoseRepository {
	return &GlucoseRepository{db: db}
}

// LatestReading returns the most recent reading for a user, or nil when the
// user has never recorded one. Absence is not an error.
func (r *GlucoseRepository) LatestReading(ctx context.Context, userID uint) (*domain.GlucoseReading, error) {
	var record database.GlucoseReadingRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest glucose reading: %w", err)
	}

	return &domain.GlucoseReading{
		ID:        record.ID,
		UserID:    record.UserID,
		Value:     record.Value,
		Trend:     record.Trend,
		Timestamp: record.Timestamp,
	}, nil
}

// AddReading records a glucose measurement in mg/dL.
func (r *GlucoseRepository) AddReading(ctx context.Context, userID uint, value int, trend string, takenAt time.Time) error {
	record := &database.GlucoseReadingRecord{
		ID:        uuid.New().String(),
		UserID:    userID,
		Value:     value,
		Trend:     trend,
		Timestamp: takenAt,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create glucose reading: %w", err)
	}
	return nil
}
