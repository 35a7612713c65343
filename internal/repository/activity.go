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

// ActivityRepository stores day-level activity records for gamification.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ActivityDates returns the distinct calendar dates on which the activity
// occurred, ordered ascending.
func (r *ActivityRepository) ActivityDates(ctx context.Context, userID uint, activityType domain.ActivityType) ([]time.Time, error) {
	var records []database.ActivityRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_type = ?", userID, activityType).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get activity dates: %w", err)
	}

	dates := make([]time.Time, 0, len(records))
	for _, rec := range records {
		dates = append(dates, rec.Date)
	}
	return dates, nil
}

// UserActivities returns the full activity history for a user.
func (r *ActivityRepository) UserActivities(ctx context.Context, userID uint) ([]domain.ActivityRecord, error) {
	var records []database.ActivityRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get user activities: %w", err)
	}

	activities := make([]domain.ActivityRecord, 0, len(records))
	for _, rec := range records {
		activities = append(activities, domain.ActivityRecord{
			ID:     rec.ID,
			UserID: rec.UserID,
			Type:   domain.ActivityType(rec.ActivityType),
			Date:   rec.Date,
		})
	}
	return activities, nil
}

// RecordActivity marks an activity for a calendar day. The unique index on
// (user, type, date) makes a second record for the same day a no-op, so
// duplicate same-day activity never inflates streaks or points.
func (r *ActivityRepository) RecordActivity(ctx context.Context, userID uint, activityType domain.ActivityType, day time.Time) error {
	record := &database.ActivityRecord{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityType: string(activityType),
		Date:         day,
	}
	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}
