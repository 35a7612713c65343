package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/glucokit/glucokit/internal/database"
	"github.com/glucokit/glucokit/internal/domain"
)

// AlertRepository persists classified alerts for later display and delivery.
type AlertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// SaveAlerts stores every alert from one evaluation.
func (r *AlertRepository) SaveAlerts(ctx context.Context, alerts []domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	records := make([]database.AlertRecord, 0, len(alerts))
	for _, a := range alerts {
		records = append(records, database.AlertRecord{
			ID:          a.ID,
			UserID:      a.UserID,
			Kind:        string(a.Kind),
			Severity:    string(a.Severity),
			Message:     a.Message,
			RelatedIOB:  a.RelatedIOB,
			DoseCount:   a.DoseCount,
			Glucose:     a.Glucose,
			TriggeredAt: a.TriggeredAt,
		})
	}

	if err := r.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to save alerts: %w", err)
	}
	return nil
}
