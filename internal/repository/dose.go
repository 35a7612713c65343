package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/glucokit/glucokit/internal/database"
	"github.com/glucokit/glucokit/internal/domain"
)

// DoseRepository reads and appends insulin dose records. There is no update
// or delete: dose history is append-only.
type DoseRepository struct {
	db *gorm.DB
}

// NewDoseRepository creates a new dose repository
func NewDoseRepository(db *gorm.DB) *DoseRepository {
	return &DoseRepository{db: db}
}

// DosesInWindow returns all doses for a user between from and to inclusive.
func (r *DoseRepository) DosesInWindow(ctx context.Context, userID uint, from, to time.Time) ([]domain.InsulinDose, error) {
	var records []database.InsulinDoseRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp BETWEEN ? AND ?", userID, from, to).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get doses in window: %w", err)
	}

	doses := make([]domain.InsulinDose, 0, len(records))
	for _, rec := range records {
		doses = append(doses, domain.InsulinDose{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Amount:    rec.Amount,
			Class:     domain.InsulinClass(rec.Class),
			Timestamp: rec.Timestamp,
			CreatedAt: rec.CreatedAt,
		})
	}
	return doses, nil
}

// AppendDose records a new dose. Amount must be positive; corrections are new
// compensating entries, never edits.
func (r *DoseRepository) AppendDose(ctx context.Context, userID uint, amount float64, class domain.InsulinClass, takenAt time.Time) (*domain.InsulinDose, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("dose amount must be positive, got %v", amount)
	}

	record := &database.InsulinDoseRecord{
		ID:        uuid.New().String(),
		UserID:    userID,
		Amount:    amount,
		Class:     string(class),
		Timestamp: takenAt,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create dose record: %w", err)
	}

	return &domain.InsulinDose{
		ID:        record.ID,
		UserID:    record.UserID,
		Amount:    record.Amount,
		Class:     class,
		Timestamp: record.Timestamp,
		CreatedAt: record.CreatedAt,
	}, nil
}
