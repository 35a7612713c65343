package services

import (
	"context"
	"testing"
	"time"

	"github.com/glucokit/glucokit/internal/domain"
)

type fakeSensorProvider struct {
	items []domain.SensorItem
}

func (f *fakeSensorProvider) UserSensors(ctx context.Context, userID uint) ([]domain.SensorItem, error) {
	return f.items, nil
}

func TestReorderProjection(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := NewInventoryService(&fakeSensorProvider{items: []domain.SensorItem{
		{Model: "g7", WearDays: 10, ExpiresAt: asOf.AddDate(0, 0, 90)},
		{Model: "g7", WearDays: 10, ExpiresAt: asOf.AddDate(0, 0, 90)},
	}})

	projection, err := svc.ReorderProjection(context.Background(), 1, asOf)
	if err != nil {
		t.Fatalf("ReorderProjection() error = %v", err)
	}
	if projection.DaysRemaining != 20 {
		t.Errorf("DaysRemaining = %d, want 20", projection.DaysRemaining)
	}
	if projection.ReorderNow {
		t.Error("ReorderNow = true, want false with 20 days of supply")
	}
}

func TestReorderProjection_EmptyInventory(t *testing.T) {
	svc := NewInventoryService(&fakeSensorProvider{})

	projection, err := svc.ReorderProjection(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("ReorderProjection() error = %v", err)
	}
	if !projection.ReorderNow {
		t.Error("ReorderNow = false, want true for empty inventory")
	}
}
