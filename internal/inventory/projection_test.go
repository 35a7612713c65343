package inventory

import (
	"testing"
	"time"

	"github.com/glucokit/glucokit/internal/domain"
)

var asOf = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func onHand(model string, wearDays int, expiresInDays int) domain.SensorItem {
	return domain.SensorItem{
		Model:     model,
		WearDays:  wearDays,
		ExpiresAt: asOf.AddDate(0, 0, expiresInDays),
	}
}

func pendingOrder(supplier, model string, wearDays int, orderedDaysAgo int) domain.SensorItem {
	return domain.SensorItem{
		Model:     model,
		Supplier:  supplier,
		WearDays:  wearDays,
		OrderedAt: asOf.AddDate(0, 0, -orderedDaysAgo),
		Pending:   true,
	}
}

func TestProjectReorder(t *testing.T) {
	tests := []struct {
		name           string
		items          []domain.SensorItem
		leadTimeDays   int
		wantDays       int
		wantReorderNow bool
	}{
		{
			name:           "empty inventory reorders immediately",
			items:          nil,
			leadTimeDays:   7,
			wantDays:       0,
			wantReorderNow: true,
		},
		{
			name:           "two sensors on hand",
			items:          []domain.SensorItem{onHand("g7", 10, 90), onHand("g7", 10, 90)},
			leadTimeDays:   7,
			wantDays:       20,
			wantReorderNow: false,
		},
		{
			name:           "supply inside lead time triggers reorder",
			items:          []domain.SensorItem{onHand("g7", 10, 90)},
			leadTimeDays:   10,
			wantDays:       10,
			wantReorderNow: true,
		},
		{
			name:           "expired sensor contributes nothing",
			items:          []domain.SensorItem{onHand("g7", 10, -1), onHand("g7", 10, 90)},
			leadTimeDays:   7,
			wantDays:       10,
			wantReorderNow: false,
		},
		{
			name: "pending order counts toward supply",
			items: []domain.SensorItem{
				onHand("g7", 10, 90),
				pendingOrder("acme", "g7", 10, 1),
			},
			leadTimeDays:   7,
			wantDays:       20,
			wantReorderNow: false,
		},
		{
			name: "duplicate orders within window merge",
			items: []domain.SensorItem{
				pendingOrder("acme", "g7", 10, 2),
				pendingOrder("acme", "g7", 10, 1),
			},
			leadTimeDays:   3,
			wantDays:       10,
			wantReorderNow: false,
		},
		{
			name: "orders far apart both count",
			items: []domain.SensorItem{
				pendingOrder("acme", "g7", 10, 30),
				pendingOrder("acme", "g7", 10, 1),
			},
			leadTimeDays:   3,
			wantDays:       20,
			wantReorderNow: false,
		},
		{
			name: "different suppliers never merge",
			items: []domain.SensorItem{
				pendingOrder("acme", "g7", 10, 2),
				pendingOrder("other", "g7", 10, 1),
			},
			leadTimeDays:   3,
			wantDays:       20,
			wantReorderNow: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projection := ProjectReorder(tt.items, asOf, tt.leadTimeDays)
			if projection.DaysRemaining != tt.wantDays {
				t.Errorf("DaysRemaining = %d, want %d", projection.DaysRemaining, tt.wantDays)
			}
			if projection.ReorderNow != tt.wantReorderNow {
				t.Errorf("ReorderNow = %v, want %v", projection.ReorderNow, tt.wantReorderNow)
			}

			wantRunOut := asOf.AddDate(0, 0, tt.wantDays)
			if !projection.RunOutDate.Equal(wantRunOut) {
				t.Errorf("RunOutDate = %v, want %v", projection.RunOutDate, wantRunOut)
			}
			wantReorder := wantRunOut.AddDate(0, 0, -tt.leadTimeDays)
			if !projection.ReorderDate.Equal(wantReorder) {
				t.Errorf("ReorderDate = %v, want %v", projection.ReorderDate, wantReorder)
			}
		})
	}
}
