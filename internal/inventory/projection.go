// Package inventory projects CGM sensor supply and reorder dates from a
// user's on-hand sensors and pending orders.
package inventory

import (
	"sort"
	"time"

	"github.com/glucokit/glucokit/internal/domain"
)

// duplicateOrderWindow is how close two orders from the same supplier for the
// same model must be to count as one order placed twice.
const duplicateOrderWindow = 3 * 24 * time.Hour

// ProjectReorder estimates when a user's sensor supply runs out and when a
// replacement order should go in. Expired sensors contribute nothing; pending
// orders count toward supply after duplicate merging. leadTimeDays is the
// supplier's typical delivery time.
func ProjectReorder(items []domain.SensorItem, asOf time.Time, leadTimeDays int) domain.ReorderProjection {
	usable := mergeDuplicateOrders(items, asOf)

	daysRemaining := 0
	for _, item := range usable {
		if !item.Pending && !item.ExpiresAt.IsZero() && !item.ExpiresAt.After(asOf) {
			continue
		}
		daysRemaining += item.WearDays
	}

	runOut := asOf.AddDate(0, 0, daysRemaining)
	reorder := runOut.AddDate(0, 0, -leadTimeDays)

	return domain.ReorderProjection{
		DaysRemaining: daysRemaining,
		RunOutDate:    runOut,
		ReorderDate:   reorder,
		ReorderNow:    !reorder.After(asOf),
	}
}

// mergeDuplicateOrders collapses pending orders for the same supplier and
// model placed within a few days of each other. Users double-ordering after
// a missed confirmation email would otherwise see inflated incoming stock.
func mergeDuplicateOrders(items []domain.SensorItem, asOf time.Time) []domain.SensorItem {
	type orderKey struct {
		supplier string
		model    string
	}

	lastOrder := make(map[orderKey]time.Time)
	merged := make([]domain.SensorItem, 0, len(items))

	for _, item := range sortedByOrderDate(items) {
		if !item.Pending {
			merged = append(merged, item)
			continue
		}
		key := orderKey{item.Supplier, item.Model}
		if prev, ok := lastOrder[key]; ok && item.OrderedAt.Sub(prev) <= duplicateOrderWindow {
			continue
		}
		lastOrder[key] = item.OrderedAt
		merged = append(merged, item)
	}
	return merged
}

func sortedByOrderDate(items []domain.SensorItem) []domain.SensorItem {
	out := make([]domain.SensorItem, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return out[i].OrderedAt.Before(out[j].OrderedAt) })
	return out
}
