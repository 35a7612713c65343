// Package alerting classifies insulin-on-board and glucose state into
// prioritized risk alerts. Classification is deterministic: the same inputs
// always yield the same set of alert kinds. Deduplication against previously
// shown alerts is the caller's concern.
package alerting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glucokit/glucokit/internal/domain"
)

// Fixed classification bands. These are domain policy, not tunables; a layer
// needing personalization pre-filters or adjusts its inputs instead.
const (
	highIOBThreshold     = 5.0
	moderateIOBThreshold = 3.0
	stackingDoseCount    = 3
	stackingWindow       = 2 * time.Hour
	hypoThresholdMgdl    = 70
)

// ClassifyRisk evaluates every rule independently and returns all alerts that
// fire. The IOB bands are mutually exclusive; stacking and the hypoglycemia
// rule can co-occur with either band. A nil glucose reading skips only the
// rules that need it.
func ClassifyRisk(iob domain.IOBResult, recentDoses []domain.InsulinDose, latest *domain.GlucoseReading, at time.Time) []domain.Alert {
	var alerts []domain.Alert

	switch {
	case iob.TotalIOB >= highIOBThreshold:
		alerts = append(alerts, newAlert(domain.AlertHighIOB, domain.SeverityHigh, at, func(a *domain.Alert) {
			a.RelatedIOB = iob.TotalIOB
			a.Message = fmt.Sprintf("High insulin on board: %.1f units still active", iob.TotalIOB)
		}))
	case iob.TotalIOB >= moderateIOBThreshold:
		alerts = append(alerts, newAlert(domain.AlertModerateIOB, domain.SeverityMedium, at, func(a *domain.Alert) {
			a.RelatedIOB = iob.TotalIOB
			a.Message = fmt.Sprintf("Moderate insulin on board: %.1f units still active", iob.TotalIOB)
		}))
	}

	if count := countRecentBoluses(recentDoses, at); count >= stackingDoseCount {
		alerts = append(alerts, newAlert(domain.AlertStacking, domain.SeverityMedium, at, func(a *domain.Alert) {
			a.DoseCount = count
			a.Message = fmt.Sprintf("%d bolus doses in the last 2 hours, watch for stacking", count)
		}))
	}

	if latest != nil && latest.Value < hypoThresholdMgdl && iob.Active() {
		alerts = append(alerts, newAlert(domain.AlertLowGlucoseWithIOB, domain.SeverityCritical, at, func(a *domain.Alert) {
			a.RelatedIOB = iob.TotalIOB
			a.Glucose = latest.Value
			a.Message = fmt.Sprintf("Glucose %d mg/dL with %.1f units of insulin still active", latest.Value, iob.TotalIOB)
		}))
	}

	return alerts
}

func newAlert(kind domain.AlertKind, severity domain.AlertSeverity, at time.Time, fill func(*domain.Alert)) domain.Alert {
	alert := domain.Alert{
		ID:          uuid.New().String(),
		Kind:        kind,
		Severity:    severity,
		TriggeredAt: at,
	}
	fill(&alert)
	return alert
}

// countRecentBoluses counts bolus-class doses taken within the stacking
// window before the evaluation instant. Future-dated doses do not count.
func countRecentBoluses(doses []domain.InsulinDose, at time.Time) int {
	count := 0
	for _, dose := range doses {
		if !dose.Class.IsBolus() {
			continue
		}
		elapsed := at.Sub(dose.Timestamp)
		if elapsed >= 0 && elapsed <= stackingWindow {
			count++
		}
	}
	return count
}
