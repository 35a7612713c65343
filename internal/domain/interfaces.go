package domain

import (
	"context"
	"time"
)

// DoseProvider returns insulin doses for a user within a time window,
// in arbitrary order; callers sort or filter as needed.
type DoseProvider interface {
	DosesInWindow(ctx context.Context, userID uint, from, to time.Time) ([]InsulinDose, error)
}

// GlucoseProvider returns the most recent glucose reading for a user,
// or nil when none has been recorded.
type GlucoseProvider interface {
	LatestReading(ctx context.Context, userID uint) (*GlucoseReading, error)
}

// ActivityProvider returns activity history for gamification.
type ActivityProvider interface {
	ActivityDates(ctx context.Context, userID uint, activityType ActivityType) ([]time.Time, error)
	UserActivities(ctx context.Context, userID uint) ([]ActivityRecord, error)
}

// SensorProvider returns the sensor inventory for a user, including
// pending orders.
type SensorProvider interface {
	UserSensors(ctx context.Context, userID uint) ([]SensorItem, error)
}

// AlertStore persists classified alerts for later delivery and display.
type AlertStore interface {
	SaveAlerts(ctx context.Context, alerts []Alert) error
}

// UserProvider lists users enrolled in periodic evaluation.
type UserProvider interface {
	ActiveUsers(ctx context.Context) ([]User, error)
}
