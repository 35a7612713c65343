package domain

import (
	"time"
)

// InsulinClass is the closed set of pharmacokinetic classes a dose may carry.
type InsulinClass string

const (
	ClassRapid        InsulinClass = "rapid"
	ClassShort        InsulinClass = "short"
	ClassIntermediate InsulinClass = "intermediate"
	ClassLong         InsulinClass = "long"
)

// IsBolus reports whether the class is bolus-acting. Only bolus doses
// participate in insulin-on-board; long and intermediate insulin represent
// background rate, not a bolus that wears off.
func (c InsulinClass) IsBolus() bool {
	return c == ClassRapid || c == ClassShort
}

// InsulinDose represents one administered dose. Dose records are append-only:
// corrections are new compensating entries, never in-place edits.
type InsulinDose struct {
	ID        string
	UserID    uint
	Amount    float64 // units of insulin, > 0
	Class     InsulinClass
	Timestamp time.Time
	CreatedAt time.Time
}

// GlucoseReading represents a blood glucose measurement in mg/dL.
type GlucoseReading struct {
	ID        string
	UserID    uint
	Value     int
	Trend     string // optional trend indicator, e.g. "flat", "falling"
	Timestamp time.Time
}

// ActivityType identifies a tracked daily activity for gamification.
type ActivityType string

const (
	ActivityLogEntry   ActivityType = "log_entry"
	ActivityGlucose    ActivityType = "glucose_reading"
	ActivityDoseLogged ActivityType = "dose_logged"
	ActivityTipShared  ActivityType = "tip_shared"
)

// ActivityRecord represents one tracked activity on one calendar day.
// At most one record exists per (user, activity type, date).
type ActivityRecord struct {
	ID     string
	UserID uint
	Type   ActivityType
	Date   time.Time // day granularity, already resolved to the user's calendar
}

// DoseContribution is the per-dose breakdown of an IOB evaluation.
type DoseContribution struct {
	DoseID            string
	RemainingUnits    float64
	RemainingFraction float64
}

// IOBResult is the output of one insulin-on-board evaluation. It is
// recomputed on every call and never cached by the engine itself.
type IOBResult struct {
	TotalIOB      float64 // rounded to one decimal place
	EvaluatedAt   time.Time
	Contributions []DoseContribution
}

// Active reports whether any insulin is still on board.
func (r IOBResult) Active() bool {
	return r.TotalIOB > 0
}

// AlertKind is the closed set of risk conditions the classifier emits.
type AlertKind string

const (
	AlertHighIOB           AlertKind = "high-iob"
	AlertModerateIOB       AlertKind = "moderate-iob"
	AlertStacking          AlertKind = "stacking"
	AlertLowGlucoseWithIOB AlertKind = "low-glucose-with-iob"
)

// AlertSeverity labels alert urgency. Critical alerts should be surfaced
// first by consumers; the classifier itself only labels, never orders.
type AlertSeverity string

const (
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is one classified risk condition. Each kind carries only the fields
// relevant to it; unrelated fields stay zero.
type Alert struct {
	ID          string
	UserID      uint
	Kind        AlertKind
	Severity    AlertSeverity
	Message     string
	RelatedIOB  float64 // high-iob, moderate-iob, low-glucose-with-iob
	DoseCount   int     // stacking
	Glucose     int     // low-glucose-with-iob, mg/dL
	TriggeredAt time.Time
}

// StreakResult summarizes consecutive-day activity for one user and type.
// LongestStreak >= CurrentStreak always holds.
type StreakResult struct {
	CurrentStreak int
	LongestStreak int
}

// Achievement is a gamification milestone a user has reached.
type Achievement struct {
	Code      string
	Name      string
	Threshold int
}

// SensorItem represents one CGM sensor in a user's inventory, either on hand
// or on a pending order.
type SensorItem struct {
	ID        string
	UserID    uint
	Model     string
	Supplier  string
	WearDays  int // rated wear duration for this sensor model
	ExpiresAt time.Time
	OrderedAt time.Time
	Pending   bool // ordered but not yet delivered
}

// ReorderProjection is the supply forecast for a user's sensor inventory.
type ReorderProjection struct {
	DaysRemaining int
	RunOutDate    time.Time
	ReorderDate   time.Time
	ReorderNow    bool
}

// User represents an application user enrolled in periodic evaluation.
type User struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Name      string
	Active    bool
}
