package gamification

import (
	"time"

	"github.com/glucokit/glucokit/internal/domain"
)

// Point values per activity type, fixed domain policy.
var pointValues = map[domain.ActivityType]int{
	domain.ActivityLogEntry:   5,
	domain.ActivityGlucose:    2,
	domain.ActivityDoseLogged: 3,
	domain.ActivityTipShared:  10,
}

// ComputePoints totals the points earned across an activity history. The same
// activity type on the same day counts once, mirroring the uniqueness
// invariant the streak calculation relies on.
func ComputePoints(records []domain.ActivityRecord) int {
	type dayKey struct {
		activityType domain.ActivityType
		day          time.Time
	}

	seen := make(map[dayKey]bool, len(records))
	total := 0
	for _, r := range records {
		key := dayKey{r.Type, toDay(r.Date)}
		if seen[key] {
			continue
		}
		seen[key] = true
		total += pointValues[r.Type]
	}
	return total
}

// Achievement thresholds, checked in ascending order.
var (
	streakAchievements = []domain.Achievement{
		{Code: "streak_7", Name: "One week strong", Threshold: 7},
		{Code: "streak_30", Name: "Thirty days running", Threshold: 30},
		{Code: "streak_100", Name: "Century club", Threshold: 100},
	}
	pointAchievements = []domain.Achievement{
		{Code: "points_100", Name: "Getting started", Threshold: 100},
		{Code: "points_500", Name: "Dedicated tracker", Threshold: 500},
		{Code: "points_1000", Name: "Logging legend", Threshold: 1000},
	}
)

// EvaluateAchievements returns every milestone the user has reached. The
// longest streak counts, not just the current one, so a broken streak never
// revokes an earned achievement.
func EvaluateAchievements(streak domain.StreakResult, totalPoints int) []domain.Achievement {
	var earned []domain.Achievement
	for _, a := range streakAchievements {
		if streak.LongestStreak >= a.Threshold {
			earned = append(earned, a)
		}
	}
	for _, a := range pointAchievements {
		if totalPoints >= a.Threshold {
			earned = append(earned, a)
		}
	}
	return earned
}
