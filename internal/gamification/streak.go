// Package gamification computes consecutive-day streaks, point totals and
// achievement milestones from day-level activity history.
package gamification

import (
	"sort"
	"time"

	"github.com/glucokit/glucokit/internal/domain"
)

// ComputeStreak reduces a set of activity dates to the current and longest
// consecutive-day runs. Dates are normalized to calendar days before
// comparison; duplicates collapse, so logging twice in one day never inflates
// a streak. A streak is still current if the last active day was yesterday:
// it is not broken until a full day passes with no activity.
func ComputeStreak(activityDates []time.Time, asOf time.Time) domain.StreakResult {
	days := distinctDays(activityDates)
	if len(days) == 0 {
		return domain.StreakResult{}
	}

	today := toDay(asOf)

	// Current streak: walk backwards from the most recent day.
	current := 0
	last := days[len(days)-1]
	if !last.Before(today.AddDate(0, 0, -1)) {
		current = 1
		for i := len(days) - 2; i >= 0; i-- {
			if days[i+1].Sub(days[i]) == 24*time.Hour {
				current++
			} else {
				break
			}
		}
	}

	// Longest run anywhere in the history.
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	if current > longest {
		longest = current
	}

	return domain.StreakResult{CurrentStreak: current, LongestStreak: longest}
}

// distinctDays returns the unique calendar days, ascending.
func distinctDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := toDay(d)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// toDay truncates a timestamp to its calendar day in UTC. Callers resolve the
// user's timezone before this package sees the dates.
func toDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
