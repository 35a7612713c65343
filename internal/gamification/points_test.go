package gamification

import (
	"testing"

	"github.com/glucokit/glucokit/internal/domain"
)

func activity(activityType domain.ActivityType, date string) domain.ActivityRecord {
	return domain.ActivityRecord{Type: activityType, Date: day(date)}
}

func TestComputePoints(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.ActivityRecord
		expected int
	}{
		{"no activity", nil, 0},
		{
			"one of each type",
			[]domain.ActivityRecord{
				activity(domain.ActivityLogEntry, "2024-01-01"),
				activity(domain.ActivityGlucose, "2024-01-01"),
				activity(domain.ActivityDoseLogged, "2024-01-01"),
				activity(domain.ActivityTipShared, "2024-01-01"),
			},
			20,
		},
		{
			"same type same day counts once",
			[]domain.ActivityRecord{
				activity(domain.ActivityLogEntry, "2024-01-01"),
				activity(domain.ActivityLogEntry, "2024-01-01"),
			},
			5,
		},
		{
			"same type across days accumulates",
			[]domain.ActivityRecord{
				activity(domain.ActivityLogEntry, "2024-01-01"),
				activity(domain.ActivityLogEntry, "2024-01-02"),
				activity(domain.ActivityLogEntry, "2024-01-03"),
			},
			15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePoints(tt.records); got != tt.expected {
				t.Errorf("ComputePoints() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestEvaluateAchievements(t *testing.T) {
	tests := []struct {
		name      string
		streak    domain.StreakResult
		points    int
		wantCodes []string
	}{
		{"nothing earned", domain.StreakResult{CurrentStreak: 2, LongestStreak: 2}, 50, nil},
		{
			"week streak",
			domain.StreakResult{CurrentStreak: 7, LongestStreak: 7},
			0,
			[]string{"streak_7"},
		},
		{
			"broken streak keeps earned milestone",
			domain.StreakResult{CurrentStreak: 0, LongestStreak: 31},
			0,
			[]string{"streak_7", "streak_30"},
		},
		{
			"points and streak together",
			domain.StreakResult{CurrentStreak: 10, LongestStreak: 10},
			600,
			[]string{"streak_7", "points_100", "points_500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earned := EvaluateAchievements(tt.streak, tt.points)
			got := make([]string, 0, len(earned))
			for _, a := range earned {
				got = append(got, a.Code)
			}
			if len(got) != len(tt.wantCodes) {
				t.Fatalf("EvaluateAchievements() codes = %v, want %v", got, tt.wantCodes)
			}
			for i := range got {
				if got[i] != tt.wantCodes[i] {
					t.Errorf("EvaluateAchievements() codes = %v, want %v", got, tt.wantCodes)
				}
			}
		})
	}
}
