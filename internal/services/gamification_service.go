package services

import (
	"context"
	"fmt"
	"time"

	"github.com/glucokit/glucokit/internal/domain"
	"github.com/glucokit/glucokit/internal/gamification"
)

// GamificationSummary is the combined streak, points and achievements state
// for one user.
type GamificationSummary struct {
	Streak       domain.StreakResult
	TotalPoints  int
	Achievements []domain.Achievement
}

// GamificationService reduces activity history to streaks, points and
// achievements.
type GamificationService struct {
	activities domain.ActivityProvider
}

// NewGamificationService creates a new gamification service
func NewGamificationService(activities domain.ActivityProvider) *GamificationService {
	return &GamificationService{activities: activities}
}

// UserSummary computes the gamification state for one user as of the given
// date. The streak is taken over the log-entry activity, the daily habit the
// application rewards.
func (s *GamificationService) UserSummary(ctx context.Context, userID uint, asOf time.Time) (*GamificationSummary, error) {
	dates, err := s.activities.ActivityDates(ctx, userID, domain.ActivityLogEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity dates: %w", err)
	}

	records, err := s.activities.UserActivities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user activities: %w", err)
	}

	streak := gamification.ComputeStreak(dates, asOf)
	points := gamification.ComputePoints(records)

	return &GamificationSummary{
		Streak:       streak,
		TotalPoints:  points,
		Achievements: gamification.EvaluateAchievements(streak, points),
	}, nil
}
