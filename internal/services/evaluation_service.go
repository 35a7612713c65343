package services

import (
	"context"
	"fmt"
	"time"

	"github.com/glucokit/glucokit/internal/alerting"
	"github.com/glucokit/glucokit/internal/domain"
	"github.com/glucokit/glucokit/internal/iob"
	"github.com/glucokit/glucokit/internal/logger"
)

// doseWindow bounds how far back the evaluation fetches doses. The slowest
// decaying class clears in 24 hours, so older doses cannot contribute.
const doseWindow = 24 * time.Hour

// ResultCache memoizes IOB evaluations between ticks. A nil cache disables
// memoization; misses and cache errors always fall back to recomputation.
type ResultCache interface {
	Get(ctx context.Context, userID uint, at time.Time) (*domain.IOBResult, error)
	Set(ctx context.Context, userID uint, at time.Time, result domain.IOBResult) error
}

// EvaluationService runs one full risk evaluation for a user: fetch inputs,
// compute insulin on board, classify alerts, persist the outcome. All
// dependencies are injected; the service keeps no state between calls.
type EvaluationService struct {
	doses   domain.DoseProvider
	glucose domain.GlucoseProvider
	alerts  domain.AlertStore
	engine  *iob.Engine
	cache   ResultCache
}

// NewEvaluationService wires an evaluation service from its collaborators.
func NewEvaluationService(
	doses domain.DoseProvider,
	glucose domain.GlucoseProvider,
	alerts domain.AlertStore,
	engine *iob.Engine,
	cache ResultCache,
) *EvaluationService {
	return &EvaluationService{
		doses:   doses,
		glucose: glucose,
		alerts:  alerts,
		engine:  engine,
		cache:   cache,
	}
}

// EvaluateUser computes IOB and risk alerts for one user at the given
// instant. Fired alerts are persisted before returning.
func (s *EvaluationService) EvaluateUser(ctx context.Context, userID uint, at time.Time) (domain.IOBResult, []domain.Alert, error) {
	doses, err := s.doses.DosesInWindow(ctx, userID, at.Add(-doseWindow), at)
	if err != nil {
		return domain.IOBResult{}, nil, fmt.Errorf("failed to fetch doses: %w", err)
	}

	result, err := s.computeIOB(ctx, userID, doses, at)
	if err != nil {
		return domain.IOBResult{}, nil, err
	}

	latest, err := s.glucose.LatestReading(ctx, userID)
	if err != nil {
		return domain.IOBResult{}, nil, fmt.Errorf("failed to fetch latest glucose reading: %w", err)
	}

	fired := alerting.ClassifyRisk(result, doses, latest, at)
	for i := range fired {
		fired[i].UserID = userID
	}

	if len(fired) > 0 {
		if err := s.alerts.SaveAlerts(ctx, fired); err != nil {
			return domain.IOBResult{}, nil, fmt.Errorf("failed to save alerts: %w", err)
		}
	}

	return result, fired, nil
}

// computeIOB consults the cache first; the engine is cheap, but dose
// fetching is not, and repeated evaluations within one tick are common when
// several alert consumers poll.
func (s *EvaluationService) computeIOB(ctx context.Context, userID uint, doses []domain.InsulinDose, at time.Time) (domain.IOBResult, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userID, at); err == nil && cached != nil {
			return *cached, nil
		}
	}

	result, err := s.engine.ComputeIOB(doses, at)
	if err != nil {
		return domain.IOBResult{}, fmt.Errorf("failed to compute IOB: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, at, result); err != nil {
			logger.Warn("Failed to cache IOB result", "user_id", userID, "error", err)
		}
	}
	return result, nil
}
