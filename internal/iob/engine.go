// Package iob computes insulin-on-board from a dose history using a linear
// per-class decay model. The decay is a deliberate simplification of real
// pharmacokinetics, acceptable for an informational display but not for
// dosing decisions.
package iob

import (
	"math"
	"time"

	"github.com/glucokit/glucokit/internal/domain"
	"github.com/glucokit/glucokit/internal/errors"
)

// DurationTable maps each insulin class to its decay duration in hours.
type DurationTable map[domain.InsulinClass]float64

// DefaultDurations returns the canonical decay table. Short/regular insulin
// uses 6 hours; callers needing the stricter 8-hour convention pass their
// own table.
func DefaultDurations() DurationTable {
	return DurationTable{
		domain.ClassRapid:        4,
		domain.ClassShort:        6,
		domain.ClassIntermediate: 12,
		domain.ClassLong:         24,
	}
}

// Engine evaluates insulin-on-board. It holds only its duration table and
// retains no state between calls.
type Engine struct {
	durations DurationTable
}

// NewEngine creates an engine with the given duration table, falling back to
// the defaults when table is nil.
func NewEngine(table DurationTable) *Engine {
	if table == nil {
		table = DefaultDurations()
	}
	return &Engine{durations: table}
}

// ComputeIOB sums the remaining amount of every bolus-acting dose at the
// given instant. Long and intermediate doses never contribute. A dose with a
// class outside the known table fails the whole evaluation rather than being
// silently dropped, since an unknown class is a data-entry bug upstream.
func (e *Engine) ComputeIOB(doses []domain.InsulinDose, at time.Time) (domain.IOBResult, error) {
	result := domain.IOBResult{EvaluatedAt: at}

	var total float64
	for _, dose := range doses {
		duration, ok := e.durations[dose.Class]
		if !ok {
			return domain.IOBResult{}, errors.NewInvalidInsulinClassError(string(dose.Class))
		}
		if !dose.Class.IsBolus() {
			continue
		}

		fraction := remainingFraction(at.Sub(dose.Timestamp).Hours(), duration)
		remaining := dose.Amount * fraction
		total += remaining

		result.Contributions = append(result.Contributions, domain.DoseContribution{
			DoseID:            dose.ID,
			RemainingUnits:    remaining,
			RemainingFraction: fraction,
		})
	}

	// One decimal place keeps the displayed value stable across evaluations.
	result.TotalIOB = math.Round(total*10) / 10
	return result, nil
}

// remainingFraction applies straight-line decay. Future-dated doses (clock
// skew) clamp to zero elapsed rather than producing negative IOB.
func remainingFraction(hoursElapsed, durationHours float64) float64 {
	if hoursElapsed < 0 {
		hoursElapsed = 0
	}
	if hoursElapsed >= durationHours {
		return 0
	}
	return (durationHours - hoursElapsed) / durationHours
}
