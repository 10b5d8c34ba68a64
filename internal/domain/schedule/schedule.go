// Package schedule generates delivery milestones for a project from its
// approved scope. Pure and deterministic: same inputs, same schedule.
package schedule

import (
	"math"
	"time"

	"studioflow/internal/domain/entities"
)

// HoursPerDay is the working-hour capacity assumed per calendar day.
const HoursPerDay = 8

// Generate maps a start date, the ordered scope phases (terminal phase
// excluded) and the estimated hours onto an ordered milestone list.
//
// Dates advance by calendar days, not business days. The kanban board's
// own mini-scheduler uses business days; this one intentionally does not,
// because stored schedules would shift on every weekend rule change.
//
// Output length is always len(phases)+1: one start milestone, one delivery
// per phase, with the last phase tagged as the end.
func Generate(start time.Time, phases []entities.Phase, estimatedHours int) []entities.Milestone {
	milestones := []entities.Milestone{{Date: start, Type: entities.MilestoneTypeStart}}
	if len(phases) == 0 {
		return milestones
	}

	daysPerPhase := int(math.Ceil(float64(estimatedHours) / float64(len(phases)) / HoursPerDay))

	current := start
	for i, p := range phases {
		current = current.AddDate(0, 0, daysPerPhase)
		kind := entities.MilestoneTypeDelivery
		if i == len(phases)-1 {
			kind = entities.MilestoneTypeEnd
		}
		milestones = append(milestones, entities.Milestone{
			Date:    current,
			Type:    kind,
			PhaseID: p.ID,
		})
	}
	return milestones
}
