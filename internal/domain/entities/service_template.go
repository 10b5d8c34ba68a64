package entities

import (
	"strconv"
	"strings"
)

// TerminalPhaseID is the reserved final phase of every service template.
// It can never be removed and is only entered by an explicit finalization.
const TerminalPhaseID = "finalizado"

// Step is one timed work item inside a phase. ExecTime is a short free-form
// label ("8h", "2 dias"); hour totals are derived from its first integer
// token.
type Step struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ExecTime    string `json:"exec_time"`
	Deliverable string `json:"deliverable,omitempty"`
}

type Phase struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Duration string `json:"duration,omitempty"`
	Steps    []Step `json:"steps"`
}

// ServiceTemplate is the ordered phase/step breakdown of one service,
// plus the base reference used to normalize pricing scale.
//
// An office may hold an override keyed by the same service id; the override
// replaces the default wholesale, there is no field-level merge.
type ServiceTemplate struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name,omitempty"`
	Phases      []Phase `json:"phases"`
	BaseArea    float64 `json:"base_area"`
	BaseRooms   int     `json:"base_rooms"`
}

// StepHours extracts the hour count of an exec-time label: the first
// integer token found, 0 when the label carries none. Lossy on purpose;
// labels like "duas semanas" simply contribute nothing.
func StepHours(execTime string) int {
	for _, field := range strings.FieldsFunc(execTime, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		if n, err := strconv.Atoi(field); err == nil {
			return n
		}
	}
	return 0
}

// TotalHours sums the extracted hours across all steps of all phases.
func (t ServiceTemplate) TotalHours() int {
	total := 0
	for _, p := range t.Phases {
		for _, s := range p.Steps {
			total += StepHours(s.ExecTime)
		}
	}
	return total
}

// PhaseIDs returns the phase ids in template order.
func (t ServiceTemplate) PhaseIDs() []string {
	ids := make([]string, 0, len(t.Phases))
	for _, p := range t.Phases {
		ids = append(ids, p.ID)
	}
	return ids
}

// Clone returns a deep copy. Template mutations always work on a copy so
// the built-in catalog is never aliased.
func (t ServiceTemplate) Clone() ServiceTemplate {
	out := t
	out.Phases = make([]Phase, len(t.Phases))
	for i, p := range t.Phases {
		cp := p
		cp.Steps = append([]Step(nil), p.Steps...)
		out.Phases[i] = cp
	}
	return out
}

// HasPhase reports whether the template contains the given phase id.
func (t ServiceTemplate) HasPhase(id string) bool {
	for _, p := range t.Phases {
		if p.ID == id {
			return true
		}
	}
	return false
}
