package request

import (
	"studioflow/internal/domain/entities"
	"studioflow/internal/usecase"
)

type StepRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	ExecTime    string `json:"exec_time"`
	Deliverable string `json:"deliverable"`
}

type PhaseRequest struct {
	ID       string        `json:"id"`
	Name     string        `json:"name" binding:"required"`
	Color    string        `json:"color"`
	Duration string        `json:"duration"`
	Steps    []StepRequest `json:"steps"`
}

// UpdateTemplateRequest is a partial template update. Absent fields are
// left alone; a phases array replaces the whole list.
type UpdateTemplateRequest struct {
	ServiceName *string         `json:"service_name"`
	BaseArea    *float64        `json:"base_area"`
	BaseRooms   *int            `json:"base_rooms"`
	Phases      *[]PhaseRequest `json:"phases"`
}

func (r UpdateTemplateRequest) ToPatch() usecase.TemplatePatch {
	patch := usecase.TemplatePatch{
		ServiceName: r.ServiceName,
		BaseArea:    r.BaseArea,
		BaseRooms:   r.BaseRooms,
	}
	if r.Phases != nil {
		phases := make([]entities.Phase, 0, len(*r.Phases))
		for _, pf := range *r.Phases {
			phase := entities.Phase{
				ID:       pf.ID,
				Name:     pf.Name,
				Color:    pf.Color,
				Duration: pf.Duration,
				Steps:    make([]entities.Step, 0, len(pf.Steps)),
			}
			for _, sf := range pf.Steps {
				phase.Steps = append(phase.Steps, entities.Step{
					ID:          sf.ID,
					Name:        sf.Name,
					ExecTime:    sf.ExecTime,
					Deliverable: sf.Deliverable,
				})
			}
			phases = append(phases, phase)
		}
		patch.Phases = &phases
	}
	return patch
}

type AddPhaseRequest struct {
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color"`
	Duration string `json:"duration"`
}

type EditPhaseRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Duration *string `json:"duration"`
}

func (r EditPhaseRequest) ToPatch() usecase.PhasePatch {
	return usecase.PhasePatch{Name: r.Name, Color: r.Color, Duration: r.Duration}
}

type MovePhaseRequest struct {
	Offset int `json:"offset" binding:"required"`
}

type AddStepRequest struct {
	Name        string `json:"name" binding:"required"`
	ExecTime    string `json:"exec_time"`
	Deliverable string `json:"deliverable"`
}

type EditStepRequest struct {
	Name        *string `json:"name"`
	ExecTime    *string `json:"exec_time"`
	Deliverable *string `json:"deliverable"`
}

func (r EditStepRequest) ToPatch() usecase.StepPatch {
	return usecase.StepPatch{Name: r.Name, ExecTime: r.ExecTime, Deliverable: r.Deliverable}
}
