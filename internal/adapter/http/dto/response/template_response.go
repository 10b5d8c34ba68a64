package response

import (
	"studioflow/internal/domain/entities"
)

type StepResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ExecTime    string `json:"exec_time"`
	Deliverable string `json:"deliverable,omitempty"`
	Hours       int    `json:"hours"`
}

type PhaseResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Color    string         `json:"color,omitempty"`
	Duration string         `json:"duration,omitempty"`
	Steps    []StepResponse `json:"steps"`
}

type TemplateResponse struct {
	ServiceID   string          `json:"service_id"`
	ServiceName string          `json:"service_name,omitempty"`
	Phases      []PhaseResponse `json:"phases"`
	BaseArea    float64         `json:"base_area"`
	BaseRooms   int             `json:"base_rooms"`
	TotalHours  int             `json:"total_hours"`
}

func FromTemplate(t entities.ServiceTemplate) TemplateResponse {
	phases := make([]PhaseResponse, 0, len(t.Phases))
	for _, p := range t.Phases {
		steps := make([]StepResponse, 0, len(p.Steps))
		for _, s := range p.Steps {
			steps = append(steps, StepResponse{
				ID:          s.ID,
				Name:        s.Name,
				ExecTime:    s.ExecTime,
				Deliverable: s.Deliverable,
				Hours:       entities.StepHours(s.ExecTime),
			})
		}
		phases = append(phases, PhaseResponse{
			ID:       p.ID,
			Name:     p.Name,
			Color:    p.Color,
			Duration: p.Duration,
			Steps:    steps,
		})
	}
	return TemplateResponse{
		ServiceID:   t.ServiceID,
		ServiceName: t.ServiceName,
		Phases:      phases,
		BaseArea:    t.BaseArea,
		BaseRooms:   t.BaseRooms,
		TotalHours:  t.TotalHours(),
	}
}
