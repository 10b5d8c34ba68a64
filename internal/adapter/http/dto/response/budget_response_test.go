package response

import (
	"testing"
	"time"

	"studioflow/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Budget{
		ID:       "b-1",
		OfficeID: "esc-1",
		Client:   entities.Client{Name: "Marina Costa", Email: "marina@example.com"},

		ServiceID:    "arch_residential",
		CalcMode:     entities.CalcModeArea,
		Area:         50,
		ComplexityID: "media",
		FinishID:     "essencial",

		EstimatedHours: 20,
		CostValue:      2000,
		Value:          4000,
		Profit:         2000,

		Scope:        []string{"briefing", "projeto"},
		PaymentTerms: entities.PaymentTerms303040,

		Status:  entities.BudgetStatusSent,
		History: []entities.HistoryEvent{{Date: now, Action: "created"}, {Date: now, Action: "sent"}},

		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromBudget(b)
	if res.ID != "b-1" || res.OfficeID != "esc-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Client.Name != "Marina Costa" {
		t.Fatalf("unexpected client: %+v", res.Client)
	}
	if res.CalcMode != "area" || res.PaymentTerms != "30_30_40" || res.Status != "sent" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.EstimatedHours != 20 || res.Value != 4000 || res.Profit != 2000 {
		t.Fatalf("unexpected pricing fields: %+v", res)
	}
	if len(res.History) != 2 || res.History[1].Action != "sent" {
		t.Fatalf("unexpected history: %+v", res.History)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromProject(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Project{
		ID:             "p-1",
		BudgetID:       "b-1",
		OfficeID:       "esc-1",
		ClientName:     "Marina Costa",
		ServiceID:      "arch_residential",
		Stage:          "projeto",
		Scope:          []string{"briefing", "projeto"},
		Schedule:       []entities.Milestone{{Date: now, Type: entities.MilestoneTypeStart}},
		EstimatedHours: 40,
		HoursUsed:      30,
		StartDate:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromProject(p)
	if res.ID != "p-1" || res.Stage != "projeto" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ProgressPercent != 75 {
		t.Fatalf("expected 75 percent, got %v", res.ProgressPercent)
	}
	if len(res.Schedule) != 1 || res.Schedule[0].Type != string(entities.MilestoneTypeStart) {
		t.Fatalf("unexpected schedule: %+v", res.Schedule)
	}
}

func TestFromTemplate(t *testing.T) {
	tpl := entities.ServiceTemplate{
		ServiceID:   "arch_residential",
		ServiceName: "Projeto Residencial",
		BaseArea:    100,
		BaseRooms:   4,
		Phases: []entities.Phase{
			{ID: "briefing", Name: "Briefing", Steps: []entities.Step{
				{ID: "s1", Name: "Entrevista", ExecTime: "16h"},
				{ID: "s2", Name: "Levantamento", ExecTime: "8h"},
			}},
			{ID: "finalizado", Name: "Finalizado"},
		},
	}

	res := FromTemplate(tpl)
	if res.ServiceID != "arch_residential" || res.BaseArea != 100 || res.BaseRooms != 4 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if len(res.Phases) != 2 || len(res.Phases[0].Steps) != 2 {
		t.Fatalf("unexpected phases: %+v", res.Phases)
	}
	if res.Phases[0].Steps[0].Hours != 16 || res.Phases[0].Steps[1].Hours != 8 {
		t.Fatalf("unexpected step hours: %+v", res.Phases[0].Steps)
	}
	if res.TotalHours != 24 {
		t.Fatalf("expected 24 total hours, got %d", res.TotalHours)
	}
}
